package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hxlin/tomato-cli/internal/domain"
)

var logLimit int

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show completed focus sessions",
	Long:  `Show the session log, newest first, with task and git context.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sessions, err := app.storage.Sessions().FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		log := domain.NewSessionLog(sessions)
		newest := log.Newest()
		if logLimit > 0 && len(newest) > logLimit {
			newest = newest[:logLimit]
		}

		if jsonOutput {
			var sessionList []map[string]interface{}
			for _, session := range newest {
				data := map[string]interface{}{
					"id":               session.ID,
					"timestamp":        session.Timestamp.Format("2006-01-02T15:04:05"),
					"duration_minutes": session.DurationMinutes,
				}
				if session.TaskText != "" {
					data["task_text"] = session.TaskText
				}
				if session.GitBranch != "" {
					data["git_branch"] = session.GitBranch
					data["git_commit"] = session.GitCommit
				}
				sessionList = append(sessionList, data)
			}
			jsonData, err := json.MarshalIndent(map[string]interface{}{
				"sessions": sessionList,
				"count":    len(sessionList),
				"total":    log.Len(),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal sessions: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(newest) == 0 {
			fmt.Println("No focus sessions logged yet.")
			return nil
		}

		fmt.Printf("🍅 Sessions (%d of %d):\n\n", len(newest), log.Len())
		for _, session := range newest {
			line := fmt.Sprintf("%s  %dm", session.Timestamp.Format("2006-01-02 15:04"), session.DurationMinutes)
			if session.TaskText != "" {
				line += "  " + session.TaskText
			}
			if session.GitBranch != "" {
				line += fmt.Sprintf("  🌿 %s@%s", session.GitBranch, session.GitCommit)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "Maximum number of sessions to show (0 for all)")
}
