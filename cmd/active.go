package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var activeClear bool

// activeCmd represents the active command
var activeCmd = &cobra.Command{
	Use:   "active [task-id]",
	Short: "Show or set the active task",
	Long: `Show the task new focus sessions are attributed to, point it at a
different task, or clear it with --clear.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if activeClear {
			if err := app.tasks.SetActiveTask(ctx, nil); err != nil {
				return fmt.Errorf("failed to clear active task: %w", err)
			}
			fmt.Println("Active task cleared.")
			return nil
		}

		if len(args) == 1 {
			id, err := resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.tasks.SetActiveTask(ctx, &id); err != nil {
				return fmt.Errorf("failed to set active task: %w", err)
			}
		}

		task, err := app.tasks.ActiveTask(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve active task: %w", err)
		}
		if task == nil {
			fmt.Println("No active task.")
			return nil
		}

		fmt.Printf("▶ %s (ID: %s, %d/%d pomodoros)\n",
			task.Text, task.ID[:8], task.CompletedPomodoros, task.EstimatedPomodoros)
		return nil
	},
}

func init() {
	activeCmd.Flags().BoolVar(&activeClear, "clear", false, "Clear the active task")
}
