package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hxlin/tomato-cli/internal/domain"
)

// achievementsCmd represents the achievements command
var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements",
	Long:  `Show all achievements and whether each is unlocked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		unlockedIDs, err := app.storage.Achievements().FindUnlocked(ctx)
		if err != nil {
			return fmt.Errorf("failed to load achievements: %w", err)
		}
		unlocked := make(map[domain.AchievementID]bool, len(unlockedIDs))
		for _, id := range unlockedIDs {
			unlocked[id] = true
		}

		if jsonOutput {
			var list []map[string]interface{}
			for _, def := range domain.AchievementDefs() {
				list = append(list, map[string]interface{}{
					"id":          string(def.ID),
					"name":        def.Name,
					"description": def.Description,
					"unlocked":    unlocked[def.ID],
				})
			}
			jsonData, err := json.MarshalIndent(map[string]interface{}{
				"achievements":   list,
				"unlocked_count": len(unlockedIDs),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal achievements: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("🏆 Achievements (%d/%d unlocked):\n\n", len(unlockedIDs), len(domain.AchievementDefs()))
		for _, def := range domain.AchievementDefs() {
			icon := "🔒"
			if unlocked[def.ID] {
				icon = "🏆"
			}
			fmt.Printf("%s %s\n   %s\n", icon, def.Name, def.Description)
		}
		return nil
	},
}
