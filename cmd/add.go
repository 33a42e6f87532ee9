package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/services"
)

var (
	addPriority string
	addCategory string
	addEstimate int
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a new task",
	Long:  `Add a new task to the Tomato task ledger.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// Combine all arguments as the text
		text := ""
		for i, arg := range args {
			if i > 0 {
				text += " "
			}
			text += arg
		}

		req := services.AddTaskRequest{
			Text:               text,
			Priority:           domain.Priority(addPriority),
			Category:           addCategory,
			EstimatedPomodoros: addEstimate,
		}

		task, err := app.tasks.AddTask(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}
		if task == nil {
			return fmt.Errorf("task text is empty")
		}

		if jsonOutput {
			data := map[string]interface{}{
				"id":                  task.ID,
				"text":                task.Text,
				"priority":            string(task.Priority),
				"category":            task.Category,
				"estimated_pomodoros": task.EstimatedPomodoros,
				"created_at":          task.CreatedAt.Format("2006-01-02T15:04:05"),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("✅ Task added: %s (ID: %s)\n", task.Text, task.ID[:8])
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Task priority (high, medium, low)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label for the task")
	addCmd.Flags().IntVarP(&addEstimate, "estimate", "e", 1, "Estimated number of focus sessions")
}
