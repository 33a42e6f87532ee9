package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hxlin/tomato-cli/internal/domain"
)

var (
	listAll    bool
	listFilter string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List open tasks, optionally including completed ones or fuzzy-filtering by text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		tasks, err := app.tasks.SearchTasks(ctx, listFilter)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if !listAll {
			open := tasks[:0]
			for _, task := range tasks {
				if !task.Completed {
					open = append(open, task)
				}
			}
			tasks = open
		}

		activeID, err := app.storage.Tasks().FindActive(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve active task: %w", err)
		}

		if jsonOutput {
			var taskList []map[string]interface{}
			for _, task := range tasks {
				data := map[string]interface{}{
					"id":                  task.ID,
					"text":                task.Text,
					"priority":            string(task.Priority),
					"estimated_pomodoros": task.EstimatedPomodoros,
					"completed_pomodoros": task.CompletedPomodoros,
					"completed":           task.Completed,
					"active":              activeID != nil && *activeID == task.ID,
					"created_at":          task.CreatedAt.Format("2006-01-02T15:04:05"),
				}
				if task.Category != "" {
					data["category"] = task.Category
				}
				taskList = append(taskList, data)
			}
			data := map[string]interface{}{
				"tasks": taskList,
				"count": len(taskList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tasks: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		fmt.Printf("📋 Tasks (%d):\n\n", len(tasks))
		for _, task := range tasks {
			marker := " "
			if activeID != nil && *activeID == task.ID {
				marker = "▶"
			}
			fmt.Printf("%s %s %s (ID: %s) %s\n",
				marker, taskStateIcon(task), task.Text, task.ID[:8], priorityTag(task.Priority))
			if task.Category != "" {
				fmt.Printf("     Category: %s\n", task.Category)
			}
			fmt.Printf("     Pomodoros: %d/%d\n", task.CompletedPomodoros, task.EstimatedPomodoros)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "List all tasks (default: open only)")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Fuzzy-filter tasks by text")
}

func taskStateIcon(task *domain.Task) string {
	if task.Completed {
		return "✅"
	}
	return "⏳"
}

func priorityTag(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "[high]"
	case domain.PriorityLow:
		return "[low]"
	default:
		return ""
	}
}
