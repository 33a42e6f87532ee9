package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Toggle a task between open and completed",
	Long: `Toggle a task's completed state. Accepts a full task id or a unique
prefix. Toggling an already completed task reopens it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := resolveTaskID(ctx, args[0])
		if err != nil {
			return err
		}

		if err := app.tasks.ToggleTask(ctx, id); err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}

		task, err := app.storage.Tasks().FindByID(ctx, id)
		if err != nil {
			fmt.Printf("No task with ID %s.\n", args[0])
			return nil
		}

		if task.Completed {
			fmt.Printf("✅ Completed: %s\n", task.Text)
		} else {
			fmt.Printf("⏳ Reopened: %s\n", task.Text)
		}
		return nil
	},
}
