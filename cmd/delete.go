package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Long: `Delete a task from the ledger. Deleting the active task clears the
active pointer; logged sessions keep their text snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := resolveTaskID(ctx, args[0])
		if err != nil {
			return err
		}

		task, findErr := app.storage.Tasks().FindByID(ctx, id)
		if err := app.tasks.DeleteTask(ctx, id); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		if findErr != nil {
			fmt.Printf("No task with ID %s.\n", args[0])
			return nil
		}
		fmt.Printf("🗑️  Deleted: %s\n", task.Text)
		return nil
	},
}
