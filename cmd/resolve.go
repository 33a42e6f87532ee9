package cmd

import (
	"context"
	"fmt"
	"strings"
)

// resolveTaskID expands a full id or a unique id prefix to the stored task id.
// Ambiguous prefixes are an error; an unknown id is returned as given so the
// service layer's no-op contract applies.
func resolveTaskID(ctx context.Context, id string) (string, error) {
	tasks, err := app.tasks.ListTasks(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list tasks: %w", err)
	}

	var matches []string
	for _, task := range tasks {
		if task.ID == id {
			return id, nil
		}
		if strings.HasPrefix(task.ID, id) {
			matches = append(matches, task.ID)
		}
	}

	switch len(matches) {
	case 0:
		return id, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task id %q is ambiguous (%d matches)", id, len(matches))
	}
}
