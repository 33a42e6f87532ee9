package services

import (
	"context"
	"testing"

	"github.com/hxlin/tomato-cli/internal/adapters/storage"
	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
)

func newTestTasks(t *testing.T) (*TaskService, ports.Storage) {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewTaskService(store), store
}

func TestTaskService_AddTask(t *testing.T) {
	svc, _ := newTestTasks(t)
	ctx := context.Background()

	t.Run("basic add", func(t *testing.T) {
		task, err := svc.AddTask(ctx, AddTaskRequest{Text: "review PR", Priority: domain.PriorityHigh})
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task == nil {
			t.Fatal("AddTask() returned nil task")
		}
		if task.Priority != domain.PriorityHigh {
			t.Errorf("Priority = %v, want high", task.Priority)
		}
	})

	t.Run("empty text ignored", func(t *testing.T) {
		task, err := svc.AddTask(ctx, AddTaskRequest{Text: "   "})
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task != nil {
			t.Errorf("AddTask() = %v, want nil for blank text", task)
		}
	})

	t.Run("text trimmed", func(t *testing.T) {
		task, err := svc.AddTask(ctx, AddTaskRequest{Text: "  padded  "})
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task.Text != "padded" {
			t.Errorf("Text = %q, want %q", task.Text, "padded")
		}
	})
}

func TestTaskService_FirstTaskBecomesActive(t *testing.T) {
	svc, _ := newTestTasks(t)
	ctx := context.Background()

	first, err := svc.AddTask(ctx, AddTaskRequest{Text: "first"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	second, err := svc.AddTask(ctx, AddTaskRequest{Text: "second"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	active, err := svc.ActiveTask(ctx)
	if err != nil {
		t.Fatalf("ActiveTask() error = %v", err)
	}
	if active == nil || active.ID != first.ID {
		t.Errorf("active = %v, want first task %s", active, first.ID)
	}
	_ = second
}

func TestTaskService_SetActiveTask(t *testing.T) {
	svc, _ := newTestTasks(t)
	ctx := context.Background()

	a, _ := svc.AddTask(ctx, AddTaskRequest{Text: "a"})
	b, _ := svc.AddTask(ctx, AddTaskRequest{Text: "b"})

	if err := svc.SetActiveTask(ctx, &b.ID); err != nil {
		t.Fatalf("SetActiveTask() error = %v", err)
	}
	active, _ := svc.ActiveTask(ctx)
	if active == nil || active.ID != b.ID {
		t.Errorf("active = %v, want %s", active, b.ID)
	}

	t.Run("unknown id is a no-op", func(t *testing.T) {
		unknown := "no-such-id"
		if err := svc.SetActiveTask(ctx, &unknown); err != nil {
			t.Fatalf("SetActiveTask() error = %v", err)
		}
		active, _ := svc.ActiveTask(ctx)
		if active == nil || active.ID != b.ID {
			t.Errorf("active changed by unknown id: %v", active)
		}
	})

	t.Run("nil clears", func(t *testing.T) {
		if err := svc.SetActiveTask(ctx, nil); err != nil {
			t.Fatalf("SetActiveTask(nil) error = %v", err)
		}
		active, _ := svc.ActiveTask(ctx)
		if active != nil {
			t.Errorf("active = %v after clear, want nil", active)
		}
	})
	_ = a
}

func TestTaskService_ToggleTask(t *testing.T) {
	svc, store := newTestTasks(t)
	ctx := context.Background()

	task, _ := svc.AddTask(ctx, AddTaskRequest{Text: "toggle me"})

	if err := svc.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	found, _ := store.Tasks().FindByID(ctx, task.ID)
	if !found.Completed || found.CompletedAt == nil {
		t.Errorf("task not completed after toggle: %+v", found)
	}

	if err := svc.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	found, _ = store.Tasks().FindByID(ctx, task.ID)
	if found.Completed || found.CompletedAt != nil {
		t.Errorf("task still completed after second toggle: %+v", found)
	}

	if err := svc.ToggleTask(ctx, "no-such-id"); err != nil {
		t.Errorf("ToggleTask(unknown) error = %v, want nil no-op", err)
	}
}

func TestTaskService_DeleteTask(t *testing.T) {
	svc, _ := newTestTasks(t)
	ctx := context.Background()

	task, _ := svc.AddTask(ctx, AddTaskRequest{Text: "doomed"})

	// First task is active; deleting it clears the pointer.
	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	active, err := svc.ActiveTask(ctx)
	if err != nil {
		t.Fatalf("ActiveTask() error = %v", err)
	}
	if active != nil {
		t.Errorf("active = %v after deleting active task, want nil", active)
	}

	if err := svc.DeleteTask(ctx, "no-such-id"); err != nil {
		t.Errorf("DeleteTask(unknown) error = %v, want nil no-op", err)
	}
}

func TestTaskService_SearchTasks(t *testing.T) {
	svc, _ := newTestTasks(t)
	ctx := context.Background()

	svc.AddTask(ctx, AddTaskRequest{Text: "refactor parser"})
	svc.AddTask(ctx, AddTaskRequest{Text: "write changelog"})

	matches, err := svc.SearchTasks(ctx, "parser")
	if err != nil {
		t.Fatalf("SearchTasks() error = %v", err)
	}
	if len(matches) != 1 || matches[0].Text != "refactor parser" {
		t.Errorf("SearchTasks() = %v, want the parser task", matches)
	}

	all, err := svc.SearchTasks(ctx, "  ")
	if err != nil {
		t.Fatalf("SearchTasks() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("blank query returned %d tasks, want 2", len(all))
	}
}
