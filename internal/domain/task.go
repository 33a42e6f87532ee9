package domain

import "time"

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task represents a unit of work that focus sessions can be attributed to.
type Task struct {
	ID                 string
	Text               string
	Priority           Priority
	Category           string
	EstimatedPomodoros int
	CompletedPomodoros int
	Completed          bool
	CreatedAt          time.Time
	CompletedAt        *time.Time
}

// NewTask creates a new task. Empty priority falls back to medium and the
// pomodoro estimate is clamped to at least one.
func NewTask(text string, priority Priority, category string, estimated int) *Task {
	if !priority.Valid() {
		priority = PriorityMedium
	}
	if estimated < 1 {
		estimated = 1
	}
	return &Task{
		ID:                 generateID(),
		Text:               text,
		Priority:           priority,
		Category:           category,
		EstimatedPomodoros: estimated,
		CreatedAt:          time.Now(),
	}
}

// Toggle flips the completed flag, stamping or clearing CompletedAt.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
	if t.Completed {
		now := time.Now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

// RecordPomodoro increments the completed pomodoro counter. Called once per
// focus session appended to the log with this task active.
func (t *Task) RecordPomodoro() {
	t.CompletedPomodoros++
}
