package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hxlin/tomato-cli/internal/config"
	"github.com/hxlin/tomato-cli/internal/services"
)

// Run starts the interactive timer and blocks until the user quits. Mouse
// cell motion is enabled so the duration editor can track drags across the
// big digits.
func Run(svc *services.TimerService, tasks *services.TaskService, cfg *config.Config) error {
	model := NewModel(svc, tasks, cfg)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
