// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hxlin/tomato-cli/internal/clock"
	"github.com/hxlin/tomato-cli/internal/config"
	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/services"
)

// pane identifies which screen is visible.
type pane int

const (
	paneTimer pane = iota
	paneTasks
	paneStats
	paneAchievements
	paneCalendar
)

// Timer pane layout, in rows relative to the vertical padding. The fixed
// grid keeps the big time block at a predictable position for mouse hit
// testing.
const (
	rowTitle    = 0
	rowTabs     = 2
	bigTimeRow  = 4
	rowProgress = 10
	rowStatus   = 11
	rowTask     = 13
	rowHelp     = 15
	timerRows   = 16
)

// tickMsg drives the countdown. gen identifies the tick stream; stale
// streams left over from an earlier start are dropped by generation.
type tickMsg struct {
	gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Model represents the TUI state.
type Model struct {
	svc   *services.TimerService
	tasks *services.TaskService
	cfg   *config.Config
	theme config.ThemeConfig

	width   int
	height  int
	pane    pane
	tickGen int

	progress  progress.Model
	taskList  []*domain.Task
	activeID  *string
	cursor    int
	adding    bool
	taskInput textinput.Model

	flash string
	err   error
}

// NewModel creates a new TUI model.
func NewModel(svc *services.TimerService, tasks *services.TaskService, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "What are you working on?"
	ti.CharLimit = 120
	ti.Width = 40

	m := Model{
		svc:       svc,
		tasks:     tasks,
		cfg:       cfg,
		theme:     cfg.Theme,
		progress:  progress.New(progress.WithDefaultGradient()),
		taskInput: ti,
	}
	m.reloadTasks()
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// reloadTasks refreshes the task list and active pointer from storage.
func (m *Model) reloadTasks() {
	ctx := context.Background()
	list, err := m.tasks.ListTasks(ctx)
	if err != nil {
		m.err = err
		return
	}
	m.taskList = list
	if m.cursor >= len(list) {
		m.cursor = len(list) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.activeID = nil
	if active, err := m.tasks.ActiveTask(ctx); err == nil && active != nil {
		m.activeID = &active.ID
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-4, 40)
		return m, nil
	case tickMsg:
		return m.updateTick(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.taskInput, cmd = m.taskInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.persistDurations()
		return m, tea.Quit
	}

	if m.adding {
		return m.updateTaskInput(msg)
	}

	switch msg.String() {
	case "q":
		m.persistDurations()
		return m, tea.Quit
	case "t":
		m.reloadTasks()
		m.pane = paneTasks
		return m, nil
	case "s":
		m.pane = paneStats
		return m, nil
	case "a":
		m.pane = paneAchievements
		return m, nil
	case "c":
		m.pane = paneCalendar
		return m, nil
	case "esc":
		m.pane = paneTimer
		return m, nil
	}

	switch m.pane {
	case paneTimer:
		return m.updateTimerKey(msg)
	case paneTasks:
		return m.updateTasksKey(msg)
	}
	return m, nil
}

func (m Model) updateTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case " ":
		if m.svc.ClockState().Running {
			m.svc.Pause()
			return m, nil
		}
		m.flash = ""
		m.svc.Start(ctx)
		if m.svc.ClockState().Running {
			m.tickGen++
			return m, tickCmd(m.tickGen)
		}
	case "r":
		m.svc.Reset()
	case "1":
		m.svc.SwitchMode(domain.ModeFocus)
	case "2":
		m.svc.SwitchMode(domain.ModeShortBreak)
	case "3":
		m.svc.SwitchMode(domain.ModeLongBreak)
	case "up", "+", "=":
		m.svc.AdjustDiscrete(clock.PartMinutes, 1)
	case "down", "-":
		m.svc.AdjustDiscrete(clock.PartMinutes, -1)
	}
	return m, nil
}

func (m Model) updateTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "n":
		m.adding = true
		m.taskInput.Reset()
		m.taskInput.Focus()
		return m, m.taskInput.Cursor.BlinkCmd()
	case "j", "down":
		if m.cursor < len(m.taskList)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.taskList) {
			if err := m.tasks.SetActiveTask(ctx, &m.taskList[m.cursor].ID); err != nil {
				m.err = err
			}
			m.reloadTasks()
		}
	case "x":
		if m.cursor < len(m.taskList) {
			if err := m.tasks.ToggleTask(ctx, m.taskList[m.cursor].ID); err != nil {
				m.err = err
			}
			m.reloadTasks()
		}
	case "d":
		if m.cursor < len(m.taskList) {
			if err := m.tasks.DeleteTask(ctx, m.taskList[m.cursor].ID); err != nil {
				m.err = err
			}
			m.reloadTasks()
		}
	}
	return m, nil
}

func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.taskInput.Blur()
		return m, nil
	case "enter":
		text := m.taskInput.Value()
		m.adding = false
		m.taskInput.Blur()
		if _, err := m.tasks.AddTask(context.Background(), services.AddTaskRequest{Text: text}); err != nil {
			m.err = err
		}
		m.reloadTasks()
		return m, nil
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.pane != paneTimer {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if part, ok := m.partAt(msg.X, msg.Y); ok {
			m.svc.AdjustDiscrete(part, 1)
		}
	case tea.MouseButtonWheelDown:
		if part, ok := m.partAt(msg.X, msg.Y); ok {
			m.svc.AdjustDiscrete(part, -1)
		}
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			if part, ok := m.partAt(msg.X, msg.Y); ok {
				// One terminal row per unit of adjustment.
				m.svc.BeginDrag(part, msg.Y*clock.DragSensitivity)
			}
		case tea.MouseActionMotion:
			if m.svc.DragActive() {
				m.svc.UpdateDrag(msg.Y * clock.DragSensitivity)
			}
		case tea.MouseActionRelease:
			if m.svc.DragActive() {
				m.svc.EndDrag()
				m.persistDurations()
			}
		}
	case tea.MouseButtonNone:
		// Motion events without a pressed button arrive with ButtonNone;
		// releases do too on some terminals.
		if m.svc.DragActive() {
			switch msg.Action {
			case tea.MouseActionMotion:
				m.svc.UpdateDrag(msg.Y * clock.DragSensitivity)
			case tea.MouseActionRelease:
				m.svc.EndDrag()
				m.persistDurations()
			}
		}
	}
	return m, nil
}

func (m Model) updateTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen {
		return m, nil
	}

	res := m.svc.Tick(context.Background())
	if res.Completed {
		m.flash = completionFlash(res)
		if res.Session != nil {
			m.reloadTasks()
		}
		return m, nil
	}

	if m.svc.ClockState().Running {
		return m, tickCmd(m.tickGen)
	}
	return m, nil
}

// completionFlash builds the banner shown after a countdown finishes.
func completionFlash(res services.TickResult) string {
	if res.Mode != domain.ModeFocus {
		return "Break over. Ready to focus?"
	}

	flash := "Focus session complete!"
	for _, id := range res.Unlocked {
		if def, ok := domain.LookupAchievement(id); ok {
			flash += fmt.Sprintf("  🏆 %s", def.Name)
		}
	}
	return flash
}

// persistDurations writes the clock's configured minutes back to the config
// file. Only whole minutes are stored; edited seconds are transient.
func (m Model) persistDurations() {
	if m.cfg == nil {
		return
	}
	for mode, minutes := range m.svc.Durations() {
		m.cfg.Timer.SetDuration(mode, minutes)
	}
	_ = config.Save(m.cfg)
}

// topPad returns the number of blank rows above the timer grid.
func (m Model) topPad() int {
	pad := (m.height - timerRows) / 2
	if pad < 0 {
		pad = 0
	}
	return pad
}

// partAt maps a terminal cell to the minutes or seconds half of the big
// time block.
func (m Model) partAt(x, y int) (clock.Part, bool) {
	if m.width < 40 {
		return 0, false
	}

	top := m.topPad() + bigTimeRow
	if y < top || y >= top+bigTimeHeight {
		return 0, false
	}

	left := (m.width - bigTimeWidth) / 2
	switch {
	case x >= left && x < left+bigMinutesEnd:
		return clock.PartMinutes, true
	case x >= left+bigSecondsStart && x < left+bigTimeWidth:
		return clock.PartSeconds, true
	}
	return 0, false
}
