package tui

// Key, mouse, and tick flow tests for the fullscreen model. Each test
// exercises a complete user interaction so regressions in key dispatch,
// hit testing, or the tick stream fail fast here.

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hxlin/tomato-cli/internal/adapters/storage"
	"github.com/hxlin/tomato-cli/internal/config"
	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/services"
)

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	svc := services.NewTimerService(store, nil, nil, nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	m := NewModel(svc, services.NewTaskService(store), config.DefaultConfig())
	result, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return result.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	return result.(Model), cmd
}

// bigTimeCell returns a cell inside the minutes or seconds half for an
// 80x24 terminal.
func bigTimeCell(part string) (x, y int) {
	top := (24-timerRows)/2 + bigTimeRow
	left := (80 - bigTimeWidth) / 2
	if part == "seconds" {
		return left + bigSecondsStart + 1, top + 2
	}
	return left + 1, top + 2
}

func TestSpaceStartsAndSchedulesTicks(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, key("space"))
	if !m.svc.ClockState().Running {
		t.Error("clock not running after space")
	}
	if cmd == nil {
		t.Error("no tick command scheduled after start")
	}
}

func TestSpacePausesWhileRunning(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key("space"))
	m, cmd := update(t, m, key("space"))
	if m.svc.ClockState().Running {
		t.Error("clock still running after second space")
	}
	if cmd != nil {
		t.Error("pause scheduled a tick command")
	}
}

func TestTickDecrementsAndReschedules(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key("space"))
	m, cmd := update(t, m, tickMsg{gen: m.tickGen})
	if got := m.svc.ClockState().RemainingSeconds; got != 25*60-1 {
		t.Errorf("RemainingSeconds = %d, want %d", got, 25*60-1)
	}
	if cmd == nil {
		t.Error("running clock did not reschedule a tick")
	}
}

func TestStaleTickGenerationIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key("space"))
	m, cmd := update(t, m, tickMsg{gen: m.tickGen - 1})
	if got := m.svc.ClockState().RemainingSeconds; got != 25*60 {
		t.Errorf("stale tick decremented the clock: remaining = %d", got)
	}
	if cmd != nil {
		t.Error("stale tick rescheduled")
	}
}

func TestModeSwitchKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key("2"))
	if got := m.svc.ClockState().Mode; got != domain.ModeShortBreak {
		t.Errorf("Mode = %v after 2, want short_break", got)
	}
	if got := m.svc.ClockState().RemainingSeconds; got != 5*60 {
		t.Errorf("RemainingSeconds = %d, want %d", got, 5*60)
	}

	m, _ = update(t, m, key("3"))
	if got := m.svc.ClockState().Mode; got != domain.ModeLongBreak {
		t.Errorf("Mode = %v after 3, want long_break", got)
	}

	m, _ = update(t, m, key("1"))
	if got := m.svc.ClockState().Mode; got != domain.ModeFocus {
		t.Errorf("Mode = %v after 1, want focus", got)
	}
}

func TestWheelAdjustsMinutes(t *testing.T) {
	m := newTestModel(t)
	x, y := bigTimeCell("minutes")

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := m.svc.ClockState().RemainingSeconds; got != 26*60 {
		t.Errorf("RemainingSeconds = %d after wheel up, want %d", got, 26*60)
	}

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.svc.ClockState().RemainingSeconds; got != 25*60 {
		t.Errorf("RemainingSeconds = %d after wheel down, want %d", got, 25*60)
	}
}

func TestWheelAdjustsSecondsIndependently(t *testing.T) {
	m := newTestModel(t)
	x, y := bigTimeCell("seconds")

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := m.svc.ClockState().RemainingSeconds; got != 25*60+1 {
		t.Errorf("RemainingSeconds = %d after wheel up on seconds, want %d", got, 25*60+1)
	}
}

func TestWheelOutsideDigitsIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := m.svc.ClockState().RemainingSeconds; got != 25*60 {
		t.Errorf("RemainingSeconds = %d after wheel outside digits, want %d", got, 25*60)
	}
}

func TestWheelIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	x, y := bigTimeCell("minutes")

	m, _ = update(t, m, key("space"))
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := m.svc.ClockState().RemainingSeconds; got != 25*60 {
		t.Errorf("RemainingSeconds = %d, wheel adjusted a running clock", got)
	}
}

func TestDragMinutes(t *testing.T) {
	m := newTestModel(t)
	x, y := bigTimeCell("minutes")

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.svc.DragActive() {
		t.Fatal("drag not active after press on minutes")
	}

	// Two rows up adds two minutes.
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y - 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if got := m.svc.ClockState().RemainingSeconds; got != 27*60 {
		t.Errorf("RemainingSeconds = %d mid-drag, want %d", got, 27*60)
	}

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y - 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.svc.DragActive() {
		t.Error("drag still active after release")
	}
	if got := m.svc.Durations()[domain.ModeFocus]; got != 27 {
		t.Errorf("configured focus minutes = %d after drag, want 27", got)
	}
}

func TestDragSecondsBorrowsFromMinutes(t *testing.T) {
	m := newTestModel(t)
	x, y := bigTimeCell("seconds")

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	// One row down subtracts one second: 25:00 -> 24:59.
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if got := m.svc.ClockState().RemainingSeconds; got != 24*60+59 {
		t.Errorf("RemainingSeconds = %d, want %d", got, 24*60+59)
	}
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	// Only whole minutes persist.
	if got := m.svc.Durations()[domain.ModeFocus]; got != 24 {
		t.Errorf("configured focus minutes = %d, want 24", got)
	}
}

func TestTaskAddFlow(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key("t"))
	if m.pane != paneTasks {
		t.Fatalf("pane = %v after t, want tasks", m.pane)
	}

	m, _ = update(t, m, key("n"))
	if !m.adding {
		t.Fatal("not in input mode after n")
	}

	for _, r := range "ship it" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = update(t, m, key("enter"))

	if len(m.taskList) != 1 {
		t.Fatalf("taskList has %d entries, want 1", len(m.taskList))
	}
	if m.taskList[0].Text != "ship it" {
		t.Errorf("task text = %q, want %q", m.taskList[0].Text, "ship it")
	}
	// First task becomes active.
	if m.activeID == nil || *m.activeID != m.taskList[0].ID {
		t.Error("first added task is not active")
	}
}

func TestTaskInputEscCancels(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key("t"))
	m, _ = update(t, m, key("n"))
	m, _ = update(t, m, key("esc"))
	if m.adding {
		t.Error("still in input mode after esc")
	}
	if len(m.taskList) != 0 {
		t.Errorf("taskList has %d entries after cancel, want 0", len(m.taskList))
	}
}

func TestPaneNavigation(t *testing.T) {
	m := newTestModel(t)

	for _, tc := range []struct {
		key  string
		want pane
	}{
		{"s", paneStats},
		{"a", paneAchievements},
		{"c", paneCalendar},
		{"esc", paneTimer},
	} {
		m, _ = update(t, m, key(tc.key))
		if m.pane != tc.want {
			t.Errorf("pane = %v after %q, want %v", m.pane, tc.key, tc.want)
		}
	}
}

func TestViewShowsTime(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if view == "" {
		t.Fatal("empty view")
	}
	// 25:00 rendered as block digits occupies five rows.
	if got := strings.Count(view, "\n"); got < timerRows-1 {
		t.Errorf("view has %d lines, want at least %d", got+1, timerRows)
	}
}

func TestQuitPersistsDurations(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := newTestModel(t)
	x, y := bigTimeCell("minutes")

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if got := m.cfg.Timer.FocusMinutes; got != 26 {
		t.Errorf("FocusMinutes = %d after quit, want 26", got)
	}
}
