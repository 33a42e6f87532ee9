// Package domain contains the core entities for Tomato: the timer modes,
// tasks, the session log, and the achievement definitions. These are
// independent of any external frameworks or infrastructure.
package domain

import "errors"

// Common domain errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSessionNotFound = errors.New("session not found")
)

// Mode identifies which countdown the clock is running.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Default configured minutes per mode.
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// Modes returns all modes in display order.
func Modes() []Mode {
	return []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}
}

// DefaultDurations returns the standard configured minutes per mode.
func DefaultDurations() map[Mode]int {
	return map[Mode]int{
		ModeFocus:      DefaultFocusMinutes,
		ModeShortBreak: DefaultShortBreakMinutes,
		ModeLongBreak:  DefaultLongBreakMinutes,
	}
}

// Label returns a human-readable label for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeFocus:
		return "Focus"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}
