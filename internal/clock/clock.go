// Package clock implements the countdown state machine and the manual
// duration editor. The clock owns the remaining time and running flag for the
// active mode; it never performs IO and none of its operations can fail:
// invalid input is clamped or ignored.
package clock

import "github.com/hxlin/tomato-cli/internal/domain"

// MaxRemainingSeconds is the ceiling for remaining time: the display is two
// digits of minutes and two of seconds.
const MaxRemainingSeconds = 99*60 + 59

// Configured minute bounds for SetModeDuration. The editor may push the
// configured value outside these via ClampEditorMinutes instead.
const (
	minConfiguredMinutes = 1
	maxConfiguredMinutes = 60
)

// State is an immutable snapshot of the clock for read-only consumers.
type State struct {
	Mode             domain.Mode
	RemainingSeconds int
	Running          bool
}

// Clock is the countdown state machine. It is not safe for concurrent use;
// all mutations are expected to arrive on a single event loop.
type Clock struct {
	mode      domain.Mode
	remaining int
	running   bool
	durations map[domain.Mode]int // configured minutes per mode
}

// New creates a clock in focus mode with the given per-mode minutes. Missing
// or out-of-range entries fall back to the defaults.
func New(durations map[domain.Mode]int) *Clock {
	d := domain.DefaultDurations()
	for mode, minutes := range durations {
		if mode.Valid() && minutes > 0 {
			d[mode] = clampInt(minutes, 1, 99)
		}
	}
	c := &Clock{
		mode:      domain.ModeFocus,
		durations: d,
	}
	c.remaining = d[domain.ModeFocus] * 60
	return c
}

// Mode returns the active mode.
func (c *Clock) Mode() domain.Mode { return c.mode }

// Remaining returns the remaining seconds of the active countdown.
func (c *Clock) Remaining() int { return c.remaining }

// Running reports whether the countdown is ticking.
func (c *Clock) Running() bool { return c.running }

// ConfiguredMinutes returns the configured minutes for the given mode.
func (c *Clock) ConfiguredMinutes(mode domain.Mode) int {
	return c.durations[mode]
}

// Durations returns a copy of the per-mode configured minutes.
func (c *Clock) Durations() map[domain.Mode]int {
	out := make(map[domain.Mode]int, len(c.durations))
	for m, v := range c.durations {
		out[m] = v
	}
	return out
}

// Snapshot returns the current state for read-only consumers.
func (c *Clock) Snapshot() State {
	return State{Mode: c.mode, RemainingSeconds: c.remaining, Running: c.running}
}

// Start begins the countdown. It is a no-op when already running or when no
// time remains. The returned flag tells the caller whether a start cue should
// play.
func (c *Clock) Start() bool {
	if c.running || c.remaining == 0 {
		return false
	}
	c.running = true
	return true
}

// Pause stops the countdown without resetting it.
func (c *Clock) Pause() {
	c.running = false
}

// Tick advances the countdown by one second. It must be called once per
// wall-clock second while running; calling it while stopped is ignored. When
// the countdown reaches zero the clock stops and Tick reports completion,
// exactly once per countdown, since a subsequent Tick is not running.
func (c *Clock) Tick() (completed bool) {
	if !c.running {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}

// Reset restores the configured duration for the current mode and stops the
// countdown. Always legal; resetting mid-countdown abandons it without
// completion.
func (c *Clock) Reset() {
	c.running = false
	c.remaining = c.durations[c.mode] * 60
}

// SwitchMode abandons the current countdown (no completion fires) and loads
// the configured duration for the new mode. Unknown modes are ignored.
func (c *Clock) SwitchMode(mode domain.Mode) {
	if !mode.Valid() {
		return
	}
	c.mode = mode
	c.remaining = c.durations[mode] * 60
	c.running = false
}

// SetModeDuration updates the configured minutes for a mode, clamped to
// [1,60]. Ignored while that mode's countdown is running. Updating the active
// mode also reloads the remaining time.
func (c *Clock) SetModeDuration(mode domain.Mode, minutes int) {
	if !mode.Valid() {
		return
	}
	if mode == c.mode && c.running {
		return
	}
	c.durations[mode] = clampInt(minutes, minConfiguredMinutes, maxConfiguredMinutes)
	if mode == c.mode {
		c.remaining = c.durations[mode] * 60
	}
}

// setRemaining installs an edited minutes/seconds pair and writes the minutes
// figure back into the configured duration for the current mode. Seconds-level
// precision stays in the countdown only; resets use the persisted minutes.
func (c *Clock) setRemaining(minutes, seconds int) {
	c.remaining = minutes*60 + seconds
	c.durations[c.mode] = minutes
}

// split returns the current remaining time as (minutes, seconds).
func (c *Clock) split() (int, int) {
	return c.remaining / 60, c.remaining % 60
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
