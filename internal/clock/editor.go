package clock

import "math"

// Part selects which time component an edit applies to.
type Part int

const (
	PartMinutes Part = iota
	PartSeconds
)

// DragSensitivity is how many pointer units of travel map to one step of the
// edited part. Positive offset means upward motion and increases the value.
const DragSensitivity = 5

// Display bounds for the two parts. Discrete edits clamp to these with no
// cross-part carry; continuous drags carry seconds overflow into minutes.
const (
	maxEditorMinutes = 99
	maxEditorSeconds = 59
)

// Drag tracks one continuous edit gesture: the reference pointer coordinate,
// the minutes/seconds pair at gesture start, and the last committed step so
// redundant pointer moves do not re-commit the same value.
type Drag struct {
	part          Part
	originY       int
	originMinutes int
	originSeconds int
	lastDelta     int
	active        bool
}

// Part returns which component the drag edits.
func (d *Drag) Part() Part { return d.part }

// Active reports whether the gesture is still in progress.
func (d *Drag) Active() bool { return d != nil && d.active }

// AdjustDiscrete applies a wheel-tick edit of delta units to the given part.
// Each part clamps independently: seconds never borrow from or carry into
// minutes here. Ignored while running.
func (c *Clock) AdjustDiscrete(part Part, delta int) {
	if c.running {
		return
	}
	minutes, seconds := c.split()
	switch part {
	case PartMinutes:
		minutes = clampInt(minutes+delta, 0, maxEditorMinutes)
	case PartSeconds:
		seconds = clampInt(seconds+delta, 0, maxEditorSeconds)
	default:
		return
	}
	c.setRemaining(minutes, seconds)
}

// BeginDrag starts a continuous edit gesture anchored at pointerY. Returns
// nil while the countdown is running, since editing is only legal when paused.
func (c *Clock) BeginDrag(part Part, pointerY int) *Drag {
	if c.running {
		return nil
	}
	if part != PartMinutes && part != PartSeconds {
		return nil
	}
	minutes, seconds := c.split()
	return &Drag{
		part:          part,
		originY:       pointerY,
		originMinutes: minutes,
		originSeconds: seconds,
		active:        true,
	}
}

// UpdateDrag recomputes the step count for the pointer's current position and
// commits a new value when it differs from the last committed step. Reports
// whether a commit happened. All math is relative to the gesture origin, so
// out-of-order duplicate moves are harmless.
func (c *Clock) UpdateDrag(d *Drag, pointerY int) bool {
	if d == nil || !d.active || c.running {
		return false
	}

	offset := d.originY - pointerY // upward motion is positive
	delta := int(math.Round(float64(offset) / DragSensitivity))
	if delta == d.lastDelta {
		return false
	}
	d.lastDelta = delta

	minutes := d.originMinutes
	seconds := d.originSeconds

	switch d.part {
	case PartMinutes:
		minutes = clampInt(d.originMinutes+delta, 0, maxEditorMinutes)
	case PartSeconds:
		seconds = d.originSeconds + delta
		if seconds < 0 {
			overflow := (-seconds + 59) / 60 // whole minutes borrowed, rounded up
			minutes = maxInt(0, d.originMinutes-overflow)
			seconds = ((seconds % 60) + 60) % 60
		} else if seconds >= 60 {
			minutes = minInt(maxEditorMinutes, d.originMinutes+seconds/60)
			seconds = seconds % 60
		}
	}

	c.setRemaining(minutes, seconds)
	return true
}

// EndDrag finalizes the gesture. The last committed value stands; no further
// updates through this drag are applied. Safe to call more than once, and on
// release anywhere; the whole viewport is the release target while a drag is
// active.
func (c *Clock) EndDrag(d *Drag) {
	if d == nil {
		return
	}
	d.active = false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
