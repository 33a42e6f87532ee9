package clock

import (
	"testing"

	"github.com/hxlin/tomato-cli/internal/domain"
)

// editorClock returns a paused clock showing the given minutes:seconds.
func editorClock(minutes, seconds int) *Clock {
	c := New(map[domain.Mode]int{domain.ModeFocus: 1})
	c.setRemaining(minutes, seconds)
	return c
}

func TestAdjustDiscrete_Minutes(t *testing.T) {
	c := editorClock(25, 0)

	c.AdjustDiscrete(PartMinutes, 1)
	if got := c.Remaining(); got != 26*60 {
		t.Errorf("Remaining() = %d, want %d", got, 26*60)
	}

	c.AdjustDiscrete(PartMinutes, -3)
	if got := c.Remaining(); got != 23*60 {
		t.Errorf("Remaining() = %d, want %d", got, 23*60)
	}
}

func TestAdjustDiscrete_MinutesClamp(t *testing.T) {
	c := editorClock(0, 30)
	c.AdjustDiscrete(PartMinutes, -1)
	if got := c.Remaining(); got != 30 {
		t.Errorf("Remaining() = %d, want minutes clamped at 0", got)
	}

	c = editorClock(99, 0)
	c.AdjustDiscrete(PartMinutes, 1)
	if got := c.Remaining(); got != 99*60 {
		t.Errorf("Remaining() = %d, want minutes clamped at 99", got)
	}
}

func TestAdjustDiscrete_SecondsNeverBorrows(t *testing.T) {
	c := editorClock(5, 0)

	c.AdjustDiscrete(PartSeconds, -1)

	if got := c.Remaining(); got != 5*60 {
		t.Errorf("Remaining() = %d, want seconds clamped at 0 with minutes unchanged", got)
	}
}

func TestAdjustDiscrete_SecondsNeverCarries(t *testing.T) {
	c := editorClock(5, 59)

	c.AdjustDiscrete(PartSeconds, 1)

	if got := c.Remaining(); got != 5*60+59 {
		t.Errorf("Remaining() = %d, want seconds clamped at 59 with minutes unchanged", got)
	}
}

func TestAdjustDiscrete_IgnoredWhileRunning(t *testing.T) {
	c := editorClock(5, 0)
	c.Start()

	c.AdjustDiscrete(PartMinutes, 1)

	if got := c.Remaining(); got != 5*60 {
		t.Errorf("Remaining() = %d, want unchanged while running", got)
	}
}

func TestAdjustDiscrete_PersistsMinutesIntoConfig(t *testing.T) {
	c := editorClock(25, 0)

	c.AdjustDiscrete(PartMinutes, 5)

	if got := c.ConfiguredMinutes(domain.ModeFocus); got != 30 {
		t.Errorf("ConfiguredMinutes() = %d, want 30 persisted", got)
	}
	c.Reset()
	if got := c.Remaining(); got != 30*60 {
		t.Errorf("Remaining() after Reset = %d, want %d", got, 30*60)
	}
}

func TestBeginDrag_RefusedWhileRunning(t *testing.T) {
	c := editorClock(5, 0)
	c.Start()

	if d := c.BeginDrag(PartMinutes, 100); d != nil {
		t.Error("BeginDrag() while running should return nil")
	}
}

func TestUpdateDrag_MinutesFollowsPointer(t *testing.T) {
	c := editorClock(25, 10)
	d := c.BeginDrag(PartMinutes, 200)

	// 15 units up at sensitivity 5 = +3 minutes.
	if !c.UpdateDrag(d, 185) {
		t.Fatal("UpdateDrag() should commit on a changed delta")
	}
	if got := c.Remaining(); got != 28*60+10 {
		t.Errorf("Remaining() = %d, want %d (seconds untouched)", got, 28*60+10)
	}
}

func TestUpdateDrag_DeduplicatesCommits(t *testing.T) {
	c := editorClock(25, 0)
	d := c.BeginDrag(PartMinutes, 200)

	if !c.UpdateDrag(d, 190) {
		t.Fatal("first move should commit")
	}
	// 2 more pixels is still delta=2 after rounding; no new commit.
	if c.UpdateDrag(d, 188) {
		t.Error("UpdateDrag() with unchanged delta should not commit")
	}
}

func TestUpdateDrag_SecondsBorrowsMinutes(t *testing.T) {
	c := editorClock(2, 10)
	d := c.BeginDrag(PartSeconds, 0)

	// 75 units down = delta -15: 10-15 = -5 → borrow one minute, wrap to 55.
	if !c.UpdateDrag(d, 75) {
		t.Fatal("UpdateDrag() should commit")
	}
	minutes, seconds := c.Remaining()/60, c.Remaining()%60
	if minutes != 1 || seconds != 55 {
		t.Errorf("got %02d:%02d, want 01:55", minutes, seconds)
	}
}

func TestUpdateDrag_SecondsBorrowClampsAtZeroMinutes(t *testing.T) {
	c := editorClock(0, 10)
	d := c.BeginDrag(PartSeconds, 0)

	c.UpdateDrag(d, 75) // delta -15

	minutes, seconds := c.Remaining()/60, c.Remaining()%60
	if minutes != 0 || seconds != 55 {
		t.Errorf("got %02d:%02d, want 00:55 (minutes clamped)", minutes, seconds)
	}
}

func TestUpdateDrag_SecondsCarriesIntoMinutes(t *testing.T) {
	c := editorClock(2, 50)
	d := c.BeginDrag(PartSeconds, 500)

	// 75 units up = delta +15: 50+15 = 65 → carry to 3:05.
	c.UpdateDrag(d, 425)

	minutes, seconds := c.Remaining()/60, c.Remaining()%60
	if minutes != 3 || seconds != 5 {
		t.Errorf("got %02d:%02d, want 03:05", minutes, seconds)
	}
}

func TestUpdateDrag_SecondsCarryClampsAt99Minutes(t *testing.T) {
	c := editorClock(99, 30)
	d := c.BeginDrag(PartSeconds, 500)

	c.UpdateDrag(d, 200) // delta +60 → 90 seconds

	minutes, seconds := c.Remaining()/60, c.Remaining()%60
	if minutes != 99 || seconds != 30 {
		t.Errorf("got %02d:%02d, want 99:30 (minutes clamped)", minutes, seconds)
	}
}

func TestUpdateDrag_RelativeToOrigin(t *testing.T) {
	c := editorClock(10, 0)
	d := c.BeginDrag(PartMinutes, 100)

	c.UpdateDrag(d, 50) // +10
	c.UpdateDrag(d, 75) // +5 from origin, not cumulative

	if got := c.Remaining(); got != 15*60 {
		t.Errorf("Remaining() = %d, want %d (deltas anchored at origin)", got, 15*60)
	}
}

func TestUpdateDrag_PersistsMinutesOnly(t *testing.T) {
	c := editorClock(2, 10)
	d := c.BeginDrag(PartSeconds, 0)
	c.UpdateDrag(d, 75) // borrows a minute → 1:55
	c.EndDrag(d)

	if got := c.ConfiguredMinutes(domain.ModeFocus); got != 1 {
		t.Errorf("ConfiguredMinutes() = %d, want 1 persisted", got)
	}
	// Seconds are transient: a reset goes back to whole minutes.
	c.Reset()
	if got := c.Remaining(); got != 60 {
		t.Errorf("Remaining() after Reset = %d, want 60", got)
	}
}

func TestEndDrag_FinalizesGesture(t *testing.T) {
	c := editorClock(10, 0)
	d := c.BeginDrag(PartMinutes, 100)
	c.UpdateDrag(d, 50)
	c.EndDrag(d)

	if d.Active() {
		t.Error("drag should be inactive after EndDrag()")
	}
	if c.UpdateDrag(d, 0) {
		t.Error("UpdateDrag() after EndDrag() should not commit")
	}
	if got := c.Remaining(); got != 20*60 {
		t.Errorf("Remaining() = %d, want last committed value to stand", got)
	}

	// EndDrag is idempotent, release can arrive from several listeners.
	c.EndDrag(d)
	c.EndDrag(nil)
}
