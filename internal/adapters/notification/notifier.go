// Package notification renders the core's cues as tones and desktop
// notifications.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/hxlin/tomato-cli/internal/config"
	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
)

// Tone frequencies and lengths for the three cue kinds.
const (
	startFreq      = 440.0
	startMillis    = 150
	completeFreq   = 880.0
	completeMillis = 500
	unlockFreqLow  = 660.0
	unlockFreqHigh = 880.0
	unlockMillis   = 150
)

// Notifier implements ports.CuePlayer on top of beeep. Tones and desktop
// notifications are gated independently by the notification config.
type Notifier struct {
	cfg *config.NotificationConfig
}

var _ ports.CuePlayer = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// StartCue plays a short low tone when a countdown starts.
func (n *Notifier) StartCue() {
	n.beep(startFreq, startMillis)
}

// CompletionCue plays a long high tone and posts a desktop notification when
// a countdown reaches zero.
func (n *Notifier) CompletionCue(mode domain.Mode) {
	n.beep(completeFreq, completeMillis)

	switch mode {
	case domain.ModeFocus:
		n.notify("🍅 Focus Complete!", "Great work. Time for a break.")
	default:
		n.notify("☕ Break Over!", fmt.Sprintf("Your %s is done. Ready to focus?", mode.Label()))
	}
}

// AchievementCue plays a rising two-tone chime and posts a notification for a
// newly unlocked achievement.
func (n *Notifier) AchievementCue(id domain.AchievementID) {
	if n.soundEnabled() {
		// Two tones back to back, off the event loop so ticks are not
		// delayed.
		go func() {
			_ = beeep.Beep(unlockFreqLow, unlockMillis)
			time.Sleep(unlockMillis * time.Millisecond)
			_ = beeep.Beep(unlockFreqHigh, unlockMillis)
		}()
	}

	if def, ok := domain.LookupAchievement(id); ok {
		n.notify("🏆 Achievement Unlocked!", fmt.Sprintf("%s: %s", def.Name, def.Description))
	}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// IsEnabled returns true if desktop notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

func (n *Notifier) notify(title, message string) {
	_ = n.Notify(title, message)
}

func (n *Notifier) beep(freq float64, millis int) {
	if !n.soundEnabled() {
		return
	}
	go func() {
		_ = beeep.Beep(freq, millis)
	}()
}

func (n *Notifier) soundEnabled() bool {
	return n.cfg != nil && n.cfg.Sound
}
