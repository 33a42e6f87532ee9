package config

import (
	"testing"

	"github.com/hxlin/tomato-cli/internal/domain"
)

func TestDefaultConfig_TimerMinutes(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timer.FocusMinutes != 25 {
		t.Errorf("expected default focus 25, got %d", cfg.Timer.FocusMinutes)
	}
	if cfg.Timer.ShortBreakMinutes != 5 {
		t.Errorf("expected default short break 5, got %d", cfg.Timer.ShortBreakMinutes)
	}
	if cfg.Timer.LongBreakMinutes != 15 {
		t.Errorf("expected default long break 15, got %d", cfg.Timer.LongBreakMinutes)
	}
}

func TestTimerConfig_Durations(t *testing.T) {
	cfg := DefaultConfig()
	durations := cfg.Timer.Durations()
	if durations[domain.ModeFocus] != 25 {
		t.Errorf("expected focus 25, got %d", durations[domain.ModeFocus])
	}
	if durations[domain.ModeShortBreak] != 5 {
		t.Errorf("expected short break 5, got %d", durations[domain.ModeShortBreak])
	}
	if durations[domain.ModeLongBreak] != 15 {
		t.Errorf("expected long break 15, got %d", durations[domain.ModeLongBreak])
	}
}

func TestTimerConfig_SetDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timer.SetDuration(domain.ModeFocus, 50)
	if cfg.Timer.FocusMinutes != 50 {
		t.Errorf("expected focus 50 after SetDuration, got %d", cfg.Timer.FocusMinutes)
	}

	// Unknown modes are ignored.
	cfg.Timer.SetDuration(domain.Mode("nap"), 7)
	if cfg.Timer.Durations()[domain.ModeShortBreak] != 5 {
		t.Error("unknown mode altered an existing duration")
	}
}

func TestDefaultConfig_Notifications(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Notifications.Enabled {
		t.Error("expected notifications enabled by default")
	}
	if !cfg.Notifications.Sound {
		t.Error("expected sound enabled by default")
	}
}
