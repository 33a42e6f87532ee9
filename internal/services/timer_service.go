// Package services implements the application layer (use cases) on top of the
// clock and domain packages, following hexagonal architecture principles. The
// TimerService is the single root that owns mutable state; views only read
// snapshots and dispatch intents.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hxlin/tomato-cli/internal/clock"
	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Completed bool
	Mode      domain.Mode
	Session   *domain.Session
	Unlocked  []domain.AchievementID
}

// TimerService owns the clock, the session log, and the unlocked achievement
// set. All mutations arrive through its intent methods on a single event
// loop; there is no internal locking.
type TimerService struct {
	storage ports.Storage
	cues    ports.CuePlayer
	git     ports.GitDetector

	clock       *clock.Clock
	log         *domain.SessionLog
	unlocked    []domain.AchievementID
	unlockedSet map[domain.AchievementID]bool
	drag        *clock.Drag
	pendingGit  *ports.GitInfo

	// now is stubbed in tests to pin streak evaluation to a fixed day.
	now func() time.Time
}

// NewTimerService creates the engine. cues and gitDetector may be nil; storage
// is required. Call Load before use to hydrate the log and unlocked set.
func NewTimerService(storage ports.Storage, cues ports.CuePlayer, gitDetector ports.GitDetector, durations map[domain.Mode]int) *TimerService {
	return &TimerService{
		storage:     storage,
		cues:        cues,
		git:         gitDetector,
		clock:       clock.New(durations),
		log:         domain.NewSessionLog(nil),
		unlockedSet: make(map[domain.AchievementID]bool),
		now:         time.Now,
	}
}

// Load hydrates the session log and unlocked achievement set from storage.
func (s *TimerService) Load(ctx context.Context) error {
	sessions, err := s.storage.Sessions().FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session log: %w", err)
	}
	s.log = domain.NewSessionLog(sessions)

	unlocked, err := s.storage.Achievements().FindUnlocked(ctx)
	if err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}
	s.unlocked = unlocked
	s.unlockedSet = make(map[domain.AchievementID]bool, len(unlocked))
	for _, id := range unlocked {
		s.unlockedSet[id] = true
	}
	return nil
}

// ClockState returns a snapshot of the countdown for read-only consumers.
func (s *TimerService) ClockState() clock.State {
	return s.clock.Snapshot()
}

// Durations returns the configured minutes per mode.
func (s *TimerService) Durations() map[domain.Mode]int {
	return s.clock.Durations()
}

// Log returns the session log.
func (s *TimerService) Log() *domain.SessionLog {
	return s.log
}

// UnlockedAchievements returns the unlocked set in qualification order.
func (s *TimerService) UnlockedAchievements() []domain.AchievementID {
	out := make([]domain.AchievementID, len(s.unlocked))
	copy(out, s.unlocked)
	return out
}

// Start begins the countdown. No-op when already running or expired. Plays
// the start cue and captures git context for the eventual session record.
func (s *TimerService) Start(ctx context.Context) {
	if !s.clock.Start() {
		return
	}
	if s.cues != nil {
		s.cues.StartCue()
	}
	s.pendingGit = nil
	if s.git != nil && s.git.IsAvailable() {
		if info, err := s.git.Detect(ctx, ""); err == nil {
			s.pendingGit = info
		}
	}
}

// Pause stops the countdown without resetting it.
func (s *TimerService) Pause() {
	s.clock.Pause()
}

// Reset restores the configured duration and stops the countdown. An
// in-flight countdown is abandoned without a completion.
func (s *TimerService) Reset() {
	s.clock.Reset()
}

// SwitchMode abandons the current countdown and loads the new mode. No
// session is appended for the abandoned countdown.
func (s *TimerService) SwitchMode(mode domain.Mode) {
	s.clock.SwitchMode(mode)
}

// SetModeDuration updates the configured minutes for a mode (clamped to
// [1,60]; ignored while that mode runs).
func (s *TimerService) SetModeDuration(mode domain.Mode, minutes int) {
	s.clock.SetModeDuration(mode, minutes)
}

// AdjustDiscrete applies a wheel-tick edit. direction is +1 or -1.
func (s *TimerService) AdjustDiscrete(part clock.Part, direction int) {
	s.clock.AdjustDiscrete(part, direction)
}

// BeginDrag starts a continuous edit gesture. Reports whether editing is
// active (it is refused while running).
func (s *TimerService) BeginDrag(part clock.Part, pointerY int) bool {
	s.drag = s.clock.BeginDrag(part, pointerY)
	return s.drag != nil
}

// UpdateDrag feeds a pointer move into the active gesture. Reports whether a
// new value was committed.
func (s *TimerService) UpdateDrag(pointerY int) bool {
	return s.clock.UpdateDrag(s.drag, pointerY)
}

// EndDrag finalizes the gesture. Safe to call when no drag is active.
func (s *TimerService) EndDrag() {
	s.clock.EndDrag(s.drag)
	s.drag = nil
}

// DragActive reports whether a drag edit is in progress, for visual feedback.
func (s *TimerService) DragActive() bool {
	return s.drag.Active()
}

// DragPart returns the part being edited by the active drag.
func (s *TimerService) DragPart() (clock.Part, bool) {
	if !s.drag.Active() {
		return 0, false
	}
	return s.drag.Part(), true
}

// Tick advances the countdown by one second. On focus completion it appends a
// session, bumps the active task's pomodoro count, evaluates achievements and
// plays the corresponding cues. Break completions only cue. Persistence
// errors are reported through the result's Session being stored best-effort;
// the in-memory log remains authoritative for the run.
func (s *TimerService) Tick(ctx context.Context) TickResult {
	mode := s.clock.Mode()
	if !s.clock.Tick() {
		return TickResult{}
	}

	res := TickResult{Completed: true, Mode: mode}
	if s.cues != nil {
		s.cues.CompletionCue(mode)
	}
	if mode != domain.ModeFocus {
		return res
	}

	res.Session = s.appendSession(ctx)
	res.Unlocked = s.evaluateAchievements(ctx)
	if s.cues != nil {
		for _, id := range res.Unlocked {
			s.cues.AchievementCue(id)
		}
	}
	return res
}

// appendSession records a completed focus countdown: configured minutes, the
// active task reference and its text snapshot, and any git context captured
// at start.
func (s *TimerService) appendSession(ctx context.Context) *domain.Session {
	var taskID *string
	var taskText string
	if id, err := s.storage.Tasks().FindActive(ctx); err == nil && id != nil {
		if task, err := s.storage.Tasks().FindByID(ctx, *id); err == nil {
			taskID = &task.ID
			taskText = task.Text
			task.RecordPomodoro()
			_ = s.storage.Tasks().Update(ctx, task)
		}
	}

	session := domain.NewSession(s.clock.ConfiguredMinutes(domain.ModeFocus), taskID, taskText)
	if s.pendingGit != nil {
		session.SetGitContext(s.pendingGit.Branch, s.pendingGit.Commit)
		s.pendingGit = nil
	}

	s.log.Append(session)
	_ = s.storage.Sessions().Append(ctx, session)
	return session
}

// evaluateAchievements runs the evaluator over the updated log and persists
// anything newly unlocked, preserving qualification order.
func (s *TimerService) evaluateAchievements(ctx context.Context) []domain.AchievementID {
	newly := domain.EvaluateAchievements(s.log.All(), s.unlockedSet, s.now())
	if len(newly) == 0 {
		return nil
	}
	for _, id := range newly {
		s.unlocked = append(s.unlocked, id)
		s.unlockedSet[id] = true
	}
	_ = s.storage.Achievements().Unlock(ctx, newly)
	return newly
}
