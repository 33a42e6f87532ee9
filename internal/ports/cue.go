package ports

import "github.com/hxlin/tomato-cli/internal/domain"

// CuePlayer receives the audio/notification cues the core emits. The core
// only triggers cues; how they are rendered (tone, desktop notification,
// nothing) is the adapter's business.
type CuePlayer interface {
	// StartCue plays when a countdown starts.
	StartCue()

	// CompletionCue plays when a countdown reaches zero.
	CompletionCue(mode domain.Mode)

	// AchievementCue plays once per newly unlocked achievement, in
	// qualification order.
	AchievementCue(id domain.AchievementID)
}
