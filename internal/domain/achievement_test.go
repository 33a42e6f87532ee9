package domain

import (
	"testing"
	"time"
)

// sessionOn builds a session with a fixed duration on the given day offset
// from now (0 = today, -1 = yesterday, ...).
func sessionOn(now time.Time, dayOffset, minutes int) *Session {
	s := NewSession(minutes, nil, "")
	s.Timestamp = now.AddDate(0, 0, dayOffset)
	return s
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)

	sessions := []*Session{
		sessionOn(now, 0, 25),
		sessionOn(now, -1, 25),
		sessionOn(now, -2, 25),
		// Gap at -3.
		sessionOn(now, -4, 25),
	}

	if got := Streak(sessions, now); got != 3 {
		t.Errorf("Streak() = %d, want 3", got)
	}
}

func TestStreak_NoSessionToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)

	sessions := []*Session{
		sessionOn(now, -1, 25),
		sessionOn(now, -2, 25),
	}

	if got := Streak(sessions, now); got != 0 {
		t.Errorf("Streak() = %d, want 0 when today has no session", got)
	}
}

func TestStreak_MultipleSessionsSameDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)

	sessions := []*Session{
		sessionOn(now, 0, 25),
		sessionOn(now, 0, 25),
		sessionOn(now, -1, 25),
	}

	if got := Streak(sessions, now); got != 2 {
		t.Errorf("Streak() = %d, want 2", got)
	}
}

func TestStreak_Empty(t *testing.T) {
	if got := Streak(nil, time.Now()); got != 0 {
		t.Errorf("Streak() = %d, want 0 for empty log", got)
	}
}

func TestEvaluateAchievements_FirstSession(t *testing.T) {
	now := time.Now()
	sessions := []*Session{sessionOn(now, 0, 25)}

	got := EvaluateAchievements(sessions, map[AchievementID]bool{}, now)

	want := []AchievementID{AchievementFirstSession}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("EvaluateAchievements() = %v, want %v", got, want)
	}
}

func TestEvaluateAchievements_TenSessionsDoesNotRepeatFirst(t *testing.T) {
	now := time.Now()
	var sessions []*Session
	for i := 0; i < 10; i++ {
		sessions = append(sessions, sessionOn(now, 0, 1))
	}

	unlocked := map[AchievementID]bool{AchievementFirstSession: true}
	got := EvaluateAchievements(sessions, unlocked, now)

	for _, id := range got {
		if id == AchievementFirstSession {
			t.Error("EvaluateAchievements() re-reported first_session")
		}
	}
	if len(got) == 0 || got[0] != AchievementTenSessions {
		t.Errorf("EvaluateAchievements() = %v, want ten_sessions first", got)
	}
}

func TestEvaluateAchievements_OneHourCrossedInSingleAppend(t *testing.T) {
	now := time.Now()
	sessions := []*Session{sessionOn(now, 0, 59)}
	unlocked := map[AchievementID]bool{}

	got := EvaluateAchievements(sessions, unlocked, now)
	unlocked[AchievementFirstSession] = true
	for _, id := range got {
		if id == AchievementOneHour {
			t.Fatal("one_hour unlocked at 59 cumulative minutes")
		}
	}

	// A 25-minute session pushes the sum to 84, crossing 60 in one append.
	sessions = append(sessions, sessionOn(now, 0, 25))
	got = EvaluateAchievements(sessions, unlocked, now)

	found := false
	for _, id := range got {
		if id == AchievementOneHour {
			found = true
		}
	}
	if !found {
		t.Errorf("EvaluateAchievements() = %v, want one_hour at 84 cumulative minutes", got)
	}
}

func TestEvaluateAchievements_DefinitionOrder(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)

	// 10 sessions of 10 minutes spread over 3 consecutive days crosses
	// first_session, ten_sessions, one_hour and consecutive_3 at once.
	var sessions []*Session
	for i := 0; i < 10; i++ {
		sessions = append(sessions, sessionOn(now, -(i % 3), 10))
	}

	got := EvaluateAchievements(sessions, map[AchievementID]bool{}, now)

	want := []AchievementID{
		AchievementFirstSession,
		AchievementTenSessions,
		AchievementOneHour,
		AchievementConsecutive3,
	}
	if len(got) != len(want) {
		t.Fatalf("EvaluateAchievements() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EvaluateAchievements()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEvaluateAchievements_Idempotent(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)

	var sessions []*Session
	for i := 0; i < 12; i++ {
		sessions = append(sessions, sessionOn(now, -(i % 4), 25))
	}

	unlocked := map[AchievementID]bool{}
	first := EvaluateAchievements(sessions, unlocked, now)
	for _, id := range first {
		unlocked[id] = true
	}

	second := EvaluateAchievements(sessions, unlocked, now)
	if len(second) != 0 {
		t.Errorf("EvaluateAchievements() second pass = %v, want empty", second)
	}
}

func TestAchievementDefs_Count(t *testing.T) {
	defs := AchievementDefs()
	if len(defs) != 9 {
		t.Errorf("AchievementDefs() len = %d, want 9", len(defs))
	}
}

func TestLookupAchievement(t *testing.T) {
	def, ok := LookupAchievement(AchievementTenHours)
	if !ok {
		t.Fatal("LookupAchievement(ten_hours) not found")
	}
	if def.Threshold != 600 {
		t.Errorf("Threshold = %d, want 600", def.Threshold)
	}

	if _, ok := LookupAchievement("nope"); ok {
		t.Error("LookupAchievement(nope) should not be found")
	}
}
