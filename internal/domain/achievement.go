package domain

import (
	"sort"
	"time"
)

// AchievementID identifies one of the fixed achievements.
type AchievementID string

const (
	AchievementFirstSession    AchievementID = "first_session"
	AchievementTenSessions     AchievementID = "ten_sessions"
	AchievementFiftySessions   AchievementID = "fifty_sessions"
	AchievementHundredSessions AchievementID = "hundred_sessions"
	AchievementOneHour         AchievementID = "one_hour"
	AchievementTenHours        AchievementID = "ten_hours"
	AchievementConsecutive3    AchievementID = "consecutive_3"
	AchievementConsecutive7    AchievementID = "consecutive_7"
	AchievementConsecutive30   AchievementID = "consecutive_30"
)

// AchievementMetric selects which aggregate an achievement threshold applies to.
type AchievementMetric int

const (
	MetricSessionCount AchievementMetric = iota
	MetricTotalMinutes
	MetricStreakDays
)

// AchievementDef describes one achievement: the metric it tracks and the
// threshold at which it unlocks.
type AchievementDef struct {
	ID          AchievementID
	Name        string
	Description string
	Metric      AchievementMetric
	Threshold   int
}

// achievementDefs is the fixed definition order. Callers sequence unlock
// notifications using this order, so it must not be rearranged.
var achievementDefs = []AchievementDef{
	{AchievementFirstSession, "First Steps", "Complete your first focus session", MetricSessionCount, 1},
	{AchievementTenSessions, "Getting Somewhere", "Complete 10 focus sessions", MetricSessionCount, 10},
	{AchievementFiftySessions, "Focus Adept", "Complete 50 focus sessions", MetricSessionCount, 50},
	{AchievementHundredSessions, "Focus Master", "Complete 100 focus sessions", MetricSessionCount, 100},
	{AchievementOneHour, "Hour Logged", "Accumulate 1 hour of focus time", MetricTotalMinutes, 60},
	{AchievementTenHours, "Time Keeper", "Accumulate 10 hours of focus time", MetricTotalMinutes, 600},
	{AchievementConsecutive3, "Three in a Row", "Focus on 3 consecutive days", MetricStreakDays, 3},
	{AchievementConsecutive7, "Full Week", "Focus on 7 consecutive days", MetricStreakDays, 7},
	{AchievementConsecutive30, "Monthly Habit", "Focus on 30 consecutive days", MetricStreakDays, 30},
}

// AchievementDefs returns the achievement definitions in unlock-check order.
func AchievementDefs() []AchievementDef {
	out := make([]AchievementDef, len(achievementDefs))
	copy(out, achievementDefs)
	return out
}

// LookupAchievement returns the definition for id, if it exists.
func LookupAchievement(id AchievementID) (AchievementDef, bool) {
	for _, def := range achievementDefs {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDef{}, false
}

// Streak returns the count of consecutive local calendar days, ending on the
// day of now, that have at least one session. A day only counts if it is
// exactly i days before now's day for index i, so a session today is required
// for a non-zero streak and a single missing day breaks it.
func Streak(sessions []*Session, now time.Time) int {
	seen := make(map[time.Time]bool, len(sessions))
	for _, s := range sessions {
		seen[dayOf(s.Timestamp)] = true
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dayOf(now)
	streak := 0
	for i, d := range days {
		if today.AddDate(0, 0, -i).Equal(d) {
			streak++
		} else {
			break
		}
	}
	return streak
}

// EvaluateAchievements derives the achievements newly unlocked by the given
// session log. The result preserves definition order and excludes anything in
// unlocked, so re-running with the union of unlocked and the previous result
// yields nothing.
func EvaluateAchievements(sessions []*Session, unlocked map[AchievementID]bool, now time.Time) []AchievementID {
	totalCount := len(sessions)
	totalMinutes := 0
	for _, s := range sessions {
		totalMinutes += s.DurationMinutes
	}
	streak := Streak(sessions, now)

	var newly []AchievementID
	for _, def := range achievementDefs {
		if unlocked[def.ID] {
			continue
		}
		var current int
		switch def.Metric {
		case MetricSessionCount:
			current = totalCount
		case MetricTotalMinutes:
			current = totalMinutes
		case MetricStreakDays:
			current = streak
		}
		if current >= def.Threshold {
			newly = append(newly, def.ID)
		}
	}
	return newly
}
