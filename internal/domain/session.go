package domain

import "time"

// Session is a logged, completed focus interval. Sessions are immutable once
// appended; TaskText is a snapshot taken at append time, so deleting the task
// later does not alter history.
type Session struct {
	ID              string
	Timestamp       time.Time
	DurationMinutes int
	TaskID          *string
	TaskText        string
	GitBranch       string
	GitCommit       string
}

// NewSession creates a session record for a just-completed focus countdown.
func NewSession(durationMinutes int, taskID *string, taskText string) *Session {
	return &Session{
		ID:              generateID(),
		Timestamp:       time.Now(),
		DurationMinutes: durationMinutes,
		TaskID:          taskID,
		TaskText:        taskText,
	}
}

// SetGitContext stores git information captured when the session started.
func (s *Session) SetGitContext(branch, commit string) {
	s.GitBranch = branch
	s.GitCommit = commit
}

// SessionLog is the append-only record of completed focus sessions. The
// canonical order is append order; callers wanting newest-first reverse it.
type SessionLog struct {
	sessions []*Session
}

// NewSessionLog creates a log pre-populated with previously stored sessions,
// given in append order.
func NewSessionLog(sessions []*Session) *SessionLog {
	log := &SessionLog{}
	log.sessions = append(log.sessions, sessions...)
	return log
}

// Append adds a session to the log.
func (l *SessionLog) Append(s *Session) {
	l.sessions = append(l.sessions, s)
}

// All returns the sessions in append order.
func (l *SessionLog) All() []*Session {
	out := make([]*Session, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// Newest returns the sessions in reverse-chronological (append) order.
func (l *SessionLog) Newest() []*Session {
	out := make([]*Session, len(l.sessions))
	for i, s := range l.sessions {
		out[len(l.sessions)-1-i] = s
	}
	return out
}

// Len returns the number of logged sessions.
func (l *SessionLog) Len() int {
	return len(l.sessions)
}

// TotalMinutes returns the cumulative focus minutes across the log.
func (l *SessionLog) TotalMinutes() int {
	total := 0
	for _, s := range l.sessions {
		total += s.DurationMinutes
	}
	return total
}

// OnDay returns the sessions whose timestamp falls on the same local calendar
// day as t.
func (l *SessionLog) OnDay(t time.Time) []*Session {
	day := dayOf(t)
	var out []*Session
	for _, s := range l.sessions {
		if dayOf(s.Timestamp).Equal(day) {
			out = append(out, s)
		}
	}
	return out
}

// Since returns the sessions with timestamps at or after t.
func (l *SessionLog) Since(t time.Time) []*Session {
	var out []*Session
	for _, s := range l.sessions {
		if !s.Timestamp.Before(t) {
			out = append(out, s)
		}
	}
	return out
}

// dayOf truncates t to local midnight.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
