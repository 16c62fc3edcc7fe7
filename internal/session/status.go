package session

import (
	"fmt"
	"time"
)

// Level is the severity of a status message
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// Status is the last user-facing message of the session
type Status struct {
	Text  string
	Level Level
	At    time.Time
}

// String renders the message with its wall-clock time, e.g.
// "Reverted Changes [14:05]". An empty status renders empty.
func (s Status) String() string {
	if s.Text == "" {
		return ""
	}
	return fmt.Sprintf("%s [%s]", s.Text, s.At.Format("15:04"))
}

// Status returns the last status message
func (s *Session) Status() Status {
	return s.status
}

// SetStatus replaces the status message
func (s *Session) SetStatus(text string, level Level) {
	s.setStatus(text, level)
}

func (s *Session) setStatus(text string, level Level) {
	s.status = Status{
		Text:  text,
		Level: level,
		At:    s.now(),
	}
}
