package history

import (
	"time"

	"github.com/saulo-duarte/quizdeck/internal/quiz"
	util "github.com/saulo-duarte/quizdeck/internal/utils"
)

const (
	DefaultCapacity = 50
	PreviewLength   = 100
)

type Entry struct {
	ID           int64     `json:"id"`
	Date         string    `json:"date"`
	Kind         quiz.Kind `json:"type"`
	Questions    int       `json:"questions"`
	NotesPreview string    `json:"notes_preview"`
}

// NewEntry summarises a finished session. The id is the creation time in
// unix milliseconds.
func NewEntry(s *quiz.Session, notes string, now time.Time) Entry {
	return Entry{
		ID:           now.UnixMilli(),
		Date:         util.HumanDate(now),
		Kind:         s.Kind,
		Questions:    s.Len(),
		NotesPreview: Preview(notes),
	}
}

func Preview(notes string) string {
	p, truncated := util.Truncate(notes, PreviewLength)
	if truncated {
		return p + "..."
	}
	return p
}

// Log is an in-memory, newest-first list of finished sessions. It lives only
// as long as the process and keeps at most capacity entries.
type Log struct {
	capacity int
	entries  []Entry
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

func (l *Log) Record(e Entry) {
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries returns a copy, most recent first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int { return len(l.entries) }
