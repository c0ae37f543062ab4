package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoQuestions      = errors.New("quiz has no questions")
	ErrInvalidQuestion  = errors.New("invalid question")
	ErrSessionCompleted = errors.New("session already completed")
	ErrOutOfRange       = errors.New("question index out of range")
	ErrNotVisited       = errors.New("question not visited yet")
	ErrInvalidOption    = errors.New("option index out of range")
	ErrWrongKind        = errors.New("operation not supported for this quiz kind")
)

type Phase string

const (
	PhaseIdle      Phase = "IDLE"
	PhaseActive    Phase = "ACTIVE"
	PhaseCompleted Phase = "COMPLETED"
)

// Transition reports what Next did.
type Transition int

const (
	Stayed Transition = iota
	Advanced
	Completed
)

const unanswered = -1

// Session is one generated quiz from creation to completion. The question
// list is fixed at creation; only position, answers and completion change.
type Session struct {
	ID        uuid.UUID
	Kind      Kind
	StartedAt time.Time

	questions  []Question
	answers    []int
	position   int
	maxVisited int
	completed  bool
}

func NewSession(kind Kind, questions []Question, now time.Time) (*Session, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidQuestion, kind)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range questions {
		if err := q.validFor(kind); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}
	answers := make([]int, len(qs))
	for i := range answers {
		answers[i] = unanswered
	}

	return &Session{
		ID:        uuid.New(),
		Kind:      kind,
		StartedAt: now,
		questions: qs,
		answers:   answers,
	}, nil
}

func (s *Session) Len() int { return len(s.questions) }

func (s *Session) Position() int { return s.position }

func (s *Session) Current() Question { return s.questions[s.position] }

func (s *Session) Question(i int) (Question, bool) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[i], true
}

func (s *Session) IsFirst() bool { return s.position == 0 }

func (s *Session) IsLast() bool { return s.position == len(s.questions)-1 }

func (s *Session) Completed() bool { return s.completed }

func (s *Session) Phase() Phase {
	if s.completed {
		return PhaseCompleted
	}
	return PhaseActive
}

// AllVisited reports whether every question has been displayed at least once.
func (s *Session) AllVisited() bool { return s.maxVisited == len(s.questions)-1 }

// Answer returns the recorded option for question i.
func (s *Session) Answer(i int) (int, bool) {
	if i < 0 || i >= len(s.answers) || s.answers[i] == unanswered {
		return 0, false
	}
	return s.answers[i], true
}

func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a != unanswered {
			n++
		}
	}
	return n
}

// Next moves forward one question. At the last question it completes the
// session; once completed it does nothing.
func (s *Session) Next() Transition {
	if s.completed {
		return Stayed
	}
	if s.IsLast() {
		s.completed = true
		return Completed
	}
	s.position++
	if s.position > s.maxVisited {
		s.maxVisited = s.position
	}
	return Advanced
}

func (s *Session) Previous() bool {
	if s.completed || s.position == 0 {
		return false
	}
	s.position--
	return true
}

// RecordAnswer stores the selected option for question i, replacing any
// earlier selection.
func (s *Session) RecordAnswer(i, option int) error {
	if s.Kind != KindMCQ {
		return ErrWrongKind
	}
	if s.completed {
		return ErrSessionCompleted
	}
	if i < 0 || i >= len(s.questions) {
		return ErrOutOfRange
	}
	if i > s.maxVisited {
		return ErrNotVisited
	}
	if option < 0 || option >= len(s.questions[i].Options) {
		return ErrInvalidOption
	}
	s.answers[i] = option
	return nil
}
