package quiz

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindMCQ       Kind = "mcq"
	KindFlashcard Kind = "flashcard"
)

var AllKinds = []Kind{
	KindMCQ,
	KindFlashcard,
}

func (k Kind) IsValid() bool {
	for _, v := range AllKinds {
		if k == v {
			return true
		}
	}
	return false
}

func (k Kind) Label() string {
	if k == KindFlashcard {
		return "Flashcard Set"
	}
	return "Multiple Choice Quiz"
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid quiz type %q", s)
	}
	return k, nil
}

// Question is a prompt with a kind-specific payload. Options and Correct are
// set for multiple choice; Answer is set for flashcards.
type Question struct {
	Prompt  string
	Options []string
	Correct int
	Answer  string
}

func (q Question) validFor(kind Kind) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	switch kind {
	case KindMCQ:
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: need at least 2 options, got %d", ErrInvalidQuestion, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("%w: correct option %d out of range", ErrInvalidQuestion, q.Correct)
		}
	case KindFlashcard:
		if strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("%w: flashcard without answer", ErrInvalidQuestion)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidQuestion, kind)
	}
	return nil
}
