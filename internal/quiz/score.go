package quiz

import (
	"errors"
	"fmt"
)

var ErrNotFinished = errors.New("not every question has been visited")

type Tier int

const (
	TierKeepPracticing Tier = iota
	TierNotBad
	TierGood
	TierGreat
	TierExcellent
)

var tierMessages = map[Tier]string{
	TierExcellent:      "Excellent! You've mastered this material! 🌟",
	TierGreat:          "Great job! You have a solid understanding! 👏",
	TierGood:           "Good work! A bit more review and you'll ace it! 📈",
	TierNotBad:         "Not bad! Keep studying to improve your score! 📚",
	TierKeepPracticing: "Keep practicing! Review your notes and try again! 💪",
}

// TierFor maps a percentage to its bracket; lower bounds are inclusive.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 80:
		return TierGreat
	case percentage >= 70:
		return TierGood
	case percentage >= 60:
		return TierNotBad
	default:
		return TierKeepPracticing
	}
}

func (t Tier) Message() string { return tierMessages[t] }

type Result struct {
	Correct    int  `json:"correct"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Tier       Tier `json:"tier"`
}

func (r Result) Message() string { return r.Tier.Message() }

func (r Result) Summary() string {
	return fmt.Sprintf("Your Score: %d/%d (%d%%)", r.Correct, r.Total, r.Percentage)
}

// Score counts answers matching the correct option. Unset answers count as
// incorrect.
func Score(s *Session) (Result, error) {
	if s.Kind != KindMCQ {
		return Result{}, ErrWrongKind
	}
	if !s.AllVisited() {
		return Result{}, ErrNotFinished
	}

	correct := 0
	for i, q := range s.questions {
		if s.answers[i] == q.Correct {
			correct++
		}
	}

	total := len(s.questions)
	pct := Percentage(correct, total)
	return Result{
		Correct:    correct,
		Total:      total,
		Percentage: pct,
		Tier:       TierFor(pct),
	}, nil
}

// Percentage is round(correct/total*100) with halves rounded up.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (correct*200 + total) / (2 * total)
}

func FlashcardCompletionMessage(count int) string {
	return fmt.Sprintf("You've reviewed %d flashcards. Great job studying! 📚", count)
}
