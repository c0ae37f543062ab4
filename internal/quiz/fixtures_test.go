package quiz_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/quizdeck/internal/quiz"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func mcqQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			Prompt:  "Which layer handles routing?",
			Options: []string{"Physical", "Data link", "Network", "Transport"},
			Correct: 2,
		}
	}
	return qs
}

func flashcards(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{Prompt: "What is mitosis?", Answer: "Cell division"}
	}
	return qs
}

func newMCQSession(t *testing.T, n int) *quiz.Session {
	t.Helper()
	s, err := quiz.NewSession(quiz.KindMCQ, mcqQuestions(n), testNow)
	require.NoError(t, err)
	return s
}

// walk visits every question without completing the session.
func walk(s *quiz.Session) {
	for !s.IsLast() {
		s.Next()
	}
}
