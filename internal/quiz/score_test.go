package quiz_test

import (
	"testing"

	"github.com/saulo-duarte/quizdeck/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("FourOfFive", func(t *testing.T) {
		s := newMCQSession(t, 5)
		for i := 0; i < 5; i++ {
			answer := 2
			if i == 3 {
				answer = 0
			}
			require.NoError(t, s.RecordAnswer(i, answer))
			s.Next()
		}
		require.True(t, s.Completed())

		res, err := quiz.Score(s)
		require.NoError(t, err)
		assert.Equal(t, 4, res.Correct)
		assert.Equal(t, 5, res.Total)
		assert.Equal(t, 80, res.Percentage)
		assert.Equal(t, quiz.TierGreat, res.Tier)
		assert.Equal(t, "Great job! You have a solid understanding! 👏", res.Message())
		assert.Equal(t, "Your Score: 4/5 (80%)", res.Summary())
	})

	t.Run("UnsetAnswersCountAsIncorrect", func(t *testing.T) {
		s := newMCQSession(t, 3)
		require.NoError(t, s.RecordAnswer(0, 2))
		walk(s)

		res, err := quiz.Score(s)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Correct)
		assert.Equal(t, 33, res.Percentage)
		assert.Equal(t, quiz.TierKeepPracticing, res.Tier)
	})

	t.Run("RequiresEveryQuestionVisited", func(t *testing.T) {
		s := newMCQSession(t, 3)
		_, err := quiz.Score(s)
		assert.ErrorIs(t, err, quiz.ErrNotFinished)
	})

	t.Run("FlashcardsAreNotScored", func(t *testing.T) {
		s, err := quiz.NewSession(quiz.KindFlashcard, flashcards(1), testNow)
		require.NoError(t, err)
		_, err = quiz.Score(s)
		assert.ErrorIs(t, err, quiz.ErrWrongKind)
	})

	t.Run("MonotonicInCorrectAnswers", func(t *testing.T) {
		for total := 1; total <= 12; total++ {
			prev := -1
			for correct := 0; correct <= total; correct++ {
				s := newMCQSession(t, total)
				for i := 0; i < total; i++ {
					answer := 0
					if i < correct {
						answer = 2
					}
					require.NoError(t, s.RecordAnswer(i, answer))
					s.Next()
				}
				res, err := quiz.Score(s)
				require.NoError(t, err)
				assert.Equal(t, correct, res.Correct)
				assert.GreaterOrEqual(t, res.Percentage, prev, "total=%d correct=%d", total, correct)
				prev = res.Percentage
			}
			assert.Equal(t, 100, prev)
		}
	})
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{0, 5, 0},
		{1, 8, 13},
		{1, 3, 33},
		{2, 3, 67},
		{1, 200, 1},
		{5, 5, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, quiz.Percentage(tc.correct, tc.total), "%d/%d", tc.correct, tc.total)
	}
}

func TestTierFor(t *testing.T) {
	cases := map[int]quiz.Tier{
		100: quiz.TierExcellent,
		90:  quiz.TierExcellent,
		89:  quiz.TierGreat,
		80:  quiz.TierGreat,
		79:  quiz.TierGood,
		70:  quiz.TierGood,
		69:  quiz.TierNotBad,
		60:  quiz.TierNotBad,
		59:  quiz.TierKeepPracticing,
		0:   quiz.TierKeepPracticing,
	}
	for pct, want := range cases {
		assert.Equal(t, want, quiz.TierFor(pct), "percentage %d", pct)
		assert.NotEmpty(t, quiz.TierFor(pct).Message())
	}
}

func TestFlashcardCompletionMessage(t *testing.T) {
	assert.Contains(t, quiz.FlashcardCompletionMessage(3), "reviewed 3 flashcards")
}
