package quiz

import "fmt"

const (
	NextLabel   = "Next →"
	FinishLabel = "Finish Quiz"
)

type OptionView struct {
	Index    int
	Text     string
	Selected bool
}

// View is what the presentation layer needs to draw the current question.
type View struct {
	Counter     string
	Prompt      string
	Kind        Kind
	Options     []OptionView
	Answer      string
	Revealed    bool
	PrevEnabled bool
	NextLabel   string
	Position    int
	Total       int
}

// Render projects the current question of s. revealed is the flashcard
// reveal flag, owned by the caller and reset whenever the question changes.
func Render(s *Session, revealed bool) View {
	q := s.Current()
	v := View{
		Counter:     fmt.Sprintf("Question %d of %d", s.position+1, len(s.questions)),
		Prompt:      q.Prompt,
		Kind:        s.Kind,
		PrevEnabled: !s.IsFirst(),
		NextLabel:   NextLabel,
		Position:    s.position,
		Total:       len(s.questions),
	}
	if s.IsLast() {
		v.NextLabel = FinishLabel
	}

	switch s.Kind {
	case KindMCQ:
		selected, answered := s.Answer(s.position)
		v.Options = make([]OptionView, len(q.Options))
		for i, opt := range q.Options {
			v.Options[i] = OptionView{
				Index:    i,
				Text:     opt,
				Selected: answered && selected == i,
			}
		}
	case KindFlashcard:
		v.Revealed = revealed
		if revealed {
			v.Answer = q.Answer
		}
	}
	return v
}
