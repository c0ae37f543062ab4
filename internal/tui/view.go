package tui

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizdeck/internal/app"
	"github.com/saulo-duarte/quizdeck/internal/history"
	"github.com/saulo-duarte/quizdeck/internal/notify"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
	util "github.com/saulo-duarte/quizdeck/internal/utils"
)

const (
	title          = "quizdeck · turn your notes into a quiz"
	loadingText    = "AI is analyzing your notes and creating intelligent questions..."
	historyPreview = 5
	cursor         = "█"
)

func (m *Model) View() string {
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	if n := snap.Notification; n != nil {
		b.WriteString(renderNotification(*n))
		b.WriteString("\n\n")
	}

	switch snap.Phase {
	case quiz.PhaseActive:
		if snap.View != nil {
			b.WriteString(renderQuestion(*snap.View))
		}
	case quiz.PhaseCompleted:
		if snap.Outcome != nil {
			b.WriteString(renderOutcome(*snap.Outcome))
		}
	default:
		b.WriteString(m.renderEditor(snap))
	}

	b.WriteString("\n")
	b.WriteString(renderHistory(snap.History))
	b.WriteString(renderStats(snap.Stats))
	return b.String()
}

func renderNotification(n notify.Notification) string {
	return fmt.Sprintf("[%s] %s  (ctrl+x to dismiss)", strings.ToUpper(string(n.Severity)), n.Message)
}

func (m *Model) renderEditor(snap app.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quiz type: %s  (tab to switch)\n", m.kind.Label())
	fmt.Fprintf(&b, "Notes (%d/%d characters):\n", util.CharCount(m.notes()), app.MaxNotesLength)
	b.WriteString(m.notes())
	b.WriteString(cursor)
	b.WriteString("\n\n")

	if snap.Loading {
		b.WriteString(loadingText)
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("ctrl+s generate quiz · ctrl+u clear · esc quit\n")
	return b.String()
}

func renderQuestion(v quiz.View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n%s\n\n", v.Counter, v.Prompt)

	switch v.Kind {
	case quiz.KindMCQ:
		for _, opt := range v.Options {
			mark := " "
			if opt.Selected {
				mark = "x"
			}
			fmt.Fprintf(&b, "  [%s] %d) %s\n", mark, opt.Index+1, opt.Text)
		}
	case quiz.KindFlashcard:
		if v.Revealed {
			fmt.Fprintf(&b, "  Answer: %s\n", v.Answer)
		} else {
			b.WriteString("  (space to reveal the answer)\n")
		}
	}

	b.WriteString("\n")
	prev := "← Previous"
	if !v.PrevEnabled {
		prev = strings.Repeat(" ", len([]rune(prev)))
	}
	fmt.Fprintf(&b, "%s    %s\n", prev, v.NextLabel)
	b.WriteString("r start over · q quit\n")
	return b.String()
}

func renderOutcome(out app.Outcome) string {
	return fmt.Sprintf("%s\n%s\n\nr create another quiz · q quit\n", out.Headline, out.Message)
}

func renderHistory(entries []history.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Recent quizzes\n")
	for i, e := range entries {
		if i == historyPreview {
			fmt.Fprintf(&b, "  ... and %d more\n", len(entries)-historyPreview)
			break
		}
		fmt.Fprintf(&b, "  %s · %s · %d questions · %s\n", e.Date, e.Kind.Label(), e.Questions, oneLine(e.NotesPreview))
	}
	b.WriteString("\n")
	return b.String()
}

func renderStats(s app.Stats) string {
	if s.QuizzesGenerated == 0 {
		return ""
	}
	line := fmt.Sprintf("Generated %d · Completed %d · Questions %d", s.QuizzesGenerated, s.QuizzesCompleted, s.QuestionsAnswered)
	if s.AverageScore > 0 {
		line += fmt.Sprintf(" · Average %d%%", s.AverageScore)
	}
	return line + "\n"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
