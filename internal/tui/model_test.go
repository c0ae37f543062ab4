package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saulo-duarte/quizdeck/internal/aiquiz"
	"github.com/saulo-duarte/quizdeck/internal/app"
	"github.com/saulo-duarte/quizdeck/internal/history"
	"github.com/saulo-duarte/quizdeck/internal/notify"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notes = "Photosynthesis converts light energy into chemical energy in plants."

type stubService struct {
	status *aiquiz.StatusResponse
}

func (s *stubService) GenerateQuestions(ctx context.Context, notes string, kind quiz.Kind, count int) (*aiquiz.Generation, error) {
	qs := make([]quiz.Question, count)
	for i := range qs {
		if kind == quiz.KindFlashcard {
			qs[i] = quiz.Question{Prompt: "Term", Answer: "Definition"}
		} else {
			qs[i] = quiz.Question{Prompt: "Pick b", Options: []string{"a", "b", "c"}, Correct: 1}
		}
	}
	return &aiquiz.Generation{Kind: kind, Questions: qs, Method: "AI"}, nil
}

func (s *stubService) CheckStatus(ctx context.Context) (*aiquiz.StatusResponse, error) {
	if s.status == nil {
		return &aiquiz.StatusResponse{Success: true, AIAvailable: true}, nil
	}
	return s.status, nil
}

type harness struct {
	m       *Model
	expires []tea.Msg
}

func newHarness(svc aiquiz.Service) *harness {
	ctrl := app.NewController(svc, notify.NewPresenter(nil), history.NewLog(0), app.Options{Questions: 3})
	h := &harness{m: New(context.Background(), ctrl, "", quiz.KindMCQ)}
	h.m.tick = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		h.expires = append(h.expires, fn(time.Time{}))
		return nil
	}
	return h
}

// run feeds msg to the model and executes every resulting command.
func (h *harness) run(msg tea.Msg) {
	_, cmd := h.m.Update(msg)
	h.exec(cmd)
}

// exec runs cmd, feeding action results back in until nothing is left.
func (h *harness) exec(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch out := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, out...)
		case actionMsg:
			_, next := h.m.Update(out)
			queue = append(queue, next)
		}
	}
}

func (h *harness) typeText(s string) {
	h.run(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) press(t tea.KeyType) {
	h.run(tea.KeyMsg{Type: t})
}

func (h *harness) snapshot() app.Snapshot {
	return h.m.ctrl.Snapshot()
}

func TestEditor(t *testing.T) {
	h := newHarness(&stubService{})

	h.typeText("abc")
	h.press(tea.KeyBackspace)
	h.press(tea.KeyEnter)
	h.typeText("d")
	assert.Equal(t, "ab\nd", h.m.notes())

	h.press(tea.KeyTab)
	assert.Equal(t, quiz.KindFlashcard, h.m.kind)
	assert.Contains(t, h.m.View(), "Flashcard Set")
	h.press(tea.KeyTab)
	assert.Equal(t, quiz.KindMCQ, h.m.kind)

	h.press(tea.KeyCtrlU)
	assert.Empty(t, h.m.notes())
}

func TestSubmitEmptyNotesShowsNotificationUntilExpiry(t *testing.T) {
	h := newHarness(&stubService{})

	h.press(tea.KeyCtrlS)
	assert.Equal(t, quiz.PhaseIdle, h.snapshot().Phase)
	assert.Contains(t, h.m.View(), "[ERROR] "+app.MsgNotesEmpty)

	require.Len(t, h.expires, 1)
	h.run(h.expires[0])
	assert.Nil(t, h.snapshot().Notification)
	assert.NotContains(t, h.m.View(), app.MsgNotesEmpty)
}

func TestStaleExpiryKeepsNewerNotification(t *testing.T) {
	h := newHarness(&stubService{})

	h.press(tea.KeyCtrlS)
	h.typeText("too short")
	h.press(tea.KeyCtrlS)
	require.Len(t, h.expires, 2)

	h.run(h.expires[0])
	n := h.snapshot().Notification
	require.NotNil(t, n)
	assert.Equal(t, app.MsgNotesTooShort, n.Message)
}

func TestMultipleChoiceRound(t *testing.T) {
	h := newHarness(&stubService{})

	h.typeText(notes)
	h.press(tea.KeyCtrlS)

	snap := h.snapshot()
	require.Equal(t, quiz.PhaseActive, snap.Phase)
	assert.False(t, snap.Loading)
	assert.Contains(t, h.m.View(), "Question 1 of 3")
	assert.Contains(t, h.m.View(), "[SUCCESS] Quiz generated in")

	for i := 0; i < 3; i++ {
		h.typeText("2")
		assert.Contains(t, h.m.View(), "[x] 2) b")
		h.press(tea.KeyEnter)
	}

	snap = h.snapshot()
	require.Equal(t, quiz.PhaseCompleted, snap.Phase)
	view := h.m.View()
	assert.Contains(t, view, "Your Score: 3/3 (100%)")
	assert.Contains(t, view, "Recent quizzes")
	assert.Len(t, snap.History, 1)

	h.typeText("r")
	assert.Equal(t, quiz.PhaseIdle, h.snapshot().Phase)
	assert.Empty(t, h.m.notes())
}

func TestPreviousIsIgnoredOnFirstQuestion(t *testing.T) {
	h := newHarness(&stubService{})
	h.typeText(notes)
	h.press(tea.KeyCtrlS)

	h.press(tea.KeyLeft)
	assert.Equal(t, 0, h.snapshot().View.Position)

	h.press(tea.KeyRight)
	h.typeText("h")
	assert.Equal(t, 0, h.snapshot().View.Position)
}

func TestFlashcardReveal(t *testing.T) {
	h := newHarness(&stubService{})
	h.press(tea.KeyTab)
	h.typeText(notes)
	h.press(tea.KeyCtrlS)

	require.Equal(t, quiz.PhaseActive, h.snapshot().Phase)
	assert.Contains(t, h.m.View(), "space to reveal")

	h.run(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Contains(t, h.m.View(), "Answer: Definition")

	h.press(tea.KeyRight)
	assert.False(t, h.snapshot().View.Revealed)

	h.press(tea.KeyRight)
	h.press(tea.KeyRight)
	out := h.snapshot().Outcome
	require.NotNil(t, out)
	assert.Contains(t, out.Message, "reviewed 3 flashcards")
}

func TestInitReportsFallbackGeneration(t *testing.T) {
	h := newHarness(&stubService{status: &aiquiz.StatusResponse{Success: true, AIAvailable: false}})

	cmd := h.m.Init()
	require.NotNil(t, cmd)
	h.exec(cmd)

	n := h.snapshot().Notification
	require.NotNil(t, n)
	assert.Equal(t, app.MsgFallbackGeneration, n.Message)
}

func TestQuit(t *testing.T) {
	h := newHarness(&stubService{})

	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = h.m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderHistoryTruncates(t *testing.T) {
	entries := make([]history.Entry, historyPreview+2)
	for i := range entries {
		entries[i] = history.Entry{Date: "10/19/2026", Kind: quiz.KindMCQ, Questions: 5, NotesPreview: "line one\nline two"}
	}
	out := renderHistory(entries)
	assert.Equal(t, historyPreview, strings.Count(out, "5 questions"))
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "line one line two")
}
