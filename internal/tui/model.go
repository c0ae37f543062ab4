// Package tui is the terminal front end. It turns key presses into controller
// actions and draws the controller snapshot.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saulo-duarte/quizdeck/internal/app"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
)

// actionMsg carries the result of a controller Task back into Update.
type actionMsg struct {
	action app.Action
}

// expireMsg fires when a notification's display time is over.
type expireMsg struct {
	id uint64
}

type tickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

type Model struct {
	ctrl   *app.Controller
	ctx    context.Context
	editor []rune
	kind   quiz.Kind
	width  int

	scheduled uint64
	now       func() time.Time
	tick      tickFunc
}

var _ tea.Model = (*Model)(nil)

// New builds the UI model. notes pre-fills the editor.
func New(ctx context.Context, ctrl *app.Controller, notes string, kind quiz.Kind) *Model {
	if !kind.IsValid() {
		kind = quiz.KindMCQ
	}
	return &Model{
		ctrl:   ctrl,
		ctx:    ctx,
		editor: []rune(notes),
		kind:   kind,
		now:    time.Now,
		tick:   tea.Tick,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.dispatch(app.CheckStatus{})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionMsg:
		return m, m.dispatch(msg.action)

	case expireMsg:
		return m, m.dispatch(app.Dismiss{ID: msg.id})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// dispatch forwards a to the controller, turns any Task into a tea.Cmd and
// arms the expiry timer for a newly shown notification.
func (m *Model) dispatch(a app.Action) tea.Cmd {
	var cmds []tea.Cmd

	if task := m.ctrl.Dispatch(a); task != nil {
		ctx := m.ctx
		cmds = append(cmds, func() tea.Msg {
			return actionMsg{action: task(ctx)}
		})
	}

	if n := m.ctrl.Snapshot().Notification; n != nil && n.ID != m.scheduled {
		m.scheduled = n.ID
		id := n.ID
		wait := n.ExpiresAt.Sub(m.now())
		if wait < 0 {
			wait = 0
		}
		cmds = append(cmds, m.tick(wait, func(time.Time) tea.Msg {
			return expireMsg{id: id}
		}))
	}

	return tea.Batch(cmds...)
}

func (m *Model) notes() string {
	return string(m.editor)
}

func (m *Model) toggleKind() {
	if m.kind == quiz.KindMCQ {
		m.kind = quiz.KindFlashcard
		return
	}
	m.kind = quiz.KindMCQ
}
