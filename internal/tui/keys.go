package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saulo-duarte/quizdeck/internal/app"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	snap := m.ctrl.Snapshot()
	if msg.Type == tea.KeyCtrlX && snap.Notification != nil {
		return m, m.dispatch(app.Dismiss{ID: snap.Notification.ID})
	}

	switch snap.Phase {
	case quiz.PhaseActive:
		return m.handleQuizKey(msg, snap)
	case quiz.PhaseCompleted:
		return m.handleResultsKey(msg)
	default:
		return m.handleEditorKey(msg)
	}
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlS:
		return m, m.dispatch(app.Submit{Notes: m.notes(), Kind: m.kind})
	case tea.KeyTab:
		m.toggleKind()
	case tea.KeyEnter:
		m.editor = append(m.editor, '\n')
	case tea.KeySpace:
		m.editor = append(m.editor, ' ')
	case tea.KeyBackspace:
		if len(m.editor) > 0 {
			m.editor = m.editor[:len(m.editor)-1]
		}
	case tea.KeyCtrlU:
		m.editor = m.editor[:0]
	case tea.KeyRunes:
		m.editor = append(m.editor, msg.Runes...)
	}
	return m, nil
}

func (m *Model) handleQuizKey(msg tea.KeyMsg, snap app.Snapshot) (tea.Model, tea.Cmd) {
	key := msg.String()

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && snap.View != nil && snap.View.Kind == quiz.KindMCQ {
		return m, m.dispatch(app.SelectOption{Index: int(key[0] - '1')})
	}

	switch key {
	case " ", "space":
		return m, m.dispatch(app.Reveal{})
	case "left", "h", "p":
		return m, m.dispatch(app.Previous{})
	case "right", "l", "n", "enter":
		return m, m.dispatch(app.Next{})
	case "r":
		m.editor = m.editor[:0]
		return m, m.dispatch(app.Restart{})
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		m.editor = m.editor[:0]
		return m, m.dispatch(app.Restart{})
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}
