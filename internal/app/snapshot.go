package app

import (
	"github.com/saulo-duarte/quizdeck/internal/history"
	"github.com/saulo-duarte/quizdeck/internal/notify"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
)

// Snapshot is a read-only copy of controller state for presentation.
type Snapshot struct {
	Phase        quiz.Phase
	Loading      bool
	CanGenerate  bool
	Kind         quiz.Kind
	Notes        string
	View         *quiz.View
	Outcome      *Outcome
	Notification *notify.Notification
	History      []history.Entry
	Stats        Stats
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       quiz.PhaseIdle,
		Loading:     c.generating,
		CanGenerate: !c.generating,
		Kind:        c.kind,
		Notes:       c.notes,
		History:     c.history.Entries(),
		Stats:       c.stats,
	}

	if c.session != nil {
		snap.Phase = c.session.Phase()
		if !c.session.Completed() {
			v := quiz.Render(c.session, c.revealed)
			snap.View = &v
		}
	}
	if c.outcome != nil {
		out := *c.outcome
		snap.Outcome = &out
	}
	if n, ok := c.notifier.Current(); ok {
		snap.Notification = &n
	}
	return snap
}

// Session exposes the active session, nil when idle.
func (c *Controller) Session() *quiz.Session {
	return c.session
}
