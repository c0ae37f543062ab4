package notify

import (
	"time"
)

// DismissAfter is how long a notification stays visible without user action.
const DismissAfter = 5 * time.Second

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

type Notification struct {
	ID        uint64
	Message   string
	Severity  Severity
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Presenter holds at most one notification. A new one evicts the previous
// one immediately; there is no queue.
type Presenter struct {
	now     func() time.Time
	seq     uint64
	current *Notification
}

func NewPresenter(now func() time.Time) *Presenter {
	if now == nil {
		now = time.Now
	}
	return &Presenter{now: now}
}

func (p *Presenter) Notify(message string, severity Severity) Notification {
	p.seq++
	shown := p.now()
	n := Notification{
		ID:        p.seq,
		Message:   message,
		Severity:  severity,
		ShownAt:   shown,
		ExpiresAt: shown.Add(DismissAfter),
	}
	p.current = &n
	return n
}

func (p *Presenter) Info(message string) Notification {
	return p.Notify(message, SeverityInfo)
}

func (p *Presenter) Warn(message string) Notification {
	return p.Notify(message, SeverityWarning)
}

func (p *Presenter) Error(message string) Notification {
	return p.Notify(message, SeverityError)
}

func (p *Presenter) Success(message string) Notification {
	return p.Notify(message, SeveritySuccess)
}

// Dismiss removes the notification identified by id. It reports false when
// that notification was already replaced or gone.
func (p *Presenter) Dismiss(id uint64) bool {
	if p.current == nil || p.current.ID != id {
		return false
	}
	p.current = nil
	return true
}

// Current returns the visible notification, dropping it first if it has
// expired.
func (p *Presenter) Current() (Notification, bool) {
	if p.current == nil {
		return Notification{}, false
	}
	if !p.now().Before(p.current.ExpiresAt) {
		p.current = nil
		return Notification{}, false
	}
	return *p.current, true
}
