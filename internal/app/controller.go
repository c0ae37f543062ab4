package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizdeck/internal/aiquiz"
	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/saulo-duarte/quizdeck/internal/history"
	"github.com/saulo-duarte/quizdeck/internal/notify"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
	"github.com/sirupsen/logrus"
)

// Outcome is what the results screen shows once a session completes.
type Outcome struct {
	Kind     quiz.Kind
	Headline string
	Message  string
	Result   *quiz.Result
}

type Stats struct {
	QuizzesGenerated  int
	QuizzesCompleted  int
	QuestionsAnswered int
	AverageScore      int

	scoredSessions int
	scoreSum       int
}

// Controller owns the quiz session, notifications and history. It is driven
// from a single event loop; the only work that leaves the loop is the Task
// returned for a generation or status check.
type Controller struct {
	service  aiquiz.Service
	notifier *notify.Presenter
	history  *history.Log
	now      func() time.Time
	count    int

	kind       quiz.Kind
	notes      string
	session    *quiz.Session
	revealed   bool
	generating bool
	outcome    *Outcome
	stats      Stats
}

type Options struct {
	Questions int
	Kind      quiz.Kind
	Now       func() time.Time
}

func NewController(service aiquiz.Service, notifier *notify.Presenter, log *history.Log, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !opts.Kind.IsValid() {
		opts.Kind = quiz.KindMCQ
	}
	return &Controller{
		service:  service,
		notifier: notifier,
		history:  log,
		now:      opts.Now,
		count:    aiquiz.ClampCount(opts.Questions),
		kind:     opts.Kind,
	}
}

func (c *Controller) log() *logrus.Entry {
	ctx := context.Background()
	if c.session != nil {
		ctx = config.WithSessionID(ctx, c.session.ID.String())
	}
	return config.WithContext(ctx)
}

// Dispatch applies a to the controller state. A non-nil Task must be run by
// the caller and its result dispatched back.
func (c *Controller) Dispatch(a Action) Task {
	switch a := a.(type) {
	case Submit:
		return c.submit(a)
	case Generated:
		c.generated(a)
	case SelectOption:
		c.selectOption(a.Index)
	case Reveal:
		c.reveal()
	case Next:
		c.next()
	case Previous:
		c.previous()
	case Restart:
		c.restart()
	case CheckStatus:
		return c.checkStatus()
	case StatusChecked:
		c.statusChecked(a)
	case Dismiss:
		c.notifier.Dismiss(a.ID)
	}
	return nil
}

// Run dispatches a and runs any resulting tasks inline. Hosts without an
// event loop of their own use it.
func (c *Controller) Run(ctx context.Context, a Action) {
	for a != nil {
		task := c.Dispatch(a)
		if task == nil {
			return
		}
		a = task(ctx)
	}
}

func (c *Controller) submit(a Submit) Task {
	if c.generating {
		c.log().Debug("Generation already in flight, ignoring submit")
		return nil
	}

	kind := a.Kind
	if !kind.IsValid() {
		kind = c.kind
	}
	c.kind = kind

	notes, err := ValidateNotes(a.Notes)
	if err != nil {
		msg, sev := validationNotice(err)
		c.notifier.Notify(msg, sev)
		c.log().WithError(err).Info("Rejected notes before generation")
		return nil
	}

	c.generating = true
	service, count, now := c.service, c.count, c.now

	return func(ctx context.Context) Action {
		ctx = config.WithRequestID(ctx, uuid.NewString())
		start := now()
		gen, err := service.GenerateQuestions(ctx, notes, kind, count)
		return Generated{
			Notes:      notes,
			Kind:       kind,
			Generation: gen,
			Elapsed:    now().Sub(start),
			Err:        err,
		}
	}
}

func (c *Controller) generated(a Generated) {
	if !c.generating {
		return
	}
	c.generating = false

	if a.Err != nil {
		msg, sev := generationFailureNotice(a.Err)
		c.notifier.Notify(msg, sev)
		c.log().WithError(a.Err).WithField("kind", aiquiz.KindOf(a.Err).String()).Error("Quiz generation failed")
		return
	}

	session, err := quiz.NewSession(a.Kind, a.Generation.Questions, c.now())
	if err != nil {
		c.notifier.Error(MsgServiceFailed)
		c.log().WithError(err).Error("Service returned an unusable question set")
		return
	}

	c.session = session
	c.notes = a.Notes
	c.revealed = false
	c.outcome = nil
	c.stats.QuizzesGenerated++

	c.notifier.Success(generationSuccessMessage(a.Elapsed, a.Generation.Method))
	c.log().WithFields(logrus.Fields{
		"questions": session.Len(),
		"quiz_type": session.Kind,
		"method":    a.Generation.Method,
	}).Info("Quiz session started")
}

func (c *Controller) active() bool {
	return c.session != nil && !c.session.Completed()
}

func (c *Controller) selectOption(index int) {
	if !c.active() || c.session.Kind != quiz.KindMCQ {
		return
	}
	if err := c.session.RecordAnswer(c.session.Position(), index); err != nil {
		c.log().WithError(err).Debugf("Ignoring selection of option %d", index)
	}
}

func (c *Controller) reveal() {
	if !c.active() || c.session.Kind != quiz.KindFlashcard {
		return
	}
	c.revealed = true
}

func (c *Controller) next() {
	if !c.active() {
		return
	}
	switch c.session.Next() {
	case quiz.Advanced:
		c.revealed = false
	case quiz.Completed:
		c.revealed = false
		c.finish()
	}
}

func (c *Controller) previous() {
	if !c.active() {
		return
	}
	if c.session.Previous() {
		c.revealed = false
	}
}

func (c *Controller) finish() {
	s := c.session
	out := &Outcome{Kind: s.Kind}

	if s.Kind == quiz.KindMCQ {
		res, err := quiz.Score(s)
		if err != nil {
			c.log().WithError(err).Error("Failed to score completed session")
			return
		}
		out.Headline = res.Summary()
		out.Message = res.Message()
		out.Result = &res

		c.stats.scoredSessions++
		c.stats.scoreSum += res.Percentage
		c.stats.AverageScore = quiz.Percentage(c.stats.scoreSum, c.stats.scoredSessions*100)
	} else {
		out.Headline = FlashcardHeadline
		out.Message = quiz.FlashcardCompletionMessage(s.Len())
	}

	c.outcome = out
	c.stats.QuizzesCompleted++
	c.stats.QuestionsAnswered += s.Len()
	c.history.Record(history.NewEntry(s, c.notes, c.now()))

	c.log().WithFields(logrus.Fields{
		"quiz_type": s.Kind,
		"questions": s.Len(),
		"duration":  c.now().Sub(s.StartedAt).String(),
	}).Info("Quiz session completed")
}

func (c *Controller) restart() {
	if c.session != nil {
		c.log().Info("Session discarded")
	}
	c.session = nil
	c.notes = ""
	c.revealed = false
	c.outcome = nil
}

func (c *Controller) checkStatus() Task {
	service := c.service
	return func(ctx context.Context) Action {
		st, err := service.CheckStatus(ctx)
		return StatusChecked{Status: st, Err: err}
	}
}

func (c *Controller) statusChecked(a StatusChecked) {
	if a.Err != nil || a.Status == nil {
		c.notifier.Warn(MsgOffline)
		c.log().WithError(a.Err).Warn("API connection test failed")
		return
	}
	if !a.Status.Success {
		c.log().Warnf("API test reported failure: %s", a.Status.Error)
		return
	}
	c.log().Infof("API connected: %s", a.Status.Message)
	if !a.Status.AIAvailable {
		c.notifier.Info(MsgFallbackGeneration)
	}
}
