package app

import (
	"context"
	"time"

	"github.com/saulo-duarte/quizdeck/internal/aiquiz"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
)

// Action is a user or completion event handed to Controller.Dispatch.
type Action interface {
	action()
}

// Task is deferred work returned by Dispatch. The host runs it off the event
// loop and dispatches the Action it returns.
type Task func(ctx context.Context) Action

type Submit struct {
	Notes string
	Kind  quiz.Kind
}

// Generated carries the outcome of the network call started by Submit.
type Generated struct {
	Notes      string
	Kind       quiz.Kind
	Generation *aiquiz.Generation
	Elapsed    time.Duration
	Err        error
}

type SelectOption struct {
	Index int
}

type Reveal struct{}

type Next struct{}

type Previous struct{}

type Restart struct{}

type CheckStatus struct{}

type StatusChecked struct {
	Status *aiquiz.StatusResponse
	Err    error
}

type Dismiss struct {
	ID uint64
}

func (Submit) action()        {}
func (Generated) action()     {}
func (SelectOption) action()  {}
func (Reveal) action()        {}
func (Next) action()          {}
func (Previous) action()      {}
func (Restart) action()       {}
func (CheckStatus) action()   {}
func (StatusChecked) action() {}
func (Dismiss) action()       {}
