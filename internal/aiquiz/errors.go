package aiquiz

import (
	"errors"
	"fmt"
)

var (
	ErrRateLimited = errors.New("rate limited")
	ErrNetwork     = errors.New("network error")
	ErrService     = errors.New("service error")

	ErrNoCorrectAnswer = errors.New("correct_answer missing")
)

type ErrorKind int

const (
	KindService ErrorKind = iota
	KindNetwork
	KindRateLimited
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "service"
	}
}

// Error is the categorised failure of a Quiz Service call.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("quiz service %s (%d): %s", e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("quiz service %s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.Kind == KindRateLimited
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrService:
		return e.Kind == KindService
	}
	return false
}

// KindOf reports the category of err, treating unknown errors as service
// failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindService
}

func serviceError(status int, message string) *Error {
	return &Error{Kind: KindService, Status: status, Message: message}
}
