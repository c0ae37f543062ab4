package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/quizdeck/internal/aiquiz"
	"github.com/saulo-duarte/quizdeck/internal/notify"
	util "github.com/saulo-duarte/quizdeck/internal/utils"
)

const (
	MsgNotesEmpty    = "Please enter some notes first!"
	MsgNotesTooShort = "Please provide more detailed notes (at least 30 characters)"
	MsgNotesTooLong  = "Notes too long. Please limit to 5000 characters."

	MsgRateLimited   = "Too many requests. Please wait a minute before generating another quiz."
	MsgNetworkError  = "Network error. Please check your connection and try again."
	MsgServiceFailed = "Quiz generation failed. Please try with different notes or check your connection."

	MsgFallbackGeneration = "Using smart fallback generation (AI key not configured)"
	MsgOffline            = "App running in offline mode"

	FlashcardHeadline = "Flashcard Review Complete!"
)

func validationNotice(err error) (string, notify.Severity) {
	switch {
	case errors.Is(err, ErrNotesEmpty):
		return MsgNotesEmpty, notify.SeverityError
	case errors.Is(err, ErrNotesTooShort):
		return MsgNotesTooShort, notify.SeverityWarning
	default:
		return MsgNotesTooLong, notify.SeverityWarning
	}
}

func generationFailureNotice(err error) (string, notify.Severity) {
	switch aiquiz.KindOf(err) {
	case aiquiz.KindRateLimited:
		return MsgRateLimited, notify.SeverityWarning
	case aiquiz.KindNetwork:
		return MsgNetworkError, notify.SeverityError
	default:
		return MsgServiceFailed, notify.SeverityError
	}
}

func generationSuccessMessage(elapsed time.Duration, method string) string {
	return fmt.Sprintf("Quiz generated in %ss using %s!", util.Seconds(elapsed), method)
}
