package app

import (
	"errors"
	"strings"

	util "github.com/saulo-duarte/quizdeck/internal/utils"
)

const (
	MinNotesLength = 30
	MaxNotesLength = 5000
)

var (
	ErrNotesEmpty    = errors.New("notes are empty")
	ErrNotesTooShort = errors.New("notes are too short")
	ErrNotesTooLong  = errors.New("notes are too long")
)

// ValidateNotes trims notes and checks their length in characters.
func ValidateNotes(notes string) (string, error) {
	trimmed := strings.TrimSpace(notes)
	n := util.CharCount(trimmed)
	switch {
	case n == 0:
		return "", ErrNotesEmpty
	case n < MinNotesLength:
		return trimmed, ErrNotesTooShort
	case n > MaxNotesLength:
		return trimmed, ErrNotesTooLong
	}
	return trimmed, nil
}
