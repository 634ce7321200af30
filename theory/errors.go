package theory

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPitchName    = errors.New("invalid pitch name")
	ErrInvalidNoteSyntax   = errors.New("invalid note syntax")
	ErrInvalidRomanNumeral = errors.New("invalid roman numeral")
	ErrUnknownIntervalName = errors.New("unknown interval name")
	ErrUnknownScaleName    = errors.New("unknown scale name")
	ErrUnknownChordType    = errors.New("unknown chord type")
	ErrNoMatchingChord     = errors.New("no matching chord")
	ErrUnreachableRange    = errors.New("note range not reachable by ascending steps")
)

// Error reports a failed parse or table lookup. Kind is one of the Err*
// sentinels above, so callers can match with errors.Is.
type Error struct {
	Kind  error
	Input string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Input == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %q", e.Kind.Error(), e.Input)
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, input string) error {
	return &Error{Kind: kind, Input: input}
}
