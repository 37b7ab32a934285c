package task

import (
	"errors"
	"fmt"
)

// Error types for decoding and mutating task lists.
var (
	// ErrParse is the root of every decode failure.
	ErrParse = errors.New("task list parse failed")

	// ErrEmptyDescription is returned when appending a task without text.
	ErrEmptyDescription = errors.New("task description is empty")

	// ErrInvalidDescription is returned when a description cannot be written
	// to the data file and read back.
	ErrInvalidDescription = errors.New("task description is invalid")
)

// IDParseError is returned when a task id token is not a non-negative integer.
type IDParseError struct {
	Token string
}

func (e *IDParseError) Error() string {
	return fmt.Sprintf("could not parse %q as a task id", e.Token)
}

func (e *IDParseError) Unwrap() error {
	return ErrParse
}

// CompletionParseError is returned for a completion state token other than
// todo, inprogress or done.
type CompletionParseError struct {
	Token string
}

func (e *CompletionParseError) Error() string {
	return fmt.Sprintf("unknown completion state %q", e.Token)
}

func (e *CompletionParseError) Unwrap() error {
	return ErrParse
}

// MalformedLineError is returned when a task line lacks required tokens.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed task line %q", e.Line)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrParse
}

// InvalidDescriptionError is returned when a description contains a character
// the data file format reserves.
type InvalidDescriptionError struct {
	Description string
	Char        rune
}

func (e *InvalidDescriptionError) Error() string {
	return fmt.Sprintf("task description %q must not contain %q", e.Description, e.Char)
}

func (e *InvalidDescriptionError) Unwrap() error {
	return ErrInvalidDescription
}
