// Package task provides the must task model, the on-disk codecs and the list mutator.
package task

import (
	"strings"
)

// Header is the fixed first line of every data file.
const Header = "# DO NOT MODIFY THIS FILE MANUALLY"

// CompletionState represents how far along a task is.
type CompletionState int

// Valid completion states.
const (
	StateTodo CompletionState = iota
	StateInProgress
	StateDone
)

// stateTokens maps each completion state to its on-disk token.
var stateTokens = map[CompletionState]string{
	StateTodo:       "todo",
	StateInProgress: "inprogress",
	StateDone:       "done",
}

// String returns the lowercase on-disk token for the state.
func (s CompletionState) String() string {
	if tok, ok := stateTokens[s]; ok {
		return tok
	}
	return "unknown"
}

// IsValid returns true if the state is one of the three known states.
func (s CompletionState) IsValid() bool {
	_, ok := stateTokens[s]
	return ok
}

// ParseCompletionState converts a case-insensitive token into a CompletionState.
// Returns CompletionParseError for any token other than todo, inprogress or done.
func ParseCompletionState(token string) (CompletionState, error) {
	lower := strings.ToLower(token)
	for state, tok := range stateTokens {
		if tok == lower {
			return state, nil
		}
	}
	return StateTodo, &CompletionParseError{Token: token}
}

// Task is a single line item of a todo list.
type Task struct {
	// ID identifies the task within its containing list.
	ID int

	// Description is the free text of the task.
	Description string

	// State is only stored by the grouped format. The flat format ignores it.
	State CompletionState
}

// List is a named, ordered group of tasks.
type List struct {
	Name  string
	Tasks []Task
}

// Count returns the total number of tasks across all lists.
func Count(lists []List) int {
	n := 0
	for _, l := range lists {
		n += len(l.Tasks)
	}
	return n
}
