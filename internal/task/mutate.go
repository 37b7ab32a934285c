package task

import (
	"fmt"
	"strings"
)

// IDPolicy selects how the id of an appended task is chosen.
type IDPolicy string

// Valid id policies.
const (
	// IDPolicyMax reuses the current maximum id. Appending to a non-empty
	// list therefore duplicates the highest id. This is the historical must behaviour.
	IDPolicyMax IDPolicy = "max"

	// IDPolicyIncrement uses the current maximum id plus one.
	IDPolicyIncrement IDPolicy = "increment"
)

// IsValid returns true if the policy is a known IDPolicy value.
func (p IDPolicy) IsValid() bool {
	return p == IDPolicyMax || p == IDPolicyIncrement
}

// Characters that would change the line structure of the data file.
const (
	flatReserved    = "\n\r"
	groupedReserved = "\n\r="
)

func checkDescription(description, reserved string) error {
	if description == "" {
		return ErrEmptyDescription
	}
	if i := strings.IndexAny(description, reserved); i >= 0 {
		return &InvalidDescriptionError{
			Description: description,
			Char:        []rune(description[i:])[0],
		}
	}
	return nil
}

// NextID returns the id for a task appended to tasks.
// An empty list always yields 0.
func NextID(tasks []Task, policy IDPolicy) int {
	if len(tasks) == 0 {
		return 0
	}

	maxID := tasks[0].ID
	for _, t := range tasks[1:] {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	if policy == IDPolicyIncrement {
		return maxID + 1
	}
	return maxID
}

// Append adds one task with the given description to the end of tasks.
// Existing tasks keep their order and ids.
func Append(tasks []Task, description string, policy IDPolicy) ([]Task, error) {
	if err := checkDescription(description, flatReserved); err != nil {
		return tasks, err
	}

	return append(tasks, Task{
		ID:          NextID(tasks, policy),
		Description: description,
	}), nil
}

// AppendToList adds one task to the list called name, creating that list at
// the end of lists when it does not exist yet. The id is computed within the
// target list only.
func AppendToList(lists []List, name, description string, state CompletionState, policy IDPolicy) ([]List, error) {
	if err := checkDescription(description, groupedReserved); err != nil {
		return lists, err
	}
	if strings.ContainsAny(name, groupedReserved) {
		return lists, fmt.Errorf("invalid list name %q", name)
	}
	if !state.IsValid() {
		return lists, fmt.Errorf("invalid completion state: %d", state)
	}

	idx := -1
	for i, l := range lists {
		if l.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		lists = append(lists, List{Name: name})
		idx = len(lists) - 1
	}

	target := &lists[idx]
	target.Tasks = append(target.Tasks, Task{
		ID:          NextID(target.Tasks, policy),
		Description: description,
		State:       state,
	})

	return lists, nil
}
