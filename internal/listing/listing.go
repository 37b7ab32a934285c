// Package listing formats loaded task lists for CLI display.
package listing

import (
	"fmt"
	"strings"

	"github.com/nilaykumar/must/internal/task"
)

// FormatTasks formats a flat task list for CLI display.
func FormatTasks(tasks []task.Task) string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "found %d tasks.\n", len(tasks))
	for _, t := range tasks {
		_, _ = fmt.Fprintf(&sb, "%d %s\n", t.ID, t.Description)
	}

	return sb.String()
}

// FormatLists formats grouped task lists for CLI display.
func FormatLists(lists []task.List) string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "found %d tasks in %d lists.\n", task.Count(lists), len(lists))
	for _, l := range lists {
		_, _ = fmt.Fprintf(&sb, "= %s\n", l.Name)
		for _, t := range l.Tasks {
			_, _ = fmt.Fprintf(&sb, "\t%d [%s] %s\n", t.ID, t.State, t.Description)
		}
	}

	return sb.String()
}
