package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Options controls how description words are rebuilt on decode.
type Options struct {
	// KeepSpaces rejoins description words with a single space.
	// When false the words are concatenated, which is how earlier must
	// releases read the file ("buy milk" reads back as "buymilk").
	KeepSpaces bool
}

func (o Options) joinDescription(words []string) string {
	if o.KeepSpaces {
		return strings.Join(words, " ")
	}
	return strings.Join(words, "")
}

// FlatCodec reads and writes the flat format: one "<id> <description>" per line.
type FlatCodec struct {
	Options
}

// Decode parses flat file text into an ordered task slice.
// Comment lines (leading '#') and blank lines are skipped. Decoding stops at
// the first bad line.
func (c FlatCodec) Decode(text string) ([]Task, error) {
	var tasks []Task
	for _, line := range splitLines(text) {
		if skipLine(line) {
			continue
		}

		fields := strings.Split(line, " ")
		id, err := parseID(fields[0])
		if err != nil {
			return nil, err
		}
		if len(fields) < 2 {
			return nil, &MalformedLineError{Line: line}
		}

		tasks = append(tasks, Task{
			ID:          id,
			Description: c.joinDescription(fields[1:]),
		})
	}
	return tasks, nil
}

// Encode renders tasks as flat file text, header first.
func (c FlatCodec) Encode(tasks []Task) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(&sb, "%d %s\n", t.ID, t.Description)
	}
	return sb.String()
}

// GroupedCodec reads and writes the grouped format: "= <name>" list headers
// followed by "<id> <state> <description>" task lines.
type GroupedCodec struct {
	Options
}

// Decode parses grouped file text into an ordered slice of lists.
// The text is cut at every '=' character and anything before the first one is
// treated as preamble. The first line of each segment names the list.
func (c GroupedCodec) Decode(text string) ([]List, error) {
	segments := strings.Split(text, "=")

	var lists []List
	for _, segment := range segments[1:] {
		lines := splitLines(segment)
		list := List{Name: strings.TrimSpace(lines[0])}

		for _, raw := range lines[1:] {
			line := strings.TrimLeft(raw, " \t")
			if skipLine(line) {
				continue
			}

			t, err := c.decodeTask(line)
			if err != nil {
				return nil, err
			}
			list.Tasks = append(list.Tasks, t)
		}

		lists = append(lists, list)
	}
	return lists, nil
}

func (c GroupedCodec) decodeTask(line string) (Task, error) {
	fields := strings.Split(line, " ")
	id, err := parseID(fields[0])
	if err != nil {
		return Task{}, err
	}
	if len(fields) < 2 {
		return Task{}, &MalformedLineError{Line: line}
	}
	state, err := ParseCompletionState(fields[1])
	if err != nil {
		return Task{}, err
	}
	if len(fields) < 3 {
		return Task{}, &MalformedLineError{Line: line}
	}

	return Task{
		ID:          id,
		Description: c.joinDescription(fields[2:]),
		State:       state,
	}, nil
}

// Encode renders lists as grouped file text, header first.
func (c GroupedCodec) Encode(lists []List) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	for _, l := range lists {
		_, _ = fmt.Fprintf(&sb, "= %s\n", l.Name)
		for _, t := range l.Tasks {
			_, _ = fmt.Fprintf(&sb, "\t%d %s %s\n", t.ID, t.State, t.Description)
		}
	}
	return sb.String()
}

// splitLines splits text on '\n' and drops a trailing '\r' from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

func parseID(token string) (int, error) {
	id, err := strconv.Atoi(token)
	if err != nil || id < 0 {
		return 0, &IDParseError{Token: token}
	}
	return id, nil
}
