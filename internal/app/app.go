// Package app runs one must invocation: load the data file, print it,
// optionally add a task and write the list back.
package app

import (
	"fmt"
	"io"

	"github.com/nilaykumar/must/internal/config"
	"github.com/nilaykumar/must/internal/datafile"
	"github.com/nilaykumar/must/internal/listing"
	"github.com/nilaykumar/must/internal/task"
)

// Options configures a single invocation.
type Options struct {
	// Add is the description of a task to append. Empty means no append.
	Add string
}

// Run loads the configured data file, prints the loaded list, appends
// opts.Add when set and rewrites the file. Any error aborts before the file
// is written.
func Run(cfg *config.Config, opts Options, out io.Writer) error {
	path, err := config.DataFilePath(cfg)
	if err != nil {
		return err
	}

	file, err := datafile.Open(path, task.Header)
	if err != nil {
		return err
	}
	if file.Created() {
		_, _ = fmt.Fprintf(out, "Could not find file %s, creating it now.\n", file.Path())
	}

	contents, err := file.Read()
	if err != nil {
		return err
	}

	var updated string
	switch cfg.Data.Format {
	case config.FormatGrouped:
		updated, err = runGrouped(cfg, opts, contents, out)
	default:
		updated, err = runFlat(cfg, opts, contents, out)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Writing modified task list:\n%s", updated)

	return file.Write(updated)
}

func runFlat(cfg *config.Config, opts Options, contents string, out io.Writer) (string, error) {
	codec := task.FlatCodec{Options: cfg.CodecOptions()}

	tasks, err := codec.Decode(contents)
	if err != nil {
		return "", fmt.Errorf("failed to load task list: %w", err)
	}

	_, _ = fmt.Fprint(out, listing.FormatTasks(tasks))

	if opts.Add != "" {
		_, _ = fmt.Fprintf(out, "Adding task: %s\n", opts.Add)
		tasks, err = task.Append(tasks, opts.Add, cfg.IDPolicy())
		if err != nil {
			return "", err
		}
	}

	return codec.Encode(tasks), nil
}

func runGrouped(cfg *config.Config, opts Options, contents string, out io.Writer) (string, error) {
	codec := task.GroupedCodec{Options: cfg.CodecOptions()}

	lists, err := codec.Decode(contents)
	if err != nil {
		return "", fmt.Errorf("failed to load task lists: %w", err)
	}

	_, _ = fmt.Fprint(out, listing.FormatLists(lists))

	if opts.Add != "" {
		_, _ = fmt.Fprintf(out, "Adding task to %s: %s\n", cfg.Tasks.List, opts.Add)
		lists, err = task.AppendToList(lists, cfg.Tasks.List, opts.Add, task.StateTodo, cfg.IDPolicy())
		if err != nil {
			return "", err
		}
	}

	return codec.Encode(lists), nil
}
