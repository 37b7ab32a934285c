// Package datafile manages the single text file that holds a must task list.
package datafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Error kinds for data file operations.
var (
	ErrDirectoryCreate = errors.New("could not create data directory")
	ErrFileOpen        = errors.New("could not open data file")
	ErrFileCreate      = errors.New("could not create data file")
	ErrFileRead        = errors.New("could not read data file")
	ErrFileWrite       = errors.New("could not write data file")
)

// FileError records a failed data file operation.
// It matches both its kind sentinel and the underlying OS error with errors.Is.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// File is a handle on the data file. It is passed explicitly to whatever
// loads or saves the list.
type File struct {
	path    string
	created bool
}

// Open returns a handle on the data file at path.
// The parent directory is created if missing, and a missing file is created
// containing the header line.
func Open(path, header string) (*File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &FileError{Kind: ErrDirectoryCreate, Path: dir, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, &FileError{Kind: ErrFileOpen, Path: path, Err: err}
		}
		if err := create(path, header); err != nil {
			return nil, err
		}
		return &File{path: path, created: true}, nil
	}

	if info.IsDir() {
		return nil, &FileError{Kind: ErrFileOpen, Path: path, Err: errors.New("is a directory")}
	}

	// Fail early if the file cannot be opened for both reading and writing.
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, &FileError{Kind: ErrFileOpen, Path: path, Err: err}
	}
	_ = f.Close()

	return &File{path: path}, nil
}

func create(path, header string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return &FileError{Kind: ErrFileCreate, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(header + "\n"); err != nil {
		return &FileError{Kind: ErrFileCreate, Path: path, Err: err}
	}
	return nil
}

// Path returns the location of the data file.
func (f *File) Path() string {
	return f.path
}

// Created reports whether Open created the file.
func (f *File) Created() bool {
	return f.created
}

// Read returns the full contents of the data file.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", &FileError{Kind: ErrFileRead, Path: f.path, Err: err}
	}
	return string(data), nil
}

// Write replaces the contents of the data file with text.
// A symlinked data file is written through the link, and the existing file
// mode is kept.
func (f *File) Write(text string) error {
	target, err := filepath.EvalSymlinks(f.path)
	if err != nil {
		return &FileError{Kind: ErrFileWrite, Path: f.path, Err: err}
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	// Atomic write: write to temp file next to the target, then rename
	tmpFile := fmt.Sprintf("%s.%s.tmp", target, uuid.New().String()[:8])
	if err := os.WriteFile(tmpFile, []byte(text), mode); err != nil {
		_ = os.Remove(tmpFile)
		return &FileError{Kind: ErrFileWrite, Path: f.path, Err: err}
	}

	// WriteFile applies the umask, so set the mode explicitly.
	if err := os.Chmod(tmpFile, mode); err != nil {
		_ = os.Remove(tmpFile)
		return &FileError{Kind: ErrFileWrite, Path: f.path, Err: err}
	}

	if err := os.Rename(tmpFile, target); err != nil {
		_ = os.Remove(tmpFile)
		return &FileError{Kind: ErrFileWrite, Path: f.path, Err: err}
	}

	return nil
}
