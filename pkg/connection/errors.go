package connection

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess matches any *FileAccessError via errors.Is.
	ErrFileAccess = errors.New("config file access failed")
	// ErrParse matches any *ParseError via errors.Is.
	ErrParse = errors.New("config file is not valid json")

	errTrailingData = errors.New("unexpected data after top-level value")
)

// FileAccessError is returned when the config file cannot be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access connection config %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors reach the underlying error.
func (e *FileAccessError) Cause() error { return e.Err }

func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

// ParseError is returned when the file contents are not a single JSON document.
type ParseError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse connection config %q at offset %d: %v", e.Path, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Cause() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
