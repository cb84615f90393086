package fileio

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// InputFormatError reports an input file that is missing, unreadable, or
// structurally wrong. Input names the role of the file ("training terms",
// "test sequences"); Line is 1-based and 0 when not tied to a line.
type InputFormatError struct {
	Input string
	Path  string
	Line  int
	Err   error
}

func (e *InputFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s:%d: %v", e.Input, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Input, e.Path, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// OutputWriteError reports a failure to create the output directory or to
// write the submission file.
type OutputWriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
