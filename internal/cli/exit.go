package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/calque-ai/toolbind/pkg/core"
)

// Process exit codes.
const (
	exitFailure      = 1
	exitInvalidTool  = 2
	exitFileNotFound = 3
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitError classifies err by kind. A nil err stays nil.
func exitError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return &ExitError{Code: exitFileNotFound, Err: err}
	case errors.Is(err, core.ErrInvalidTool), errors.Is(err, core.ErrInvalidSchema):
		return &ExitError{Code: exitInvalidTool, Err: err}
	default:
		return &ExitError{Code: exitFailure, Err: err}
	}
}

// ExitCode returns the code main should exit with for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitFailure
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: exitFailure, Err: fmt.Errorf(format, args...)}
}
