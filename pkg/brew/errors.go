// errors.go
package brew

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotInstalled indicates the brew binary is not present on this system
	ErrNotInstalled = errors.New("homebrew not installed")

	// ErrPackageNotFound indicates brew knows no formula by that name
	ErrPackageNotFound = errors.New("package not found")
)

// ExecError indicates the brew subprocess could not be started at all,
// e.g. the binary is missing or not executable.
type ExecError struct {
	Path string // binary that failed to launch
	Err  error  // underlying error from os/exec
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ToolError indicates brew ran but exited non-zero. Stderr carries the
// diagnostic text brew wrote, verbatim.
type ToolError struct {
	Args     []string // arguments the tool was invoked with
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("brew %s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
	if diag := strings.TrimSpace(e.Stderr); diag != "" {
		msg += ": " + diag
	}
	return msg
}

// ParseError indicates brew's output did not match the expected v1 JSON
// schema. This usually means an incompatible brew version and is never
// retried.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing brew output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
