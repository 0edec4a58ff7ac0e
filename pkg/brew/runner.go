// runner.go
package brew

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Output is the captured result of one finished tool invocation
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Runner runs the wrapped tool with an ordered argument list and returns its
// captured output. Implementations return *ExecError when the process cannot
// be started and *ToolError when it runs but exits non-zero. Tests substitute
// a fake Runner returning canned output.
type Runner interface {
	Run(ctx context.Context, args ...string) (*Output, error)
}

// execRunner invokes a binary through os/exec, one blocking subprocess per
// call. No retries, no shared state.
type execRunner struct {
	path string
	env  []string // extra KEY=VALUE entries appended to the inherited environment
}

func newExecRunner(path string, env ...string) *execRunner {
	return &execRunner{path: path, env: env}
}

func (r *execRunner) Run(ctx context.Context, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Env = append(os.Environ(), r.env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ToolError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return nil, &ExecError{Path: r.path, Err: err}
	}

	return &Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
}
