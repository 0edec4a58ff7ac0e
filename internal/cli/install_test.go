package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/brewkit/brewkit/pkg/brew"
)

const wgetJSON = `[{"name": "wget", "installed": [{"version": "1.24.5"}]}]`

// scriptRunner answers info calls with a canned record and accepts
// everything else.
type scriptRunner struct{}

func (scriptRunner) Run(ctx context.Context, args ...string) (*brew.Output, error) {
	if len(args) > 0 && args[0] == "info" {
		return &brew.Output{Stdout: []byte(wgetJSON)}, nil
	}
	return &brew.Output{}, nil
}

// failingRunner fails every invocation, the way a broken brew does.
type failingRunner struct{}

func (failingRunner) Run(ctx context.Context, args ...string) (*brew.Output, error) {
	return nil, &brew.ToolError{Args: args, ExitCode: 1, Stderr: "broken"}
}

func TestInstallFormulae(t *testing.T) {
	pm := brew.NewPackageManager(&brew.Config{BrewPath: "brew", Runner: scriptRunner{}})

	if err := installFormulae(context.Background(), pm, []string{"wget"}); err != nil {
		t.Errorf("installFormulae() error = %v, want nil", err)
	}
}

func TestInstallFormulaeReportsFailures(t *testing.T) {
	pm := brew.NewPackageManager(&brew.Config{BrewPath: "brew", Runner: failingRunner{}})

	err := installFormulae(context.Background(), pm, []string{"wget", "curl"})
	if err == nil {
		t.Fatal("installFormulae() = nil after failed installs, want error")
	}
	if !strings.Contains(err.Error(), "2 of 2") {
		t.Errorf("error = %q, want the failure count", err)
	}
}
