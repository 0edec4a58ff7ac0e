// manager.go
package brew

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// NewPackageManager creates a new brew package manager
func NewPackageManager(cfg *Config) *PackageManager {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.BrewPath == "" {
		if path, err := DetectBrew(); err == nil {
			cfg.BrewPath = path
		} else {
			// Leave resolution to PATH at invocation time; a missing binary
			// surfaces as *ExecError from the first call.
			cfg.BrewPath = "brew"
		}
	}
	if cfg.TarballURL == "" {
		cfg.TarballURL = DefaultTarballURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[BREW] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	runner := cfg.Runner
	if runner == nil {
		var env []string
		if !cfg.AutoUpdate {
			env = append(env, NoAutoUpdateEnv)
		}
		runner = newExecRunner(cfg.BrewPath, env...)
	}

	pm := &PackageManager{
		runner: runner,
		client: NewClient(cfg.Timeout),
		config: cfg,
		logger: logger,
	}

	if cfg.Debug {
		pm.logger.Printf("Initialized brew PackageManager")
		pm.logger.Printf("  BrewPath: %s", cfg.BrewPath)
		pm.logger.Printf("  TarballURL: %s", cfg.TarballURL)
		pm.logger.Printf("  Timeout: %s", cfg.Timeout)
	}

	return pm
}

// Available probes the brew binary with "brew --version". A failed probe
// maps to ErrNotInstalled.
func (pm *PackageManager) Available(ctx context.Context) error {
	if _, err := pm.runner.Run(ctx, "--version"); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	return nil
}

// refine re-probes the binary after a failed subcommand: a brew installation
// that cannot even report its version maps to ErrNotInstalled instead of the
// subcommand's own failure.
func (pm *PackageManager) refine(ctx context.Context, err error) error {
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		return err
	}
	if probeErr := pm.Available(ctx); probeErr != nil {
		return probeErr
	}
	return err
}

// Update runs "brew update". Success carries no payload.
func (pm *PackageManager) Update(ctx context.Context) error {
	pm.logger.Printf("Running brew update")
	if _, err := pm.runner.Run(ctx, "update"); err != nil {
		return pm.refine(ctx, err)
	}
	return nil
}

// Info fetches the formula record for a single name. An unknown name yields
// either a *ToolError (brew rejects it) or ErrPackageNotFound (brew returns
// an empty result).
func (pm *PackageManager) Info(ctx context.Context, name string) (*Package, error) {
	pm.logger.Printf("Fetching info for formula: %s", name)
	out, err := pm.runner.Run(ctx, "info", name, jsonFlag, analyticsFlag)
	if err != nil {
		return nil, pm.refine(ctx, err)
	}
	return decodePackage(out.Stdout)
}

// Installed lists every installed formula, in the order brew reports them.
func (pm *PackageManager) Installed(ctx context.Context) ([]*Package, error) {
	return pm.list(ctx, installedFlag)
}

// All lists the entire formula catalog. This is a large payload and is
// buffered whole before decoding; there is no pagination or streaming.
func (pm *PackageManager) All(ctx context.Context) ([]*Package, error) {
	return pm.list(ctx, allFlag)
}

func (pm *PackageManager) list(ctx context.Context, scope string) ([]*Package, error) {
	pm.logger.Printf("Listing formulae (%s)", scope)
	out, err := pm.runner.Run(ctx, "info", jsonFlag, scope, analyticsFlag)
	if err != nil {
		return nil, pm.refine(ctx, err)
	}
	return decodePackages(out.Stdout)
}

// Install installs the formula with the given options and returns its
// refreshed record. An already-installed formula is reinstalled, unless the
// requested options are a subset of the options its existing keg was built
// with, in which case brew is not invoked and the current record is
// refreshed and returned as is.
func (pm *PackageManager) Install(ctx context.Context, pkg *Package, opts *InstallOptions) (*Package, error) {
	if pkg == nil || pkg.Name == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if opts == nil {
		opts = NewInstallOptions()
	}
	flags := opts.Flags()

	subcommand := "install"
	if pkg.IsInstalled() {
		if !opts.Forced() && containsAll(pkg.UsedOptions(), flags) {
			pm.logger.Printf("%s already installed with requested options", pkg.Name)
			return pm.Info(ctx, pkg.Name)
		}
		subcommand = "reinstall"
	}

	args := append([]string{subcommand, pkg.Name}, flags...)
	pm.logger.Printf("Running brew %s %s", subcommand, pkg.Name)
	if _, err := pm.runner.Run(ctx, args...); err != nil {
		return nil, pm.refine(ctx, err)
	}

	return pm.Info(ctx, pkg.Name)
}

// Uninstall removes the formula and returns its refreshed record.
func (pm *PackageManager) Uninstall(ctx context.Context, pkg *Package) (*Package, error) {
	if pkg == nil || pkg.Name == "" {
		return nil, fmt.Errorf("package name is required")
	}

	pm.logger.Printf("Running brew uninstall %s", pkg.Name)
	if _, err := pm.runner.Run(ctx, "uninstall", pkg.Name); err != nil {
		return nil, pm.refine(ctx, err)
	}

	return pm.Info(ctx, pkg.Name)
}

// containsAll reports whether every element of want is present in have.
func containsAll(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, s := range have {
		set[s] = struct{}{}
	}
	for _, s := range want {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}
