// brewkit.go
package brewkit

import (
	"context"
	"sync"

	"github.com/brewkit/brewkit/pkg/brew"
)

// Re-export brew types for convenience
type (
	Package        = brew.Package
	Versions       = brew.Versions
	Installed      = brew.Installed
	InstallOptions = brew.InstallOptions
	Config         = brew.Config
	PackageManager = brew.PackageManager
	Runner         = brew.Runner
	ExecError      = brew.ExecError
	ToolError      = brew.ToolError
	ParseError     = brew.ParseError
)

// Re-export brew sentinel errors
var (
	ErrNotInstalled    = brew.ErrNotInstalled
	ErrPackageNotFound = brew.ErrPackageNotFound
)

// NewPackageManager creates a package manager with the given configuration
func NewPackageManager(cfg *Config) *PackageManager {
	return brew.NewPackageManager(cfg)
}

// NewInstallOptions returns an empty install options value
func NewInstallOptions() *InstallOptions {
	return brew.NewInstallOptions()
}

var (
	defaultOnce sync.Once
	defaultPM   *brew.PackageManager
)

// defaultManager is the process-wide manager behind the package-level
// functions, constructed on first use with default configuration.
func defaultManager() *brew.PackageManager {
	defaultOnce.Do(func() {
		defaultPM = brew.NewPackageManager(nil)
	})
	return defaultPM
}

// Update runs "brew update".
func Update(ctx context.Context) error {
	if err := defaultManager().Update(ctx); err != nil {
		return &Error{Op: "update", Err: err}
	}
	return nil
}

// NewPackage fetches the formula record for one name.
func NewPackage(ctx context.Context, name string) (*Package, error) {
	pkg, err := defaultManager().Info(ctx, name)
	if err != nil {
		return nil, &Error{Op: "info", Package: name, Err: err}
	}
	return pkg, nil
}

// AllInstalled lists every installed formula, in the order brew reports them.
func AllInstalled(ctx context.Context) ([]*Package, error) {
	packages, err := defaultManager().Installed(ctx)
	if err != nil {
		return nil, &Error{Op: "list installed", Err: err}
	}
	return packages, nil
}

// AllPackages lists the entire formula catalog. The whole payload is
// buffered before decoding.
func AllPackages(ctx context.Context) ([]*Package, error) {
	packages, err := defaultManager().All(ctx)
	if err != nil {
		return nil, &Error{Op: "list all", Err: err}
	}
	return packages, nil
}

// Install installs the named formula and returns its refreshed record.
func Install(ctx context.Context, name string, opts *InstallOptions) (*Package, error) {
	pm := defaultManager()
	pkg, err := pm.Info(ctx, name)
	if err != nil {
		return nil, &Error{Op: "install", Package: name, Err: err}
	}
	pkg, err = pm.Install(ctx, pkg, opts)
	if err != nil {
		return nil, &Error{Op: "install", Package: name, Err: err}
	}
	return pkg, nil
}

// Uninstall removes the named formula and returns its refreshed record.
func Uninstall(ctx context.Context, name string) (*Package, error) {
	pm := defaultManager()
	pkg, err := pm.Info(ctx, name)
	if err != nil {
		return nil, &Error{Op: "uninstall", Package: name, Err: err}
	}
	pkg, err = pm.Uninstall(ctx, pkg)
	if err != nil {
		return nil, &Error{Op: "uninstall", Package: name, Err: err}
	}
	return pkg, nil
}

// Bootstrap installs Homebrew itself under dir.
func Bootstrap(ctx context.Context, dir string) error {
	if err := defaultManager().Bootstrap(ctx, dir); err != nil {
		return &Error{Op: "bootstrap", Err: err}
	}
	return nil
}
