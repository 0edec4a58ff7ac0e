// options.go
package brew

// InstallOptions collects the flags of one brew install invocation. It is
// configured through chained setters and consumed by PackageManager.Install.
// The zero value means a plain "brew install <formula>".
type InstallOptions struct {
	head   bool
	force  bool
	envStd bool
	extra  []string
}

// NewInstallOptions returns an empty options value
func NewInstallOptions() *InstallOptions {
	return &InstallOptions{}
}

// Head requests building the formula from its HEAD (--HEAD)
func (o *InstallOptions) Head() *InstallOptions {
	o.head = true
	return o
}

// Force reinstalls the formula even when it is already installed (--force)
func (o *InstallOptions) Force() *InstallOptions {
	o.force = true
	return o
}

// EnvStd asks brew for the standard build environment (--env=std)
func (o *InstallOptions) EnvStd() *InstallOptions {
	o.envStd = true
	return o
}

// With appends formula-specific option strings verbatim, after the
// well-known flags.
func (o *InstallOptions) With(args ...string) *InstallOptions {
	o.extra = append(o.extra, args...)
	return o
}

// Forced reports whether Force was set
func (o *InstallOptions) Forced() bool {
	return o.force
}

// Flags renders the flag list. The spelling and order of the well-known
// flags is fixed: --HEAD --force --env=std, then any extra options.
func (o *InstallOptions) Flags() []string {
	var flags []string
	if o.head {
		flags = append(flags, FlagHEAD)
	}
	if o.force {
		flags = append(flags, FlagForce)
	}
	if o.envStd {
		flags = append(flags, FlagEnvStd)
	}
	return append(flags, o.extra...)
}
