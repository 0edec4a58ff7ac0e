// constants.go
package brew

const (
	// NoAutoUpdateEnv keeps brew from running an implicit "brew update"
	// before every invocation.
	NoAutoUpdateEnv = "HOMEBREW_NO_AUTO_UPDATE=1"

	// DefaultTarballURL is the upstream Homebrew source tarball used by Bootstrap
	DefaultTarballURL = "https://github.com/Homebrew/brew/tarball/master"

	// jsonFlag selects the v1 machine-readable schema of brew info
	jsonFlag = "--json=v1"

	// analyticsFlag includes analytics counters in info output
	analyticsFlag = "--analytics"

	// installedFlag restricts info output to installed formulae
	installedFlag = "--installed"

	// allFlag expands info output to the whole catalog
	allFlag = "--all"
)

// Install flag spellings, fixed by the brew CLI.
const (
	FlagHEAD   = "--HEAD"
	FlagForce  = "--force"
	FlagEnvStd = "--env=std"
)
