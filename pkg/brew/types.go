// types.go
package brew

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Config configures the package manager
type Config struct {
	BrewPath   string        // brew binary; probed from the standard prefixes and PATH when empty
	TarballURL string        // Homebrew source tarball used by Bootstrap
	Timeout    time.Duration // HTTP timeout for Bootstrap downloads
	AutoUpdate bool          // allow brew's implicit auto-update (suppressed by default)
	Debug      bool          // Enable debug logging
	Logger     *log.Logger   // Custom logger (optional)
	Runner     Runner        // Custom tool runner (optional; tests substitute canned output here)
}

// PackageManager drives the brew CLI and decodes its JSON output
type PackageManager struct {
	runner Runner
	client *Client
	config *Config
	logger *log.Logger
}

// Version is a version string exactly as brew reported it.
type Version string

// String returns the string representation of the version
func (v Version) String() string {
	return string(v)
}

// Package is one formula record from brew info --json=v1. It is a snapshot
// of what brew reported at decode time and is never mutated afterwards.
//
// Fields brew may omit for a formula (desc, homepage, oldname, caveats,
// linked_keg) are pointers so that "absent" stays distinguishable from "".
type Package struct {
	Name                    string            `json:"name"`
	FullName                string            `json:"full_name"`
	Aliases                 []string          `json:"aliases"`
	Oldname                 *string           `json:"oldname"`
	Desc                    *string           `json:"desc"`
	Homepage                *string           `json:"homepage"`
	Versions                Versions          `json:"versions"`
	URLs                    map[string]URL    `json:"urls"`
	Revision                int               `json:"revision"`
	VersionScheme           int               `json:"version_scheme"`
	Bottle                  map[string]Bottle `json:"bottle"`
	KegOnly                 bool              `json:"keg_only"`
	BottleDisabled          bool              `json:"bottle_disabled"`
	Options                 []Option          `json:"options"`
	BuildDependencies       []string          `json:"build_dependencies"`
	Dependencies            []string          `json:"dependencies"`
	RecommendedDependencies []string          `json:"recommended_dependencies"`
	OptionalDependencies    []string          `json:"optional_dependencies"`
	UsesFromMacOS           []MacOSUse        `json:"uses_from_macos"`
	Requirements            []Requirement     `json:"requirements"`
	ConflictsWith           []string          `json:"conflicts_with"`
	Caveats                 *string           `json:"caveats"`
	Installed               []Installed       `json:"installed"`
	LinkedKeg               *string           `json:"linked_keg"`
	Pinned                  bool              `json:"pinned"`
	Outdated                bool              `json:"outdated"`
	Analytics               *Analytics        `json:"analytics"`
}

// IsInstalled reports whether any keg of this formula is installed. Pure
// predicate over the already-fetched record, no subprocess call.
func (p *Package) IsInstalled() bool {
	return len(p.Installed) != 0
}

// UsedOptions returns the options the first installed keg was built with,
// or nil when the formula is not installed.
func (p *Package) UsedOptions() []string {
	if len(p.Installed) == 0 {
		return nil
	}
	return p.Installed[0].UsedOptions
}

// Versions contains the version information of a formula
type Versions struct {
	Stable Version  `json:"stable"`
	Devel  *Version `json:"devel"`
	Head   *string  `json:"head"`
	Bottle bool     `json:"bottle"`
}

// URL is one entry of a formula's urls map
type URL struct {
	URL      string       `json:"url"`
	Tag      *string      `json:"tag"`
	Revision *IntOrString `json:"revision"`
}

// Bottle describes the prebuilt binaries of a formula
type Bottle struct {
	Rebuild int                   `json:"rebuild"`
	Cellar  string                `json:"cellar"`
	Prefix  string                `json:"prefix"`
	RootURL string                `json:"root_url"`
	Files   map[string]BottleFile `json:"files"`
}

// BottleFile is a single downloadable bottle archive
type BottleFile struct {
	URL    string `json:"url"`
	SHA256 string `json:"sha256"`
}

// Option is an install option a formula declares
type Option struct {
	Option      string `json:"option"`
	Description string `json:"description"`
}

// Requirement is a non-formula prerequisite of a formula
type Requirement struct {
	Name     string   `json:"name"`
	Cask     *string  `json:"cask"`
	Download *string  `json:"download"`
	Version  *Version `json:"version"`
	Contexts []string `json:"contexts"`
}

// Installed describes one installed keg of a formula
type Installed struct {
	Version               Version             `json:"version"`
	UsedOptions           []string            `json:"used_options"`
	BuiltAsBottle         bool                `json:"built_as_bottle"`
	PouredFromBottle      bool                `json:"poured_from_bottle"`
	RuntimeDependencies   []RuntimeDependency `json:"runtime_dependencies"`
	InstalledAsDependency bool                `json:"installed_as_dependency"`
	InstalledOnRequest    bool                `json:"installed_on_request"`
}

// RuntimeDependency is a resolved dependency of an installed keg
type RuntimeDependency struct {
	FullName string  `json:"full_name"`
	Version  Version `json:"version"`
}

// Analytics holds the install counters brew publishes per formula
type Analytics struct {
	Install          Analytic `json:"install"`
	InstallOnRequest Analytic `json:"install_on_request"`
	BuildError       Analytic `json:"build_error"`
}

// Analytic is one counter series, keyed by time window
type Analytic struct {
	D30  map[string]int `json:"30d"`
	D90  map[string]int `json:"90d"`
	D365 map[string]int `json:"365d"`
}

// MacOSUse is one uses_from_macos entry. brew emits either a bare formula
// name ("zlib") or a map from name to build context(s), where the context is
// a string or a list of strings.
type MacOSUse struct {
	Name     string
	Contexts []string
}

// UnmarshalJSON accepts the three shapes brew emits for uses_from_macos.
func (u *MacOSUse) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		u.Name = name
		u.Contexts = nil
		return nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("uses_from_macos entry: expected string or object, got %s", data)
	}

	for name, raw := range entries {
		u.Name = name

		var one string
		if err := json.Unmarshal(raw, &one); err == nil {
			u.Contexts = []string{one}
			continue
		}

		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return fmt.Errorf("uses_from_macos contexts for %q: %w", name, err)
		}
		u.Contexts = many
	}
	return nil
}

// IntOrString holds a value brew emits as either a JSON number or a string,
// normalized to its string form.
type IntOrString string

// UnmarshalJSON accepts a JSON number or string.
func (v *IntOrString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = IntOrString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected number or string, got %s", data)
	}
	*v = IntOrString(n.String())
	return nil
}

// String returns the normalized string form
func (v IntOrString) String() string {
	return string(v)
}
