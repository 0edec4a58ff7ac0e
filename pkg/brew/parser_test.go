package brew

import (
	"errors"
	"testing"
)

const exaJSON = `[{
	"name": "exa",
	"full_name": "exa",
	"aliases": [],
	"oldname": null,
	"desc": "Modern replacement for 'ls'",
	"homepage": "https://the.exa.website",
	"versions": {"stable": "0.9.0", "devel": null, "head": "HEAD", "bottle": true},
	"urls": {"stable": {"url": "https://github.com/ogham/exa/archive/v0.9.0.tar.gz", "tag": null, "revision": null}},
	"revision": 0,
	"version_scheme": 0,
	"bottle": {"stable": {"rebuild": 0, "cellar": "/usr/local/Cellar", "prefix": "/usr/local", "root_url": "https://homebrew.bintray.com/bottles", "files": {"mojave": {"url": "https://homebrew.bintray.com/bottles/exa-0.9.0.mojave.bottle.tar.gz", "sha256": "9e0d7a1e0e1f5a937438763847ad46e83409078bcb52b1b70ae89c0e8acfdef5"}}}},
	"keg_only": false,
	"bottle_disabled": false,
	"options": [],
	"build_dependencies": ["rust"],
	"dependencies": ["libgit2"],
	"recommended_dependencies": [],
	"optional_dependencies": [],
	"uses_from_macos": ["zlib", {"libxml2": "build"}, {"curl": ["build", "test"]}],
	"requirements": [],
	"conflicts_with": [],
	"caveats": null,
	"installed": [{"version": "0.9.0", "used_options": ["--with-git"], "built_as_bottle": true, "poured_from_bottle": true, "runtime_dependencies": [{"full_name": "libgit2", "version": "0.28.2"}], "installed_as_dependency": false, "installed_on_request": true}],
	"linked_keg": "0.9.0",
	"pinned": false,
	"outdated": false,
	"analytics": {"install": {"30d": {"exa": 14025}}, "install_on_request": {"30d": {"exa": 13478}}, "build_error": {"30d": {"exa": 0}}}
}]`

// Same formula with the optional fields omitted and no installed kegs.
const bareJSON = `[{
	"name": "exa",
	"full_name": "exa",
	"versions": {"stable": "0.9.0", "bottle": true},
	"installed": []
}]`

func TestDecodePackage(t *testing.T) {
	pkg, err := decodePackage([]byte(exaJSON))
	if err != nil {
		t.Fatalf("decodePackage() error = %v", err)
	}

	if pkg.Name != "exa" {
		t.Errorf("Name = %q, want %q", pkg.Name, "exa")
	}
	if pkg.Desc == nil || *pkg.Desc != "Modern replacement for 'ls'" {
		t.Errorf("Desc = %v, want %q", pkg.Desc, "Modern replacement for 'ls'")
	}
	if pkg.Versions.Stable != "0.9.0" {
		t.Errorf("Versions.Stable = %q, want %q", pkg.Versions.Stable, "0.9.0")
	}
	if !pkg.IsInstalled() {
		t.Error("IsInstalled() = false, want true")
	}
	if got := pkg.UsedOptions(); len(got) != 1 || got[0] != "--with-git" {
		t.Errorf("UsedOptions() = %v, want [--with-git]", got)
	}
	if pkg.Analytics == nil || pkg.Analytics.Install.D30["exa"] != 14025 {
		t.Errorf("Analytics.Install.D30 = %v, want exa:14025", pkg.Analytics)
	}
}

func TestDecodePackageOptionalFieldsAbsent(t *testing.T) {
	pkg, err := decodePackage([]byte(bareJSON))
	if err != nil {
		t.Fatalf("decodePackage() error = %v", err)
	}

	// Absent must stay distinguishable from empty string
	if pkg.Desc != nil {
		t.Errorf("Desc = %q, want nil", *pkg.Desc)
	}
	if pkg.Homepage != nil {
		t.Errorf("Homepage = %q, want nil", *pkg.Homepage)
	}
	if pkg.Caveats != nil {
		t.Errorf("Caveats = %q, want nil", *pkg.Caveats)
	}
	if pkg.IsInstalled() {
		t.Error("IsInstalled() = true, want false")
	}
}

func TestDecodePackageEmptyDescriptionIsNotAbsent(t *testing.T) {
	payload := `[{"name": "x", "desc": ""}]`
	pkg, err := decodePackage([]byte(payload))
	if err != nil {
		t.Fatalf("decodePackage() error = %v", err)
	}
	if pkg.Desc == nil {
		t.Fatal("Desc = nil, want pointer to empty string")
	}
	if *pkg.Desc != "" {
		t.Errorf("Desc = %q, want empty string", *pkg.Desc)
	}
}

func TestDecodePackagesPreservesOrder(t *testing.T) {
	payload := `[{"name": "wget"}, {"name": "curl"}, {"name": "jq"}]`
	packages, err := decodePackages([]byte(payload))
	if err != nil {
		t.Fatalf("decodePackages() error = %v", err)
	}

	want := []string{"wget", "curl", "jq"}
	if len(packages) != len(want) {
		t.Fatalf("got %d packages, want %d", len(packages), len(want))
	}
	for i, name := range want {
		if packages[i].Name != name {
			t.Errorf("packages[%d].Name = %q, want %q", i, packages[i].Name, name)
		}
	}
}

func TestDecodePackagesMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "truncated", payload: `[{"name": "wget"`},
		{name: "not JSON", payload: `Error: wget not found`},
		{name: "object instead of array", payload: `{"name": "wget"}`},
		{name: "type mismatch", payload: `[{"name": "wget", "revision": "zero"}]`},
		{name: "wrong element type", payload: `["wget"]`},
		{name: "missing name", payload: `[{"full_name": "wget"}]`},
		{name: "null element", payload: `[null]`},
		{name: "null payload", payload: `null`},
		{name: "empty payload", payload: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packages, err := decodePackages([]byte(tt.payload))
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("decodePackages() error = %v, want *ParseError", err)
			}
			if packages != nil {
				t.Errorf("got %d partial records, want none", len(packages))
			}
		})
	}
}

func TestDecodePackageEmptyArray(t *testing.T) {
	_, err := decodePackage([]byte(`[]`))
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("decodePackage([]) error = %v, want ErrPackageNotFound", err)
	}
}

func TestMacOSUseShapes(t *testing.T) {
	pkg, err := decodePackage([]byte(exaJSON))
	if err != nil {
		t.Fatalf("decodePackage() error = %v", err)
	}

	uses := pkg.UsesFromMacOS
	if len(uses) != 3 {
		t.Fatalf("got %d uses_from_macos entries, want 3", len(uses))
	}
	if uses[0].Name != "zlib" || uses[0].Contexts != nil {
		t.Errorf("uses[0] = %+v, want bare zlib", uses[0])
	}
	if uses[1].Name != "libxml2" || len(uses[1].Contexts) != 1 || uses[1].Contexts[0] != "build" {
		t.Errorf("uses[1] = %+v, want libxml2 [build]", uses[1])
	}
	if uses[2].Name != "curl" || len(uses[2].Contexts) != 2 {
		t.Errorf("uses[2] = %+v, want curl [build test]", uses[2])
	}
}

func TestIntOrString(t *testing.T) {
	payload := `[{"name": "x", "urls": {"stable": {"url": "u", "revision": 4}, "head": {"url": "u2", "revision": "beta"}}}]`
	pkg, err := decodePackage([]byte(payload))
	if err != nil {
		t.Fatalf("decodePackage() error = %v", err)
	}

	if got := pkg.URLs["stable"].Revision; got == nil || got.String() != "4" {
		t.Errorf("stable revision = %v, want 4", got)
	}
	if got := pkg.URLs["head"].Revision; got == nil || got.String() != "beta" {
		t.Errorf("head revision = %v, want beta", got)
	}
}
