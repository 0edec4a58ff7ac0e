// platform.go
package brew

import (
	"os"
	"os/exec"
	"runtime"
)

const (
	// BrewPathARM is the standard brew location on Apple Silicon
	BrewPathARM = "/opt/homebrew/bin/brew"

	// BrewPathIntel is the standard brew location on Intel macOS
	BrewPathIntel = "/usr/local/bin/brew"

	// BrewPathLinux is the standard Linuxbrew location
	BrewPathLinux = "/home/linuxbrew/.linuxbrew/bin/brew"
)

// DetectBrew locates the brew binary. It probes the standard prefix for the
// host platform first, then the remaining prefixes, then falls back to a
// PATH lookup. Returns ErrNotInstalled when nothing is found.
func DetectBrew() (string, error) {
	for _, path := range defaultBrewPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	if path, err := exec.LookPath("brew"); err == nil {
		return path, nil
	}

	return "", ErrNotInstalled
}

// defaultBrewPaths orders the standard locations by likelihood for the
// current platform.
func defaultBrewPaths() []string {
	switch {
	case runtime.GOOS == "darwin" && runtime.GOARCH == "arm64":
		return []string{BrewPathARM, BrewPathIntel}
	case runtime.GOOS == "darwin":
		return []string{BrewPathIntel, BrewPathARM}
	case runtime.GOOS == "linux":
		return []string{BrewPathLinux, BrewPathIntel}
	default:
		return nil
	}
}
