// internal/cli/info.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brewkit/brewkit/pkg/brew"
)

var infoCmd = &cobra.Command{
	Use:   "info [formula]",
	Short: "Show information about a formula",
	Long:  `Display detailed information about a formula from brew's machine-readable output.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pkg, err := manager().Info(ctx, args[0])
	if err != nil {
		return fmt.Errorf("getting formula info: %w", err)
	}

	printPackage(pkg)
	return nil
}

func printPackage(pkg *brew.Package) {
	fmt.Printf("Formula: %s\n", pkg.FullName)
	fmt.Printf("Stable: %s\n", pkg.Versions.Stable)
	if pkg.Desc != nil {
		fmt.Printf("Description: %s\n", *pkg.Desc)
	}
	if pkg.Homepage != nil {
		fmt.Printf("Homepage: %s\n", *pkg.Homepage)
	}
	if len(pkg.Dependencies) > 0 {
		fmt.Printf("Dependencies: %s\n", strings.Join(pkg.Dependencies, ", "))
	}
	if pkg.IsInstalled() {
		fmt.Printf("Installed: %s\n", pkg.Installed[0].Version)
	} else {
		fmt.Printf("Installed: no\n")
	}
	if pkg.Caveats != nil {
		fmt.Printf("\n%s\n", *pkg.Caveats)
	}
}
