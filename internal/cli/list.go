// internal/cli/list.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brewkit/brewkit/pkg/brew"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed formulae",
	Long:  `List installed formulae, or the whole catalog with --all.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "list the entire formula catalog instead of installed formulae")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	pm := manager()

	var packages []*brew.Package
	var err error
	if listAll {
		packages, err = pm.All(ctx)
	} else {
		packages, err = pm.Installed(ctx)
	}
	if err != nil {
		return fmt.Errorf("listing formulae: %w", err)
	}

	for _, pkg := range packages {
		version := pkg.Versions.Stable
		if pkg.IsInstalled() {
			version = pkg.Installed[0].Version
		}
		desc := ""
		if pkg.Desc != nil {
			desc = *pkg.Desc
		}
		fmt.Printf("%-30s %-15s %s\n", pkg.Name, version, desc)
	}

	fmt.Printf("\n%d formulae\n", len(packages))
	return nil
}
