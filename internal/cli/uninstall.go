// internal/cli/uninstall.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [formula]",
	Short: "Uninstall a formula",
	Args:  cobra.ExactArgs(1),
	RunE:  runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	pm := manager()
	name := args[0]

	pkg, err := pm.Info(ctx, name)
	if err != nil {
		return fmt.Errorf("getting formula info: %w", err)
	}
	if !pkg.IsInstalled() {
		return fmt.Errorf("%s is not installed", name)
	}

	if _, err := pm.Uninstall(ctx, pkg); err != nil {
		return fmt.Errorf("uninstalling %s: %w", name, err)
	}

	fmt.Printf("Uninstalled %s\n", name)
	return nil
}
