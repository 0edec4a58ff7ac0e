// internal/cli/install.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brewkit/brewkit/pkg/brew"
)

var (
	installHead   bool
	installForce  bool
	installEnvStd bool
)

var installCmd = &cobra.Command{
	Use:   "install [formula...]",
	Short: "Install one or more formulae",
	Long: `Install formulae through brew.

Examples:
  brewkit install wget
  brewkit install exa --HEAD
  brewkit install wget curl jq --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installHead, "HEAD", false, "build from the HEAD of the formula")
	installCmd.Flags().BoolVar(&installForce, "force", false, "reinstall even when already installed")
	installCmd.Flags().BoolVar(&installEnvStd, "env-std", false, "use the standard build environment")
}

func runInstall(cmd *cobra.Command, args []string) error {
	return installFormulae(context.Background(), manager(), args)
}

func installFormulae(ctx context.Context, pm *brew.PackageManager, names []string) error {
	failed := 0

	for _, name := range names {
		fmt.Printf("Installing %s...\n", name)

		opts := brew.NewInstallOptions()
		if installHead {
			opts.Head()
		}
		if installForce {
			opts.Force()
		}
		if installEnvStd {
			opts.EnvStd()
		}

		pkg, err := pm.Info(ctx, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to install %s: %v\n", name, err)
			failed++
			continue
		}

		installed, err := pm.Install(ctx, pkg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to install %s: %v\n", name, err)
			failed++
			continue
		}

		if installed.IsInstalled() {
			fmt.Printf("Installed %s %s\n", installed.Name, installed.Installed[0].Version)
		} else {
			fmt.Printf("Installed %s\n", installed.Name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d formulae failed to install", failed, len(names))
	}
	return nil
}
