// internal/cli/bootstrap.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [dir]",
	Short: "Install Homebrew itself",
	Long: `Download the upstream Homebrew tarball and unpack it under dir
(default /usr/local), then verify the unpacked brew binary responds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dir := "/usr/local"
	if len(args) == 1 {
		dir = args[0]
	}

	fmt.Printf("Bootstrapping Homebrew into %s...\n", dir)
	if err := manager().Bootstrap(ctx, dir); err != nil {
		return fmt.Errorf("bootstrapping: %w", err)
	}

	fmt.Println("Homebrew is ready")
	return nil
}
