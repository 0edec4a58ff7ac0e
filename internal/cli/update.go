// internal/cli/update.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update brew's formula lists",
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := manager().Update(ctx); err != nil {
		return fmt.Errorf("updating: %w", err)
	}

	fmt.Println("Updated formula lists")
	return nil
}
