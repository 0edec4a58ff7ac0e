// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brewkit/brewkit/pkg/brew"
	"github.com/brewkit/brewkit/pkg/core"
)

var (
	cfgFile  string
	brewPath string
	debug    bool
	config   *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "brewkit",
	Short: "Typed Homebrew front end",
	Long: `brewkit - a typed front end for the Homebrew CLI

Runs brew under the hood and renders its machine-readable output.
All package resolution and installation is done by brew itself.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/brewkit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&brewPath, "brew-path", "", "path to the brew binary (auto-detected by default)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if brewPath != "" {
		config.BrewPath = brewPath
	}
	if debug {
		config.Debug = true
	}
}

// manager builds a package manager from the effective configuration.
func manager() *brew.PackageManager {
	timeout, _ := config.TimeoutDuration() // validated by LoadConfig
	return brew.NewPackageManager(&brew.Config{
		BrewPath:   config.BrewPath,
		TarballURL: config.TarballURL,
		Timeout:    timeout,
		AutoUpdate: !config.AutoUpdateDisabled(),
		Debug:      config.Debug,
	})
}
