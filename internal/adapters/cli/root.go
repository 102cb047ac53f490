package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	catalogPath string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coriolis",
		Short: "Coriolis - ship module outfitting tool",
		Long: `Coriolis lets you browse a ship module catalog, preview the effect of
percentage modifications on module stats, and keep named loadouts.

Examples:
  coriolis catalog list sg
  coriolis module show sg 3A --mod mass=-0.1 --mod kinres=0.05
  coriolis loadout create "Trade Cobra" sg 3A
  coriolis loadout set-mod <loadout-id> mass -0.1
  coriolis loadout show <loadout-id>`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/coriolis)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"Path to the module catalog JSON file (overrides config)")

	// Add command groups
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewModuleCommand())
	rootCmd.AddCommand(NewLoadoutCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
