// Package cli wires the termtint command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"termtint/internal/config"
	"termtint/internal/store"
)

// Version is stamped by the build; the default marks dev builds.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "termtint",
	Short: "Install terminal color themes into your emulator's config",
	Long: `termtint keeps color themes in a local database and installs them
into the native configuration of iTerm2, Terminal.app, Windows Terminal,
Alacritty, and Kitty. On macOS targets it can apply the theme to already
open sessions.`,
	SilenceUsage: true,
}

// Execute runs the root command. Cobra prints the error; we just exit
// non-zero.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newInstallCmd(),
		newListCmd(),
		newImportCmd(),
		newDeleteCmd(),
		newPickCmd(),
		newPlatformCmd(),
		newDetectCmd(),
		newServeCmd(),
	)
}

// openStore loads the config file and opens the theme database, creating
// its directory on first use.
func openStore() (*store.DB, config.Config, error) {
	cfg := config.Default()
	if _, err := config.LoadFile(&cfg); err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, cfg, fmt.Errorf("create data dir: %w", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, cfg, err
	}
	return db, cfg, nil
}
