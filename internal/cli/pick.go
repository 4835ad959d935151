package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termtint/internal/picker"
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a theme and a target to install it to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			themes, err := db.ListThemes()
			if err != nil {
				return err
			}
			if len(themes) == 0 {
				return fmt.Errorf("no themes stored; add one with: termtint import <file.toml>")
			}

			p := tea.NewProgram(picker.New(db, themes, cfg.Apply))
			_, err = p.Run()
			return err
		},
	}
}
