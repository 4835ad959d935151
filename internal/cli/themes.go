package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"termtint/internal/installer"
	"termtint/internal/theme"
	"termtint/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			themes, err := db.ListThemes()
			if err != nil {
				return err
			}
			if len(themes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No themes stored. Add one with: termtint import <file.toml>")
				return nil
			}
			for _, t := range themes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", t.Name, ui.DimText.Render(t.ID))
			}
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.toml>",
		Short: "Import a theme definition into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := theme.LoadFile(args[0])
			if err != nil {
				return err
			}

			id := f.Theme.ID
			if id == "" {
				id = installer.Slugify(f.Theme.Name)
			}
			if id == "" {
				return fmt.Errorf("theme has neither an id nor a sluggable name")
			}

			db, _, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.UpsertTheme(id, f.Theme.Name); err != nil {
				return err
			}
			for key, value := range f.Colors {
				if err := db.SetColor(id, key, value); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as %s\n", f.Theme.Name, id)
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <theme-id>",
		Short: "Remove a theme and its colors from the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			return db.DeleteTheme(args[0])
		},
	}
}

func newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Print the host platform tag (macos, windows, or linux)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), installer.Platform())
			return nil
		},
	}
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "List themes already installed in terminal configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := json.Marshal(installer.DetectInstalled())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
