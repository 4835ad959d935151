package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"termtint/internal/installer"
	"termtint/internal/ui"
)

func newInstallCmd() *cobra.Command {
	var (
		apply  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "install <target> <theme-id>",
		Short: "Install a stored theme into a terminal emulator",
		Long: "Install a stored theme into one of: " + strings.Join(installer.Targets(), ", ") + `.
The install result is reported even when live-apply fails; a failed apply
only changes the follow-up instructions.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, themeID := args[0], args[1]

			db, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if !cmd.Flags().Changed("apply") {
				apply = cfg.Apply
			}

			inst, err := installer.ForTarget(target, db, apply)
			if err != nil {
				return err
			}

			res := inst.Install(themeID)

			if asJSON {
				out, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			} else {
				printResult(cmd, inst.Name(), res)
			}

			if !res.Success {
				// The failure is already reported as data; keep the exit
				// code honest without a second error print.
				cmd.SilenceErrors = true
				return fmt.Errorf("install failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", true, "apply the theme to open sessions where supported")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the install result as JSON")
	return cmd
}

func printResult(cmd *cobra.Command, target string, res installer.Result) {
	out := cmd.OutOrStdout()
	if res.Success {
		fmt.Fprintln(out, ui.SuccessText.Render("✓ "+target))
		if res.Path != "" {
			fmt.Fprintln(out, ui.DimText.Render("  "+res.Path))
		}
		if res.Instructions != "" {
			fmt.Fprintln(out, "  "+res.Instructions)
		}
		return
	}
	fmt.Fprintln(out, ui.ErrorText.Render("✗ "+target))
	fmt.Fprintln(out, "  "+res.Error)
}
