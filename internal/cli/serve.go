package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"termtint/internal/ipc"
)

func newServeCmd() *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the installers over stdio for the UI process",
		Long: `Run an MCP server on stdin/stdout exposing one install tool per
target plus platform and theme-detection queries. Intended to be spawned
by the UI process; requests are handled one at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if !cmd.Flags().Changed("apply") {
				apply = cfg.Apply
			}

			// Stdout carries the protocol; logs go to stderr.
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				Prefix:          "termtint",
			})

			s := ipc.New(db, apply, logger, Version)
			logger.Info("serving on stdio")
			return s.ServeStdio()
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", true, "apply themes to open sessions where supported")
	return cmd
}
