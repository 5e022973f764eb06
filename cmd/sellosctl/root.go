package main

import (
	"fmt"
	"os"

	"sellos/internal/logger"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

const cliOperator = "cli"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sellosctl",
		Short: "Stamp-duty (sellado) command-line tools",
		Long: `sellosctl calculates stamp-duty totals without a server and maintains
the act catalogue and the stamp record exports of a sellos database.

Commands that touch the database read the same SELLOS_* environment
variables (and configs/.env) as the API server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCalcCmd(),
		newImportActsCmd(),
		newActsTemplateCmd(),
		newExportCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	log := logger.WithComponent("cmd")

	if err := newRootCmd().Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
