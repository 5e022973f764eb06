package main

import (
	"fmt"
	"os"

	"sellos/internal/export"
	"sellos/internal/logger"
	"sellos/internal/sellado"

	"github.com/spf13/cobra"
)

func newImportActsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-acts <file.xlsx>",
		Short: "Upsert the act catalogue from a spreadsheet",
		Long: `Read acts from the "Actos" sheet of an XLSX workbook and upsert them
into the catalogue. Columns are matched by header name; see acts-template.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.WithComponent("import-acts")

			acts, err := readActsFile(args[0])
			if err != nil {
				return err
			}

			svc, err := openServices()
			if err != nil {
				return err
			}
			n, err := svc.catalog.ImportActs(cmd.Context(), acts, cliOperator)
			if err != nil {
				return err
			}

			log.Info().Str("file", args[0]).Int("acts", n).Msg("act catalogue imported")
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d acts\n", n)
			return nil
		},
	}
}

func newActsTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acts-template",
		Short: "Write an act catalogue workbook to fill in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer func() { _ = file.Close() }()

			if err := export.WriteActs(file, []sellado.Act{sellado.FallbackAct()}); err != nil {
				return fmt.Errorf("write template: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "actos.xlsx", "Output file")
	return cmd
}

func readActsFile(path string) ([]sellado.Act, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	acts, err := export.ReadActs(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(acts) == 0 {
		return nil, fmt.Errorf("%s has no acts", path)
	}
	return acts, nil
}
