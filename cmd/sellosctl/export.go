package main

import (
	"fmt"
	"os"

	"sellos/internal/logger"
	"sellos/internal/service"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stamp records to an XLSX workbook",
		Example: `  # Every record of a buyer in March
  sellosctl export --buyer-cuit 20123456786 --from 2024-03-01 --to 2024-03-31 -o marzo.xlsx`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	f := cmd.Flags()
	f.StringP("out", "o", "sellos.xlsx", "Output file")
	f.String("buyer-cuit", "", "Only records of this buyer")
	f.String("seller-cuit", "", "Only records of this seller")
	f.String("act", "", "Only records of this act code")
	f.String("from", "", "Control date from (YYYY-MM-DD)")
	f.String("to", "", "Control date to (YYYY-MM-DD)")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	log := logger.WithComponent("export")
	f := cmd.Flags()
	str := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}

	req := service.ListStampRecordsRequest{
		BuyerCUIT:  str("buyer-cuit"),
		SellerCUIT: str("seller-cuit"),
		ActCode:    str("act"),
		From:       str("from"),
		To:         str("to"),
	}

	svc, err := openServices()
	if err != nil {
		return err
	}

	out := str("out")
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer func() { _ = file.Close() }()

	n, err := svc.stamps.Export(cmd.Context(), req, file, cliOperator)
	if err != nil {
		_ = os.Remove(out)
		return err
	}

	log.Info().Str("file", out).Int("records", n).Msg("stamp records exported")
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", n, out)
	return nil
}
