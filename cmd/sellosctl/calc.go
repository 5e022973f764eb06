package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"sellos/internal/sellado"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	fallback := sellado.FallbackAct()

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate stamp-duty totals from amounts",
		Long: `Calculate the derived amounts of a stamp record: IVA on both sides,
taxable base, registration value, stamp duty, registration right and total.

Rates default to those of act 01 (Agenda).`,
		Example: `  # Base scenario
  sellosctl calc --operativo1 1000 --iva1 10.50

  # Both sides, JSON output
  sellosctl calc --operativo1 1000 --operativo2 1000 --iva2 10.50 --json`,
		Args: cobra.NoArgs,
		RunE: runCalc,
	}

	f := cmd.Flags()
	f.String("operativo1", "", "Operative amount used for the stamp duty base")
	f.String("operativo2", "", "Operative amount used for the registration value")
	f.String("suma-fija1", "", "Fixed sum added to the stamp duty base")
	f.String("suma-fija2", "", "Fixed sum added to the registration value")
	f.String("iva1", fallback.IVA1.StringFixed(2), "IVA percentage on the stamp duty side")
	f.String("iva2", fallback.IVA2.StringFixed(2), "IVA percentage on the registration side")
	f.String("bonificacion", "", "Bonus subtracted from the total")
	f.Bool("exclude-fixed-sum", false, "Leave the fixed sums out of both bases")
	f.String("stamp-rate", fallback.StampDutyRate.String(), "Stamp duty rate (percent)")
	f.String("registration-rate", fallback.RegistrationRightRate.String(), "Registration right rate (percent)")
	f.Bool("json", false, "Print the totals as JSON")

	return cmd
}

func runCalc(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	str := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}

	rates, err := parseRates(str("stamp-rate"), str("registration-rate"))
	if err != nil {
		return err
	}
	exclude, _ := f.GetBool("exclude-fixed-sum")
	asJSON, _ := f.GetBool("json")

	totals := sellado.CalculateTotals(sellado.Amounts{
		Operativo1:      str("operativo1"),
		Operativo2:      str("operativo2"),
		SumaFija1:       str("suma-fija1"),
		SumaFija2:       str("suma-fija2"),
		IVA1:            str("iva1"),
		IVA2:            str("iva2"),
		Bonificacion:    str("bonificacion"),
		ExcludeFixedSum: exclude,
	}, rates).Strings()

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(totals)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range [][2]string{
		{"IVA 1", totals.IVA1Calc},
		{"Base imponible", totals.BaseImponible},
		{"IVA 2", totals.IVA2Calc},
		{"Valor registro", totals.ValorReg},
		{"Importe sellado", totals.ImporteSellado},
		{"Derecho registro", totals.DerechoReg},
		{"Bonificacion", totals.Bonificacion},
		{"Total sellado", totals.TotalSellado},
	} {
		fmt.Fprintf(tw, "%s\t%s\t\n", row[0], row[1])
	}
	return tw.Flush()
}

func parseRates(stamp, registration string) (sellado.StampRates, error) {
	s, err := decimal.NewFromString(stamp)
	if err != nil || s.IsNegative() {
		return sellado.StampRates{}, fmt.Errorf("invalid stamp rate %q", stamp)
	}
	r, err := decimal.NewFromString(registration)
	if err != nil || r.IsNegative() {
		return sellado.StampRates{}, fmt.Errorf("invalid registration rate %q", registration)
	}
	return sellado.StampRates{StampDutyRate: s, RegistrationRightRate: r}, nil
}
