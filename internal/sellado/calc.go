package sellado

import (
	"github.com/shopspring/decimal"
)

// Amounts are the monetary and percentage inputs exactly as typed.
type Amounts struct {
	Operativo1      string `json:"operativo1"`
	Operativo2      string `json:"operativo2"`
	SumaFija1       string `json:"suma_fija1"`
	SumaFija2       string `json:"suma_fija2"`
	IVA1            string `json:"iva1"`
	IVA2            string `json:"iva2"`
	Bonificacion    string `json:"bonificacion"`
	ExcludeFixedSum bool   `json:"exclude_fixed_sum"`
}

// StampRates are the act percentages applied to the two bases.
type StampRates struct {
	StampDutyRate         decimal.Decimal
	RegistrationRightRate decimal.Decimal
}

func (a Act) Rates() StampRates {
	return StampRates{StampDutyRate: a.StampDutyRate, RegistrationRightRate: a.RegistrationRightRate}
}

// Totals holds every derived amount. It is never edited directly.
type Totals struct {
	IVA1Calc       decimal.Decimal
	BaseImponible  decimal.Decimal
	IVA2Calc       decimal.Decimal
	ValorReg       decimal.Decimal
	ImporteSellado decimal.Decimal
	DerechoReg     decimal.Decimal
	Bonificacion   decimal.Decimal
	TotalSellado   decimal.Decimal
}

// TotalsView is the flat string rendering of Totals.
type TotalsView struct {
	IVA1Calc       string `json:"iva1_calc"`
	BaseImponible  string `json:"base_imponible"`
	IVA2Calc       string `json:"iva2_calc"`
	ValorReg       string `json:"valor_reg"`
	ImporteSellado string `json:"importe_sellado"`
	DerechoReg     string `json:"derecho_reg"`
	Bonificacion   string `json:"bonificacion"`
	TotalSellado   string `json:"total_sellado"`
}

func (t Totals) Strings() TotalsView {
	return TotalsView{
		IVA1Calc:       t.IVA1Calc.StringFixed(2),
		BaseImponible:  t.BaseImponible.StringFixed(2),
		IVA2Calc:       t.IVA2Calc.StringFixed(2),
		ValorReg:       t.ValorReg.StringFixed(2),
		ImporteSellado: t.ImporteSellado.StringFixed(2),
		DerechoReg:     t.DerechoReg.StringFixed(2),
		Bonificacion:   t.Bonificacion.StringFixed(2),
		TotalSellado:   t.TotalSellado.StringFixed(2),
	}
}

// CalculateTotals derives every dependent amount from the inputs. Both sides
// use the same shape; ExcludeFixedSum drops the fixed sum from both bases.
func CalculateTotals(in Amounts, rates StampRates) Totals {
	iva1, base := side(in.Operativo1, in.SumaFija1, in.IVA1, in.ExcludeFixedSum)
	iva2, valorReg := side(in.Operativo2, in.SumaFija2, in.IVA2, in.ExcludeFixedSum)

	importe := round2(percentOf(base, rates.StampDutyRate))
	derecho := round2(percentOf(valorReg, rates.RegistrationRightRate))
	bonif := round2(ParseAmount(in.Bonificacion))

	total := importe.Add(derecho).Sub(bonif)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		IVA1Calc:       iva1,
		BaseImponible:  base,
		IVA2Calc:       iva2,
		ValorReg:       valorReg,
		ImporteSellado: importe,
		DerechoReg:     derecho,
		Bonificacion:   bonif,
		TotalSellado:   round2(total),
	}
}

func side(operativo, sumaFija, rate string, excludeFixedSum bool) (ivaCalc, base decimal.Decimal) {
	net := ParseAmount(operativo)
	if !excludeFixedSum {
		net = net.Add(ParseAmount(sumaFija))
	}
	ivaCalc = round2(percentOf(net, ParseAmount(rate)))
	return ivaCalc, round2(net.Add(ivaCalc))
}
