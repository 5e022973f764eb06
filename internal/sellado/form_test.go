package sellado_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellos/internal/sellado"
)

const (
	buyer  = "1 DE ABRIL SA | 33711316839"
	seller = "AGRO NORTE SRL | 30712345679"
)

func validForm(t *testing.T) sellado.Form {
	t.Helper()
	f := sellado.NewForm(today, sellado.FallbackAct())
	require.NoError(t, f.SetField("buyer", buyer))
	require.NoError(t, f.SetField("seller", seller))
	require.NoError(t, f.SetField("contract_number", "1520"))
	require.NoError(t, f.SetField("operativo1", "1000"))
	require.NoError(t, f.SetField("operativo2", "1000"))
	return f
}

func grainAct() sellado.Act {
	return sellado.Act{
		Code:                  "07",
		Name:                  "Compraventa de granos",
		UsesProduct:           true,
		IVA1:                  decimal.RequireFromString("10.50"),
		IVA2:                  decimal.RequireFromString("21"),
		StampDutyRate:         decimal.RequireFromString("0.75"),
		RegistrationRightRate: decimal.RequireFromString("0.10"),
		BonusDefault:          decimal.RequireFromString("1.50"),
		Offset1Default:        10,
		Offset2Default:        5,
	}
}

func TestNewForm_Defaults(t *testing.T) {
	f := sellado.NewForm(today, sellado.FallbackAct())

	assert.Equal(t, "Agenda | 01", f.Act)
	assert.Equal(t, "01", f.ActCode)
	assert.Equal(t, "0", f.ContractNumber)
	assert.Equal(t, sellado.DefaultCurrency, f.Currency)
	assert.Equal(t, sellado.NoProduct, f.Product)
	assert.Equal(t, "10.50", f.Amounts.IVA1)
	assert.Equal(t, "1.05", f.Rates.StampDutyRate)
	assert.Equal(t, 15, f.Schedule.Offset1)
	assert.True(t, f.Totals.TotalSellado.IsZero())
}

func TestForm_SetFieldRecalculates(t *testing.T) {
	f := validForm(t)

	assert.Equal(t, "14.36", f.Totals.TotalSellado.StringFixed(2))

	require.NoError(t, f.SetField("bonificacion", "4.36"))
	assert.Equal(t, "10.00", f.Totals.TotalSellado.StringFixed(2))

	require.NoError(t, f.SetField("exclude_fixed_sum", "true"))
	assert.True(t, f.Amounts.ExcludeFixedSum)

	assert.Error(t, f.SetField("exclude_fixed_sum", "maybe"))
	assert.Error(t, f.SetField("unknown", "1"))
}

func TestForm_ProductSelector(t *testing.T) {
	f := validForm(t)
	assert.Error(t, f.SetField("product", "Maíz"))

	f.SelectAct(today, grainAct())
	require.NoError(t, f.SetField("product", "Maíz"))
	assert.Equal(t, "Maíz", f.Product)

	f.SelectAct(today, sellado.FallbackAct())
	assert.Equal(t, sellado.NoProduct, f.Product)
}

func TestForm_SelectActReplacesRates(t *testing.T) {
	f := validForm(t)

	f.SelectAct(today, grainAct())

	assert.Equal(t, "Compraventa de granos | 07", f.Act)
	assert.Equal(t, "21.00", f.Amounts.IVA2)
	assert.Equal(t, "1.50", f.Amounts.Bonificacion)
	assert.Equal(t, 10, f.Schedule.Offset1)
	assert.Equal(t, "2025-01-11", f.Schedule.IngressDate.String())
	// base 1105.00 at 0.75% and valorReg 1210.00 at 0.10%, minus 1.50
	assert.Equal(t, "8.29", f.Totals.ImporteSellado.StringFixed(2))
	assert.Equal(t, "1.21", f.Totals.DerechoReg.StringFixed(2))
	assert.Equal(t, "8.00", f.Totals.TotalSellado.StringFixed(2))
}

func TestForm_CopyBaseToRegister(t *testing.T) {
	f := sellado.NewForm(today, sellado.FallbackAct())
	require.NoError(t, f.SetField("operativo1", "2500"))
	require.NoError(t, f.SetField("suma_fija1", "100"))

	f.CopyBaseToRegister()

	assert.Equal(t, "2500", f.Amounts.Operativo2)
	assert.Equal(t, "100", f.Amounts.SumaFija2)
	assert.True(t, f.Totals.BaseImponible.Equal(f.Totals.ValorReg))
}

func TestForm_ResetForNewEntry(t *testing.T) {
	f := validForm(t)
	f.Schedule.SetDate(today, sellado.IngressDate, sellado.NewDate(2025, 1, 20))
	require.NoError(t, f.SetField("observations", "first contract"))

	f.ResetForNewEntry(sellado.FallbackAct())

	assert.Equal(t, buyer, f.Buyer)
	assert.Equal(t, seller, f.Seller)
	assert.Equal(t, "2025-01-20", f.Schedule.IngressDate.String())
	assert.Equal(t, "0", f.ContractNumber)
	assert.Equal(t, "0.00", f.Amounts.Operativo1)
	assert.Equal(t, "10.50", f.Amounts.IVA1)
	assert.Empty(t, f.Observations)
	assert.True(t, f.Totals.TotalSellado.IsZero())
}

func TestForm_Apply(t *testing.T) {
	f := validForm(t)

	require.NoError(t, f.Apply(today, sellado.Edit{Op: sellado.OpSetDate, Field: "control_date", Value: "2025-01-01"}, sellado.Act{}))
	assert.Equal(t, "2025-01-16", f.Schedule.IngressDate.String())

	require.NoError(t, f.Apply(today, sellado.Edit{Op: sellado.OpSetOffset, Field: "offset2", Value: "10"}, sellado.Act{}))
	assert.Equal(t, "2025-01-26", f.Schedule.RegistrationDate.String())

	require.NoError(t, f.Apply(today, sellado.Edit{Op: sellado.OpSetField, Field: "operativo1", Value: "2000"}, sellado.Act{}))
	assert.Equal(t, "2210.00", f.Totals.BaseImponible.StringFixed(2))

	require.NoError(t, f.Apply(today, sellado.Edit{Op: sellado.OpCopyBase}, sellado.Act{}))
	assert.Equal(t, "2000", f.Amounts.Operativo2)

	require.NoError(t, f.Apply(today, sellado.Edit{Op: sellado.OpSelectAct, Value: "07"}, grainAct()))
	assert.Equal(t, "07", f.ActCode)

	assert.Error(t, f.Apply(today, sellado.Edit{Op: sellado.OpSetDate, Field: "control_date", Value: "yesterday"}, sellado.Act{}))
	assert.Error(t, f.Apply(today, sellado.Edit{Op: sellado.OpSetDate, Field: "due_date", Value: "2025-01-01"}, sellado.Act{}))
	assert.Error(t, f.Apply(today, sellado.Edit{Op: sellado.OpSetOffset, Field: "offset3", Value: "1"}, sellado.Act{}))
	assert.Error(t, f.Apply(today, sellado.Edit{Op: "undo"}, sellado.Act{}))
}

func TestPartyCUIT(t *testing.T) {
	assert.Equal(t, "30712345679", sellado.PartyCUIT(seller))
	assert.Equal(t, sellado.DefaultCUIT, sellado.PartyCUIT("NO CUIT"))

	name, code := sellado.SplitLabel("Agenda | 01")
	assert.Equal(t, "Agenda", name)
	assert.Equal(t, "01", code)
}

func TestAct_RatesSummary(t *testing.T) {
	assert.Equal(t, "DerReg 0.25 // IVA1 10.50 // IVA2 10.50", sellado.FallbackAct().RatesSummary())
}
