package export_test

import (
	"bytes"
	"testing"
	"time"

	"sellos/internal/export"
	"sellos/internal/model"
	"sellos/internal/sellado"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestActsRoundTrip(t *testing.T) {
	grain := sellado.Act{
		Code:                  "07",
		Name:                  "Granos",
		Description:           "Compraventa de granos",
		UsesProduct:           true,
		IVA1:                  decimal.RequireFromString("10.5"),
		IVA2:                  decimal.RequireFromString("21"),
		StampDutyRate:         decimal.RequireFromString("0.75"),
		RegistrationRightRate: decimal.RequireFromString("0.1"),
		BonusDefault:          decimal.RequireFromString("1.5"),
		Offset1Default:        10,
		Offset2Default:        5,
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteActs(&buf, []sellado.Act{sellado.FallbackAct(), grain}))

	acts, err := export.ReadActs(&buf)
	require.NoError(t, err)
	require.Len(t, acts, 2)

	assert.Equal(t, "01", acts[0].Code)
	assert.Equal(t, "Agenda", acts[0].Name)
	assert.False(t, acts[0].UsesProduct)
	assert.Equal(t, 15, acts[0].Offset1Default)

	got := acts[1]
	assert.Equal(t, grain.Code, got.Code)
	assert.Equal(t, grain.Description, got.Description)
	assert.True(t, got.UsesProduct)
	assert.True(t, grain.IVA2.Equal(got.IVA2))
	assert.True(t, grain.StampDutyRate.Equal(got.StampDutyRate))
	assert.True(t, grain.RegistrationRightRate.Equal(got.RegistrationRightRate))
	assert.True(t, grain.BonusDefault.Equal(got.BonusDefault))
	assert.Equal(t, 10, got.Offset1Default)
	assert.Equal(t, 5, got.Offset2Default)
}

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadActs(t *testing.T) {
	t.Run("columns matched by name, blank rows skipped", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Name", "Code", "IVA1", "uses_product"},
			{"Agenda", "1", "10,50", "S"},
			{"", "", "", ""},
			{"Granos", "07", "21", "no"},
		})

		acts, err := export.ReadActs(buf)
		require.NoError(t, err)
		require.Len(t, acts, 2)
		assert.Equal(t, "01", acts[0].Code)
		assert.Equal(t, "Agenda", acts[0].Description)
		assert.True(t, acts[0].UsesProduct)
		assert.Equal(t, "10.50", acts[0].IVA1.StringFixed(2))
		assert.False(t, acts[1].UsesProduct)
		assert.True(t, acts[1].StampDutyRate.IsZero())
	})

	tests := []struct {
		name string
		rows [][]interface{}
		err  string
	}{
		{"missing code column", [][]interface{}{{"name"}, {"Agenda"}}, `missing column "code"`},
		{"negative rate", [][]interface{}{{"code", "name", "iva1"}, {"01", "Agenda", "-1"}}, "row 2: iva1"},
		{"bad offset", [][]interface{}{{"code", "name", "offset1_default"}, {"01", "Agenda", "x"}}, "row 2: offset1_default"},
		{"name without code", [][]interface{}{{"code", "name"}, {"", "Agenda"}}, "row 2: code and name are required"},
		{"bad flag", [][]interface{}{{"code", "name", "uses_product"}, {"01", "Agenda", "maybe"}}, "uses_product"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := export.ReadActs(workbook(t, tt.rows))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestWriteStampRecords(t *testing.T) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	records := []model.StampRecord{
		{
			RegistrationNo:   41,
			DistrictCode:     "SF",
			ActCode:          "01",
			ActName:          "Agenda",
			ContractNo:       1520,
			BuyerCUIT:        "33711316839",
			BuyerName:        "1 DE ABRIL SA",
			SellerCUIT:       "30712345679",
			SellerName:       "AGRO NORTE SRL",
			ControlDate:      day,
			IngressDate:      day.AddDate(0, 0, 10),
			RegistrationDate: day.AddDate(0, 0, 15),
			Offset1:          10,
			Offset2:          5,
			Total:            decimal.RequireFromString("14.36"),
			Status:           model.StampStatusActive,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteStampRecords(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(export.RecordsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Nro Registro", rows[0][0])
	assert.Equal(t, "41", rows[1][0])
	assert.Equal(t, "33711316839", rows[1][5])
	assert.Equal(t, "2025-01-25", rows[1][10])
	assert.Equal(t, "14.36", rows[1][30])
	assert.Equal(t, "A", rows[1][33])
}
