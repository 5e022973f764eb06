// Package export reads and writes the spreadsheets exchanged with the
// back office: the stamp record ledger and the act catalogue.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"sellos/internal/model"
	"sellos/internal/sellado"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	RecordsSheet = "Sellos"
	ActsSheet    = "Actos"
	dateLayout   = "2006-01-02"
)

var recordHeader = []interface{}{
	"Nro Registro", "Distrito", "Acto", "Descripcion", "Contrato",
	"CUIT Comprador", "Comprador", "CUIT Vendedor", "Vendedor",
	"Fecha Control", "Fecha Ingreso", "Fecha Registro", "Dias 1", "Dias 2",
	"Producto", "Peso Neto", "Precio Unitario",
	"Operativo 1", "Suma Fija 1", "IVA 1 %", "IVA 1", "Base Imponible",
	"Operativo 2", "Suma Fija 2", "IVA 2 %", "IVA 2", "Valor Registro",
	"Importe Sellado", "Derecho Registro", "Bonificacion", "Total",
	"Alicuotas", "Moneda", "Estado", "Observaciones", "Operador",
}

// ActColumns is the header row of an act catalogue sheet. Columns are
// matched by name so their order in the workbook is free.
var ActColumns = []string{
	"code", "name", "description", "uses_product", "iva1", "iva2",
	"stamp_duty_rate", "registration_right_rate", "bonus_default",
	"offset1_default", "offset2_default",
}

// WriteStampRecords streams records as a single-sheet workbook to w.
func WriteStampRecords(w io.Writer, records []model.StampRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), RecordsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(RecordsSheet)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}
	if err := sw.SetRow("A1", recordHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, recordRow(r)); err != nil {
			return fmt.Errorf("write record %d: %w", r.RegistrationNo, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	return f.Write(w)
}

func recordRow(r model.StampRecord) []interface{} {
	money := func(d decimal.Decimal) string { return d.StringFixed(2) }
	return []interface{}{
		r.RegistrationNo, r.DistrictCode, r.ActCode, r.ActName, r.ContractNo,
		r.BuyerCUIT, r.BuyerName, r.SellerCUIT, r.SellerName,
		r.ControlDate.Format(dateLayout), r.IngressDate.Format(dateLayout), r.RegistrationDate.Format(dateLayout),
		r.Offset1, r.Offset2,
		r.Product, money(r.NetWeight), money(r.UnitPrice),
		money(r.Operativo1), money(r.FixedSum1), money(r.IVA1), money(r.IVA1Amount), money(r.TaxableBase),
		money(r.Operativo2), money(r.FixedSum2), money(r.IVA2), money(r.IVA2Amount), money(r.RegistrationValue),
		money(r.StampDuty), money(r.RegistrationRight), money(r.Bonus), money(r.Total),
		r.RatesSummary, r.CurrencyType, r.Status, r.Observations, r.CreatedBy,
	}
}

// WriteActs writes the catalogue in the layout ReadActs accepts. An empty
// slice produces a blank template.
func WriteActs(w io.Writer, acts []sellado.Act) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ActsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(ActColumns))
	for i, c := range ActColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(ActsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, a := range acts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			a.Code, a.Name, a.Description, strconv.FormatBool(a.UsesProduct),
			a.IVA1.StringFixed(2), a.IVA2.StringFixed(2),
			a.StampDutyRate.StringFixed(2), a.RegistrationRightRate.StringFixed(2),
			a.BonusDefault.StringFixed(2), a.Offset1Default, a.Offset2Default,
		}
		if err := f.SetSheetRow(ActsSheet, cell, &row); err != nil {
			return fmt.Errorf("write act %s: %w", a.Code, err)
		}
	}

	return f.Write(w)
}

// ReadActs parses the first sheet of an act catalogue workbook. Blank rows
// are skipped; any malformed cell fails the whole import.
func ReadActs(r io.Reader) ([]sellado.Act, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook is empty")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"code", "name"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var acts []sellado.Act
	for i, row := range rows[1:] {
		line := i + 2
		get := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if get("code") == "" && get("name") == "" {
			continue
		}

		act, err := parseAct(get)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		acts = append(acts, act)
	}
	return acts, nil
}

func parseAct(get func(string) string) (sellado.Act, error) {
	act := sellado.Act{
		Code:        get("code"),
		Name:        get("name"),
		Description: get("description"),
	}
	if act.Code == "" || act.Name == "" {
		return act, fmt.Errorf("code and name are required")
	}
	if len(act.Code) == 1 {
		act.Code = "0" + act.Code
	}
	if act.Description == "" {
		act.Description = act.Name
	}

	var err error
	if act.UsesProduct, err = parseFlag(get("uses_product")); err != nil {
		return act, err
	}

	for _, d := range []struct {
		col string
		dst *decimal.Decimal
	}{
		{"iva1", &act.IVA1},
		{"iva2", &act.IVA2},
		{"stamp_duty_rate", &act.StampDutyRate},
		{"registration_right_rate", &act.RegistrationRightRate},
		{"bonus_default", &act.BonusDefault},
	} {
		if *d.dst, err = parseDecimal(d.col, get(d.col)); err != nil {
			return act, err
		}
	}

	if act.Offset1Default, err = parseOffset("offset1_default", get("offset1_default")); err != nil {
		return act, err
	}
	if act.Offset2Default, err = parseOffset("offset2_default", get("offset2_default")); err != nil {
		return act, err
	}
	return act, nil
}

func parseDecimal(col, v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.Replace(v, ",", ".", 1))
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q", col, v)
	}
	return d, nil
}

func parseOffset(col, v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid day count %q", col, v)
	}
	return n, nil
}

func parseFlag(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "", "n", "no":
		return false, nil
	case "s", "si", "x":
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("uses_product: invalid flag %q", v)
	}
	return b, nil
}
