package sellado

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	NoProduct   = "Ninguno"
	DefaultCUIT = "33711316839"
)

// Act is the contract-type configuration that supplies rates and default
// day offsets.
type Act struct {
	Code                  string          `json:"code"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	UsesProduct           bool            `json:"uses_product"`
	IVA1                  decimal.Decimal `json:"iva1"`
	IVA2                  decimal.Decimal `json:"iva2"`
	StampDutyRate         decimal.Decimal `json:"stamp_duty_rate"`
	RegistrationRightRate decimal.Decimal `json:"registration_right_rate"`
	BonusDefault          decimal.Decimal `json:"bonus_default"`
	Offset1Default        int             `json:"offset1_default"`
	Offset2Default        int             `json:"offset2_default"`
}

// Label is the selector text, e.g. "Agenda | 01".
func (a Act) Label() string {
	return a.Name + " | " + a.Code
}

// RatesSummary is stored alongside every record so the rates in force can be
// read back without the catalogue.
func (a Act) RatesSummary() string {
	return "DerReg " + a.RegistrationRightRate.StringFixed(2) +
		" // IVA1 " + a.IVA1.StringFixed(2) +
		" // IVA2 " + a.IVA2.StringFixed(2)
}

// FallbackAct is used when no catalogue is available.
func FallbackAct() Act {
	return Act{
		Code:                  "01",
		Name:                  "Agenda",
		Description:           "Agenda",
		IVA1:                  decimal.RequireFromString("10.50"),
		IVA2:                  decimal.RequireFromString("10.50"),
		StampDutyRate:         decimal.RequireFromString("1.05"),
		RegistrationRightRate: decimal.RequireFromString("0.25"),
		BonusDefault:          decimal.Zero,
		Offset1Default:        15,
		Offset2Default:        15,
	}
}

// SplitLabel separates "NAME | CODE" selector strings. A string without a
// separator yields itself as name and an empty code.
func SplitLabel(label string) (name, code string) {
	parts := strings.SplitN(label, " | ", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// PartyCUIT extracts the CUIT from a "RAZON SOCIAL | CUIT" party selection.
func PartyCUIT(selection string) string {
	_, cuit := SplitLabel(selection)
	if cuit == "" {
		return DefaultCUIT
	}
	return cuit
}
