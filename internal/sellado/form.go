package sellado

import (
	"fmt"
	"strconv"
)

// Form is the working set of one open stamp-duty entry. Totals are derived
// and must be refreshed with Recalculate after every input change.
type Form struct {
	Act            string   `json:"act"`
	ActCode        string   `json:"act_code"`
	Buyer          string   `json:"buyer"`
	Seller         string   `json:"seller"`
	ContractNumber string   `json:"contract_number"`
	Currency       string   `json:"currency"`
	Product        string   `json:"product"`
	NetWeight      string   `json:"net_weight"`
	UnitPrice      string   `json:"unit_price"`
	Observations   string   `json:"observations"`
	Amounts        Amounts  `json:"amounts"`
	Schedule       Schedule `json:"schedule"`
	Rates          Rates    `json:"rates"`
	Totals         Totals   `json:"-"`
}

// Rates carries the act percentages into the working set so that a form
// can be recalculated without a catalogue lookup.
type Rates struct {
	StampDutyRate         string `json:"stamp_duty_rate"`
	RegistrationRightRate string `json:"registration_right_rate"`
	UsesProduct           bool   `json:"uses_product"`
}

func (r Rates) stampRates() StampRates {
	return StampRates{
		StampDutyRate:         ParseAmount(r.StampDutyRate),
		RegistrationRightRate: ParseAmount(r.RegistrationRightRate),
	}
}

const (
	DefaultCurrency = "Pesos"
	zeroAmount      = "0.00"
)

// NewForm opens an empty working set for act.
func NewForm(today Date, act Act) Form {
	f := Form{
		ContractNumber: "0",
		Currency:       DefaultCurrency,
		Product:        NoProduct,
		Amounts:        zeroAmounts(),
		Schedule:       DefaultSchedule(today, act.Offset1Default, act.Offset2Default),
	}
	f.useAct(act)
	f.Recalculate()
	return f
}

// Recalculate refreshes Totals from the current inputs.
func (f *Form) Recalculate() {
	f.Totals = CalculateTotals(f.Amounts, f.Rates.stampRates())
}

// SelectAct switches the act, replacing rates and offsets with its defaults.
func (f *Form) SelectAct(today Date, act Act) {
	f.useAct(act)
	f.Schedule.ApplyAct(today, act)
	f.Recalculate()
}

// ApplyRates reloads the act label and percentages without touching any
// operator input. Submitted forms go through it so a client cannot bring
// its own rates.
func (f *Form) ApplyRates(act Act) {
	f.Act = act.Label()
	f.ActCode = act.Code
	f.Rates = Rates{
		StampDutyRate:         act.StampDutyRate.StringFixed(2),
		RegistrationRightRate: act.RegistrationRightRate.StringFixed(2),
		UsesProduct:           act.UsesProduct,
	}
	f.Recalculate()
}

func (f *Form) useAct(act Act) {
	f.ApplyRates(act)
	f.Amounts.IVA1 = act.IVA1.StringFixed(2)
	f.Amounts.IVA2 = act.IVA2.StringFixed(2)
	f.Amounts.Bonificacion = act.BonusDefault.StringFixed(2)
	if !act.UsesProduct {
		f.Product = NoProduct
	}
}

// CopyBaseToRegister copies the side-1 amounts onto side 2.
func (f *Form) CopyBaseToRegister() {
	f.Amounts.Operativo2 = f.Amounts.Operativo1
	f.Amounts.SumaFija2 = f.Amounts.SumaFija1
	f.Recalculate()
}

// ResetForNewEntry clears the per-contract inputs while keeping the act,
// the parties and the dates.
func (f *Form) ResetForNewEntry(act Act) {
	iva1, iva2 := f.Amounts.IVA1, f.Amounts.IVA2
	f.Amounts = zeroAmounts()
	f.Amounts.IVA1, f.Amounts.IVA2 = iva1, iva2
	f.Amounts.Bonificacion = act.BonusDefault.StringFixed(2)
	f.ContractNumber = "0"
	f.NetWeight = ""
	f.UnitPrice = ""
	f.Observations = ""
	if !act.UsesProduct {
		f.Product = NoProduct
	}
	f.Recalculate()
}

// SetField assigns one plain input by its JSON name.
func (f *Form) SetField(name, value string) error {
	switch name {
	case "buyer":
		f.Buyer = value
	case "seller":
		f.Seller = value
	case "contract_number":
		f.ContractNumber = value
	case "currency":
		f.Currency = value
	case "product":
		if !f.Rates.UsesProduct {
			return fmt.Errorf("act %s has no product selector", f.ActCode)
		}
		f.Product = value
	case "net_weight":
		f.NetWeight = value
	case "unit_price":
		f.UnitPrice = value
	case "observations":
		f.Observations = value
	case "operativo1":
		f.Amounts.Operativo1 = value
	case "operativo2":
		f.Amounts.Operativo2 = value
	case "suma_fija1":
		f.Amounts.SumaFija1 = value
	case "suma_fija2":
		f.Amounts.SumaFija2 = value
	case "iva1":
		f.Amounts.IVA1 = value
	case "iva2":
		f.Amounts.IVA2 = value
	case "bonificacion":
		f.Amounts.Bonificacion = value
	case "exclude_fixed_sum":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, name)
		}
		f.Amounts.ExcludeFixedSum = b
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	f.Recalculate()
	return nil
}

func (f Form) BuyerCUIT() string  { return PartyCUIT(f.Buyer) }
func (f Form) SellerCUIT() string { return PartyCUIT(f.Seller) }

func zeroAmounts() Amounts {
	return Amounts{
		Operativo1:   zeroAmount,
		Operativo2:   zeroAmount,
		SumaFija1:    zeroAmount,
		SumaFija2:    zeroAmount,
		IVA1:         zeroAmount,
		IVA2:         zeroAmount,
		Bonificacion: zeroAmount,
	}
}
