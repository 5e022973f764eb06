package sellado

import "fmt"

// Condition identifies one rule of the submit gate.
type Condition string

const (
	CondDistinctParties    Condition = "distinct_parties"
	CondIngressOffset      Condition = "ingress_offset"
	CondRegistrationOffset Condition = "registration_offset"
	CondContractNumber     Condition = "contract_number"
	CondTotalPositive      Condition = "total_positive"
	CondStampDutyPositive  Condition = "stamp_duty_positive"
	CondRegistrationRight  Condition = "registration_right_positive"
	CondDatesInBounds      Condition = "dates_in_bounds"
)

// Check is the outcome of one condition.
type Check struct {
	Condition Condition `json:"condition"`
	Passed    bool      `json:"passed"`
	Message   string    `json:"message"`
}

// Report lists every condition in a fixed order.
type Report struct {
	Checks []Check `json:"checks"`
}

// Valid is the single submit gate: every condition must pass.
func (r Report) Valid() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Failed returns the checks that did not pass.
func (r Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// Validate evaluates the submit gate against f. Totals are taken as they
// are, so callers recalculate first.
func Validate(f Form) Report {
	s := f.Schedule
	ingressGap := DaysSince(s.ControlDate, s.IngressDate)
	registrationGap := DaysSince(s.IngressDate, s.RegistrationDate)
	contract := ParseInt(f.ContractNumber)
	t := f.Totals

	return Report{Checks: []Check{
		check(CondDistinctParties, f.Buyer != f.Seller,
			"buyer and seller must be different parties"),
		check(CondIngressOffset, ingressGap == s.Offset1,
			fmt.Sprintf("ingress date is %d days after control date, offset1 is %d", ingressGap, s.Offset1)),
		check(CondRegistrationOffset, registrationGap == s.Offset2,
			fmt.Sprintf("registration date is %d days after ingress date, offset2 is %d", registrationGap, s.Offset2)),
		check(CondContractNumber, contract > 0,
			fmt.Sprintf("contract number must be greater than 0, got %d", contract)),
		check(CondTotalPositive, t.TotalSellado.IsPositive(),
			fmt.Sprintf("total stamp duty must be greater than 0, got %s", t.TotalSellado.StringFixed(2))),
		check(CondStampDutyPositive, t.ImporteSellado.IsPositive(),
			fmt.Sprintf("stamp duty amount must be greater than 0, got %s", t.ImporteSellado.StringFixed(2))),
		check(CondRegistrationRight, t.DerechoReg.IsPositive(),
			fmt.Sprintf("registration right must be greater than 0, got %s", t.DerechoReg.StringFixed(2))),
	}}
}

// ValidateAt is Validate plus the date bounds relative to today. A schedule
// built through SetDate and SetOffset always passes; one submitted from
// outside the engine may not.
func ValidateAt(today Date, f Form) Report {
	r := Validate(f)
	field, ok := f.Schedule.InBounds(today)
	r.Checks = append(r.Checks, check(CondDatesInBounds, ok,
		fmt.Sprintf("%s is outside its allowed range for %s", field, today)))
	return r
}

func check(c Condition, passed bool, msg string) Check {
	if passed {
		msg = ""
	}
	return Check{Condition: c, Passed: passed, Message: msg}
}
