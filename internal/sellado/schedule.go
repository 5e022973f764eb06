package sellado

import "fmt"

// DateField names one of the three schedule dates.
type DateField string

const (
	ControlDate      DateField = "control_date"
	IngressDate      DateField = "ingress_date"
	RegistrationDate DateField = "registration_date"
)

// OffsetField names one of the two day offsets.
type OffsetField string

const (
	Offset1 OffsetField = "offset1"
	Offset2 OffsetField = "offset2"
)

const controlWindowDays = 60

func ParseDateField(s string) (DateField, error) {
	switch f := DateField(s); f {
	case ControlDate, IngressDate, RegistrationDate:
		return f, nil
	}
	return "", fmt.Errorf("unknown date field %q", s)
}

func ParseOffsetField(s string) (OffsetField, error) {
	switch f := OffsetField(s); f {
	case Offset1, Offset2:
		return f, nil
	}
	return "", fmt.Errorf("unknown offset field %q", s)
}

// Schedule keeps three dates consistent with two day offsets:
// Ingress - Control == Offset1 and Registration - Ingress == Offset2.
type Schedule struct {
	ControlDate      Date `json:"control_date"`
	IngressDate      Date `json:"ingress_date"`
	RegistrationDate Date `json:"registration_date"`
	Offset1          int  `json:"offset1"`
	Offset2          int  `json:"offset2"`
	// Edited is set once the operator touches a date or offset. Until then
	// selecting another act may rebuild the dates.
	Edited bool `json:"edited"`
}

// Window is an inclusive date range.
type Window struct {
	Min Date `json:"min"`
	Max Date `json:"max"`
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d Date) bool {
	return !d.Before(w.Min) && !d.After(w.Max)
}

// Windows are the allowed ranges for each date.
type Windows struct {
	Control      Window `json:"control_date"`
	Ingress      Window `json:"ingress_date"`
	Registration Window `json:"registration_date"`
}

// Limits computes the fixed windows relative to today.
func Limits(today Date, offset2 int) Windows {
	if offset2 < 0 {
		offset2 = 0
	}
	return Windows{
		Control:      Window{Min: today.AddDays(-controlWindowDays), Max: today},
		Ingress:      Window{Min: today.AddMonths(-1), Max: today},
		Registration: Window{Min: today.AddDays(-offset2), Max: today},
	}
}

// DefaultSchedule starts the control date one month back and lays the
// other two dates out with the given offsets. Dates that would land after
// today stop at today and their offsets are re-derived.
func DefaultSchedule(today Date, offset1, offset2 int) Schedule {
	control := today.AddMonths(-1)
	ingress := clampDate(control.AddDays(nonNegative(offset1)), control, today)
	s := Schedule{
		ControlDate:      control,
		IngressDate:      ingress,
		RegistrationDate: clampDate(ingress.AddDays(nonNegative(offset2)), ingress, today),
	}
	s.rederive()
	return s
}

// SetDate clamps v into the field's window, keeps the three dates in order
// and re-derives the adjacent offsets.
func (s *Schedule) SetDate(today Date, which DateField, v Date) {
	limits := Limits(today, s.Offset2)
	switch which {
	case ControlDate:
		s.ControlDate = clampDate(v, limits.Control.Min, limits.Control.Max)
	case IngressDate:
		s.IngressDate = clampDate(v, limits.Ingress.Min, limits.Ingress.Max)
	case RegistrationDate:
		s.RegistrationDate = clampDate(v, limits.Registration.Min, limits.Registration.Max)
	default:
		return
	}
	s.Edited = true
	s.order(which)
	s.rederive()
}

// SetOffset moves the date anchored on the offset. When the candidate date
// falls outside its window the clamped date wins and the offset is
// re-derived from it.
func (s *Schedule) SetOffset(today Date, which OffsetField, n int) {
	n = nonNegative(n)
	switch which {
	case Offset1:
		limits := Limits(today, s.Offset2)
		s.IngressDate = clampDate(s.ControlDate.AddDays(n), limits.Ingress.Min, limits.Ingress.Max)
		s.order(IngressDate)
	case Offset2:
		limits := Limits(today, n)
		s.RegistrationDate = clampDate(s.IngressDate.AddDays(n), limits.Registration.Min, limits.Registration.Max)
		s.order(RegistrationDate)
	default:
		return
	}
	s.Edited = true
	s.rederive()
}

// ApplyAct replaces the offsets with the act defaults. Dates are rebuilt
// only while the operator has not edited them; on an edited schedule the
// gate reports the offset mismatch until a date or offset is set again.
func (s *Schedule) ApplyAct(today Date, act Act) {
	if !s.Edited {
		*s = DefaultSchedule(today, act.Offset1Default, act.Offset2Default)
		return
	}
	s.Offset1 = nonNegative(act.Offset1Default)
	s.Offset2 = nonNegative(act.Offset2Default)
}

// Consistent reports whether the offsets match the actual day gaps.
func (s Schedule) Consistent() bool {
	return DaysSince(s.ControlDate, s.IngressDate) == s.Offset1 &&
		DaysSince(s.IngressDate, s.RegistrationDate) == s.Offset2
}

// InBounds reports the first date a stored schedule may not carry. Control
// and ingress must sit inside their windows and the dates must run in order
// up to today.
func (s Schedule) InBounds(today Date) (field DateField, ok bool) {
	limits := Limits(today, s.Offset2)
	switch {
	case !limits.Control.Contains(s.ControlDate):
		return ControlDate, false
	case !limits.Ingress.Contains(s.IngressDate) || s.IngressDate.Before(s.ControlDate):
		return IngressDate, false
	case s.RegistrationDate.Before(s.IngressDate) || s.RegistrationDate.After(today):
		return RegistrationDate, false
	}
	return "", true
}

// order drags neighbours so that control <= ingress <= registration,
// treating the edited field as fixed.
func (s *Schedule) order(edited DateField) {
	switch edited {
	case ControlDate:
		if s.IngressDate.Before(s.ControlDate) {
			s.IngressDate = s.ControlDate
		}
		if s.RegistrationDate.Before(s.IngressDate) {
			s.RegistrationDate = s.IngressDate
		}
	case IngressDate:
		if s.ControlDate.After(s.IngressDate) {
			s.ControlDate = s.IngressDate
		}
		if s.RegistrationDate.Before(s.IngressDate) {
			s.RegistrationDate = s.IngressDate
		}
	case RegistrationDate:
		if s.IngressDate.After(s.RegistrationDate) {
			s.IngressDate = s.RegistrationDate
		}
		if s.ControlDate.After(s.IngressDate) {
			s.ControlDate = s.IngressDate
		}
	}
}

func (s *Schedule) rederive() {
	s.Offset1 = DaysBetween(s.ControlDate, s.IngressDate)
	s.Offset2 = DaysBetween(s.IngressDate, s.RegistrationDate)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
