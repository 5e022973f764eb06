package sellado

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	DateLayout = "2006-01-02"
	dayMillis  = 86400000
)

// Date is a calendar day. The wall clock part is always UTC midnight.
type Date struct {
	time.Time
}

// NewDate builds a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// AddMonths shifts by calendar months. Day overflow rolls into the next
// month, so March 31 minus one month is March 3 (or 2 in leap years).
func (d Date) AddMonths(n int) Date {
	return Date{d.Time.AddDate(0, n, 0)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysBetween is the whole-day gap from start to end, rounded up and never
// negative.
func DaysBetween(start, end Date) int {
	ms := end.Sub(start.Time).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(math.Ceil(float64(ms) / dayMillis))
}

// DaysSince is the signed whole-day difference end - start.
func DaysSince(start, end Date) int {
	return int(math.Round(end.Sub(start.Time).Hours() / 24))
}

// clampDate snaps v into [lo, hi]. When the window is empty the upper bound wins.
func clampDate(v, lo, hi Date) Date {
	if v.After(hi) {
		return hi
	}
	if v.Before(lo) {
		if lo.After(hi) {
			return hi
		}
		return lo
	}
	return v
}
