package sellado_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellos/internal/sellado"
)

var today = sellado.NewDate(2025, 2, 1)

func TestDaysBetween(t *testing.T) {
	jan1 := sellado.NewDate(2025, 1, 1)

	assert.Equal(t, 0, sellado.DaysBetween(jan1, jan1))
	assert.Equal(t, 15, sellado.DaysBetween(jan1, sellado.NewDate(2025, 1, 16)))
	assert.Equal(t, 59, sellado.DaysBetween(jan1, sellado.NewDate(2025, 3, 1)))
	assert.Equal(t, 0, sellado.DaysBetween(sellado.NewDate(2025, 1, 16), jan1))
	assert.Equal(t, -15, sellado.DaysSince(sellado.NewDate(2025, 1, 16), jan1))
}

func TestDate_AddMonthsOverflow(t *testing.T) {
	assert.Equal(t, "2025-03-03", sellado.NewDate(2025, 3, 31).AddMonths(-1).String())
	assert.Equal(t, "2024-03-02", sellado.NewDate(2024, 3, 31).AddMonths(-1).String())
	assert.Equal(t, "2025-01-01", sellado.NewDate(2025, 2, 1).AddMonths(-1).String())
}

func TestDate_JSON(t *testing.T) {
	raw, err := json.Marshal(sellado.NewDate(2025, 1, 16))
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-16"`, string(raw))

	var d sellado.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-02-28"`), &d))
	assert.True(t, d.Equal(sellado.NewDate(2025, 2, 28)))

	assert.Error(t, json.Unmarshal([]byte(`"28/02/2025"`), &d))
}

func TestDefaultSchedule(t *testing.T) {
	s := sellado.DefaultSchedule(today, 15, 15)

	assert.Equal(t, "2025-01-01", s.ControlDate.String())
	assert.Equal(t, "2025-01-16", s.IngressDate.String())
	assert.Equal(t, "2025-01-31", s.RegistrationDate.String())
	assert.False(t, s.Edited)
	assert.True(t, s.Consistent())
}

func TestDefaultSchedule_StopsAtToday(t *testing.T) {
	endOfMonth := sellado.NewDate(2025, 3, 31)

	s := sellado.DefaultSchedule(endOfMonth, 15, 15)

	assert.Equal(t, "2025-03-03", s.ControlDate.String())
	assert.Equal(t, "2025-03-18", s.IngressDate.String())
	assert.Equal(t, "2025-03-31", s.RegistrationDate.String())
	assert.Equal(t, 15, s.Offset1)
	assert.Equal(t, 13, s.Offset2)
	assert.True(t, s.Consistent())
	_, ok := s.InBounds(endOfMonth)
	assert.True(t, ok)
}

func TestDefaultSchedule_LongOffsets(t *testing.T) {
	s := sellado.DefaultSchedule(today, 40, 10)

	assert.Equal(t, "2025-02-01", s.IngressDate.String())
	assert.Equal(t, "2025-02-01", s.RegistrationDate.String())
	assert.Equal(t, 31, s.Offset1)
	assert.Equal(t, 0, s.Offset2)
	assert.True(t, s.Consistent())
}

func TestSchedule_InBounds(t *testing.T) {
	d := func(s string) sellado.Date {
		v, err := sellado.ParseDate(s)
		require.NoError(t, err)
		return v
	}
	schedule := func(control, ingress, registration string) sellado.Schedule {
		s := sellado.Schedule{ControlDate: d(control), IngressDate: d(ingress), RegistrationDate: d(registration)}
		s.Offset1 = sellado.DaysSince(s.ControlDate, s.IngressDate)
		s.Offset2 = sellado.DaysSince(s.IngressDate, s.RegistrationDate)
		return s
	}

	tests := []struct {
		name     string
		schedule sellado.Schedule
		field    sellado.DateField
		ok       bool
	}{
		{"default", sellado.DefaultSchedule(today, 15, 15), "", true},
		{"all on today", schedule("2025-02-01", "2025-02-01", "2025-02-01"), "", true},
		{"future dates", schedule("2031-01-01", "2031-01-16", "2031-01-31"), sellado.ControlDate, false},
		{"years back", schedule("2019-01-01", "2019-01-16", "2019-01-31"), sellado.ControlDate, false},
		{"zero dates", sellado.Schedule{}, sellado.ControlDate, false},
		{"ingress before its window", schedule("2024-12-20", "2024-12-28", "2025-01-20"), sellado.IngressDate, false},
		{"ingress before control", schedule("2025-01-20", "2025-01-10", "2025-01-25"), sellado.IngressDate, false},
		{"registration before ingress", schedule("2025-01-01", "2025-01-20", "2025-01-10"), sellado.RegistrationDate, false},
		{"registration after today", schedule("2025-01-01", "2025-01-16", "2025-02-05"), sellado.RegistrationDate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := tt.schedule.InBounds(today)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestSetDate_UnchangedControlKeepsIngress(t *testing.T) {
	s := sellado.DefaultSchedule(today, 15, 15)

	s.SetDate(today, sellado.ControlDate, sellado.NewDate(2025, 1, 1))

	assert.Equal(t, "2025-01-16", s.IngressDate.String())
	assert.Equal(t, 15, s.Offset1)
	assert.True(t, s.Edited)
}

func TestSetDate_ClampsToToday(t *testing.T) {
	s := sellado.DefaultSchedule(today, 15, 15)

	s.SetDate(today, sellado.ControlDate, today.AddDays(5))

	assert.True(t, s.ControlDate.Equal(today))
	assert.True(t, s.Consistent())
}

func TestSetDate_ClampsToWindowFloor(t *testing.T) {
	s := sellado.DefaultSchedule(today, 15, 15)

	s.SetDate(today, sellado.ControlDate, today.AddDays(-400))
	assert.Equal(t, "2024-12-03", s.ControlDate.String())
	assert.Equal(t, 44, s.Offset1)

	s.SetDate(today, sellado.IngressDate, today.AddDays(-400))
	assert.Equal(t, "2025-01-01", s.IngressDate.String())
	assert.Equal(t, 29, s.Offset1)
	assert.Equal(t, 30, s.Offset2)
}

func TestSetDate_IngressRecomputesBothOffsets(t *testing.T) {
	s := sellado.DefaultSchedule(today, 15, 15)

	s.SetDate(today, sellado.IngressDate, sellado.NewDate(2025, 1, 20))

	assert.Equal(t, 19, s.Offset1)
	assert.Equal(t, 11, s.Offset2)
	assert.True(t, s.Consistent())
}

func TestSetDate_DragsNeighbours(t *testing.T) {
	s := sellado.DefaultSchedule(today, 15, 15)

	s.SetDate(today, sellado.IngressDate, sellado.NewDate(2025, 2, 1))
	assert.Equal(t, "2025-02-01", s.RegistrationDate.String())
	assert.Equal(t, 0, s.Offset2)

	s.SetDate(today, sellado.ControlDate, sellado.NewDate(2025, 2, 1))
	assert.Equal(t, 0, s.Offset1)
	assert.True(t, s.Consistent())
}

func TestSetOffset(t *testing.T) {
	tests := []struct {
		name         string
		field        sellado.OffsetField
		value        int
		ingress      string
		registration string
		offset1      int
		offset2      int
	}{
		{"offset1 within window", sellado.Offset1, 10, "2025-01-11", "2025-01-31", 10, 20},
		{"offset1 clamped to today", sellado.Offset1, 100, "2025-02-01", "2025-02-01", 31, 0},
		{"negative offset1 reads as zero", sellado.Offset1, -4, "2025-01-01", "2025-01-31", 0, 30},
		{"offset2 within window", sellado.Offset2, 10, "2025-01-16", "2025-01-26", 15, 10},
		{"offset2 clamped to window floor", sellado.Offset2, 5, "2025-01-16", "2025-01-27", 15, 11},
		{"offset2 clamped to today", sellado.Offset2, 40, "2025-01-16", "2025-02-01", 15, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sellado.DefaultSchedule(today, 15, 15)

			s.SetOffset(today, tt.field, tt.value)

			assert.Equal(t, tt.ingress, s.IngressDate.String())
			assert.Equal(t, tt.registration, s.RegistrationDate.String())
			assert.Equal(t, tt.offset1, s.Offset1)
			assert.Equal(t, tt.offset2, s.Offset2)
			assert.True(t, s.Consistent())
		})
	}
}

func TestSchedule_OffsetInvariantHoldsAcrossEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dates := []sellado.DateField{sellado.ControlDate, sellado.IngressDate, sellado.RegistrationDate}
	offsets := []sellado.OffsetField{sellado.Offset1, sellado.Offset2}

	s := sellado.DefaultSchedule(today, 15, 15)
	for i := 0; i < 2000; i++ {
		if rng.Intn(2) == 0 {
			s.SetDate(today, dates[rng.Intn(len(dates))], today.AddDays(rng.Intn(160)-120))
		} else {
			s.SetOffset(today, offsets[rng.Intn(len(offsets))], rng.Intn(80)-10)
		}
		require.True(t, s.Consistent(), "step %d: %+v", i, s)
		require.False(t, s.ControlDate.After(today))
		require.False(t, s.RegistrationDate.After(today))
		_, ok := s.InBounds(today)
		require.True(t, ok, "step %d: %+v", i, s)
	}
}

func TestApplyAct(t *testing.T) {
	act := sellado.FallbackAct()
	act.Offset1Default = 5
	act.Offset2Default = 7

	t.Run("untouched dates are rebuilt", func(t *testing.T) {
		s := sellado.DefaultSchedule(today, 15, 15)
		s.ApplyAct(today, act)

		assert.Equal(t, "2025-01-01", s.ControlDate.String())
		assert.Equal(t, "2025-01-06", s.IngressDate.String())
		assert.Equal(t, "2025-01-13", s.RegistrationDate.String())
		assert.True(t, s.Consistent())
	})

	t.Run("edited dates are kept", func(t *testing.T) {
		s := sellado.DefaultSchedule(today, 15, 15)
		s.SetDate(today, sellado.IngressDate, sellado.NewDate(2025, 1, 20))
		s.ApplyAct(today, act)

		assert.Equal(t, "2025-01-20", s.IngressDate.String())
		assert.Equal(t, 5, s.Offset1)
		assert.Equal(t, 7, s.Offset2)
		assert.False(t, s.Consistent())
		_, ok := s.InBounds(today)
		assert.True(t, ok)
	})
}

func TestLimits(t *testing.T) {
	l := sellado.Limits(today, 15)

	assert.Equal(t, "2024-12-03", l.Control.Min.String())
	assert.Equal(t, "2025-01-01", l.Ingress.Min.String())
	assert.Equal(t, "2025-01-17", l.Registration.Min.String())
	assert.True(t, l.Registration.Max.Equal(today))
}
