package period_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-app/kakeibo/internal/period"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newCalc(t *testing.T, cutover, threshold int) *period.Calculator {
	t.Helper()

	c, err := period.NewCalculator(period.Config{
		CutoverDay:      cutover,
		NextMonthMinDay: threshold,
		MinYear:         2019,
		MaxYear:         2100,
	})
	require.NoError(t, err)

	return c
}

func TestNewCalculator(t *testing.T) {
	type testCase struct {
		name    string
		cfg     period.Config
		wantErr bool
	}

	tests := []testCase{
		{
			name: "CalendarMonths",
			cfg:  period.Config{CutoverDay: 1, NextMonthMinDay: 16, MinYear: 2019, MaxYear: 2100},
		},
		{
			name: "LateCutover",
			cfg:  period.Config{CutoverDay: 28, NextMonthMinDay: 16, MinYear: 2019, MaxYear: 2100},
		},
		{
			name:    "CutoverDayZero",
			cfg:     period.Config{CutoverDay: 0, NextMonthMinDay: 16, MinYear: 2019, MaxYear: 2100},
			wantErr: true,
		},
		{
			name:    "CutoverDayMissingFromFebruary",
			cfg:     period.Config{CutoverDay: 29, NextMonthMinDay: 16, MinYear: 2019, MaxYear: 2100},
			wantErr: true,
		},
		{
			name:    "CutoverDayMissingFromShortMonths",
			cfg:     period.Config{CutoverDay: 31, NextMonthMinDay: 16, MinYear: 2019, MaxYear: 2100},
			wantErr: true,
		},
		{
			name:    "CutoverDayTooLarge",
			cfg:     period.Config{CutoverDay: 32, NextMonthMinDay: 16, MinYear: 2019, MaxYear: 2100},
			wantErr: true,
		},
		{
			name:    "InvertedYearRange",
			cfg:     period.Config{CutoverDay: 1, NextMonthMinDay: 16, MinYear: 2100, MaxYear: 2019},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := period.NewCalculator(tt.cfg)

			if tt.wantErr {
				assert.ErrorIs(t, err, period.ErrInvalidPeriod)
				assert.Nil(t, c)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestCalculator_FirstAndLastDate(t *testing.T) {
	type testCase struct {
		name                 string
		cutover, threshold   int
		year, month          int
		wantFirst, wantLast  time.Time
		wantErr              bool
	}

	tests := []testCase{
		{
			name:    "LateCutoverStartsPreviousMonth",
			cutover: 28, threshold: 16,
			year: 2019, month: 3,
			wantFirst: date(2019, 2, 28),
			wantLast:  date(2019, 3, 27),
		},
		{
			name:    "LateCutoverAcrossYearBoundary",
			cutover: 28, threshold: 16,
			year: 2020, month: 1,
			wantFirst: date(2019, 12, 28),
			wantLast:  date(2020, 1, 27),
		},
		{
			name:    "EarlyCutoverStaysInMonth",
			cutover: 5, threshold: 16,
			year: 2019, month: 3,
			wantFirst: date(2019, 3, 5),
			wantLast:  date(2019, 4, 4),
		},
		{
			name:    "CalendarMonth",
			cutover: 1, threshold: 16,
			year: 2024, month: 6,
			wantFirst: date(2024, 6, 1),
			wantLast:  date(2024, 6, 30),
		},
		{
			name:    "CalendarMonthFebruaryLeapYear",
			cutover: 1, threshold: 16,
			year: 2024, month: 2,
			wantFirst: date(2024, 2, 1),
			wantLast:  date(2024, 2, 29),
		},
		{
			name:    "YearBelowRange",
			cutover: 1, threshold: 16,
			year: 2018, month: 6,
			wantErr: true,
		},
		{
			name:    "MonthOutOfRange",
			cutover: 1, threshold: 16,
			year: 2024, month: 13,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalc(t, tt.cutover, tt.threshold)

			first, last, err := c.FirstAndLastDate(tt.year, tt.month)

			if tt.wantErr {
				assert.ErrorIs(t, err, period.ErrInvalidPeriod)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

// Consecutive periods must tile the calendar: each period ends exactly one
// day before the next one starts, for any cutover configuration.
func TestCalculator_PeriodsNeverOverlapOrGap(t *testing.T) {
	for cutover := 1; cutover <= period.MaxTemplateDay; cutover++ {
		t.Run(fmt.Sprintf("Cutover%d", cutover), func(t *testing.T) {
			c := newCalc(t, cutover, 16)

			for year := 2019; year <= 2022; year++ {
				for month := 1; month <= 12; month++ {
					first, last, err := c.FirstAndLastDate(year, month)
					require.NoError(t, err)

					assert.Equal(t, first.AddDate(0, 1, -1), last)

					nextYear, nextMonth := period.AddMonths(year, month, 1)

					nextFirst, _, err := c.FirstAndLastDate(nextYear, nextMonth)
					require.NoError(t, err)

					assert.Equal(t, last.AddDate(0, 0, 1), nextFirst,
						"period %d/%d must end one day before %d/%d starts", year, month, nextYear, nextMonth)
				}
			}
		})
	}
}

func TestCalculator_PayAndPeriodDate(t *testing.T) {
	periodDay := func(d int) *int { return &d }

	type testCase struct {
		name               string
		cutover, threshold int
		year, month        int
		payDay             int
		periodDay          *int
		wantPay            time.Time
		wantPeriod         *time.Time
		wantErr            bool
	}

	wantPeriodDate := date(2019, 2, 28)

	tests := []testCase{
		{
			name:    "LateCutoverDayBelowCutoverUnshifted",
			cutover: 28, threshold: 16,
			year: 2019, month: 3,
			payDay:  27,
			wantPay: date(2019, 3, 27),
		},
		{
			name:    "LateCutoverDayAtCutoverShiftsBack",
			cutover: 28, threshold: 16,
			year: 2019, month: 3,
			payDay:  28,
			wantPay: date(2019, 2, 28),
		},
		{
			name:    "EarlyCutoverDayBeforeCutoverShiftsForward",
			cutover: 5, threshold: 16,
			year: 2019, month: 3,
			payDay:  3,
			wantPay: date(2019, 4, 3),
		},
		{
			name:    "EarlyCutoverDayAtCutoverUnshifted",
			cutover: 5, threshold: 16,
			year: 2019, month: 3,
			payDay:  5,
			wantPay: date(2019, 3, 5),
		},
		{
			name:    "CalendarMonthNeverShifts",
			cutover: 1, threshold: 16,
			year: 2024, month: 6,
			payDay:  15,
			wantPay: date(2024, 6, 15),
		},
		{
			name:    "PeriodDayShiftsIndependently",
			cutover: 28, threshold: 16,
			year: 2019, month: 3,
			payDay:    10,
			periodDay: periodDay(28),
			wantPay:   date(2019, 3, 10),
			wantPeriod: &wantPeriodDate,
		},
		{
			name:    "PayDayAboveTemplateMax",
			cutover: 1, threshold: 16,
			year: 2024, month: 6,
			payDay:  29,
			wantErr: true,
		},
		{
			name:    "PayDayZero",
			cutover: 1, threshold: 16,
			year: 2024, month: 6,
			payDay:  0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalc(t, tt.cutover, tt.threshold)

			pay, per, err := c.PayAndPeriodDate(tt.year, tt.month, tt.payDay, tt.periodDay)

			if tt.wantErr {
				assert.ErrorIs(t, err, period.ErrInvalidPeriod)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPay, pay)

			if tt.wantPeriod == nil {
				assert.Nil(t, per)
			} else {
				require.NotNil(t, per)
				assert.Equal(t, *tt.wantPeriod, *per)
			}
		})
	}
}

// The materialized pay date must always land inside the period it was
// materialized for.
func TestCalculator_PayDateInsidePeriod(t *testing.T) {
	configs := []struct {
		name               string
		cutover, threshold int
	}{
		{"Calendar", 1, 16},
		{"EarlyCutover", 10, 16},
		{"LateCutover", 28, 16},
	}

	for _, cfg := range configs {
		t.Run(cfg.name, func(t *testing.T) {
			c := newCalc(t, cfg.cutover, cfg.threshold)

			for month := 1; month <= 12; month++ {
				first, last, err := c.FirstAndLastDate(2021, month)
				require.NoError(t, err)

				for day := 1; day <= period.MaxTemplateDay; day++ {
					pay, _, err := c.PayAndPeriodDate(2021, month, day, nil)
					require.NoError(t, err)

					assert.False(t, pay.Before(first), "2021/%d day %d: %s before %s", month, day, pay, first)
					assert.False(t, pay.After(last), "2021/%d day %d: %s after %s", month, day, pay, last)
				}
			}
		})
	}
}

func TestCalculator_Resolve(t *testing.T) {
	type testCase struct {
		name               string
		cutover, threshold int
		today              time.Time
		wantYear, wantMonth int
	}

	tests := []testCase{
		{
			name:    "CalendarMidMonth",
			cutover: 1, threshold: 16,
			today:    date(2024, 6, 15),
			wantYear: 2024, wantMonth: 6,
		},
		{
			name:    "LateCutoverBeforeCutover",
			cutover: 28, threshold: 16,
			today:    date(2019, 3, 27),
			wantYear: 2019, wantMonth: 3,
		},
		{
			name:    "LateCutoverAtCutoverBelongsToNextPeriod",
			cutover: 28, threshold: 16,
			today:    date(2019, 2, 28),
			wantYear: 2019, wantMonth: 3,
		},
		{
			name:    "LateCutoverDecemberRollsIntoNextYear",
			cutover: 28, threshold: 16,
			today:    date(2019, 12, 28),
			wantYear: 2020, wantMonth: 1,
		},
		{
			name:    "EarlyCutoverBeforeCutoverBelongsToPreviousPeriod",
			cutover: 5, threshold: 16,
			today:    date(2019, 3, 3),
			wantYear: 2019, wantMonth: 2,
		},
		{
			name:    "EarlyCutoverJanuaryRollsIntoPreviousYear",
			cutover: 5, threshold: 16,
			today:    date(2020, 1, 2),
			wantYear: 2019, wantMonth: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalc(t, tt.cutover, tt.threshold)

			year, month := c.Resolve(tt.today)

			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

// Resolve and FirstAndLastDate must agree: every day inside a period's
// bounds resolves back to that period.
func TestCalculator_ResolveRoundTrip(t *testing.T) {
	c := newCalc(t, 28, 16)

	for month := 1; month <= 12; month++ {
		first, last, err := c.FirstAndLastDate(2021, month)
		require.NoError(t, err)

		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			year, m := c.Resolve(d)
			assert.Equal(t, 2021, year, "date %s", d)
			assert.Equal(t, month, m, "date %s", d)
		}
	}
}

func TestAddMonths(t *testing.T) {
	type testCase struct {
		name                string
		year, month, n      int
		wantYear, wantMonth int
	}

	tests := []testCase{
		{"Forward", 2024, 6, 1, 2024, 7},
		{"Backward", 2024, 6, -1, 2024, 5},
		{"ForwardAcrossYear", 2024, 12, 1, 2025, 1},
		{"BackwardAcrossYear", 2024, 1, -1, 2023, 12},
		{"Zero", 2024, 6, 0, 2024, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := period.AddMonths(tt.year, tt.month, tt.n)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestIndex(t *testing.T) {
	assert.Less(t, period.Index(2024, 12), period.Index(2025, 1))
	assert.Equal(t, period.Index(2024, 6)-1, period.Index(2024, 5))
}
