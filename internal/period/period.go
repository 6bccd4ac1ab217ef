// Package period maps calendar dates to fiscal accounting periods.
//
// A fiscal period (year, month) does not have to coincide with the calendar
// month: the household's books can cut over on an arbitrary day. When the
// cutover day is late in the month (at or past NextMonthMinDay), the period
// labelled (year, month) starts on the cutover day of the *previous* calendar
// month; otherwise it starts on the cutover day of the same month.
//
//	CutoverDay=28, NextMonthMinDay=16:
//	    2019/03 runs 2019-02-28 .. 2019-03-27
//	CutoverDay=5, NextMonthMinDay=16:
//	    2019/03 runs 2019-03-05 .. 2019-04-04
package period

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod reports a year/month outside the configured range or a
// day-of-month a template is not allowed to use.
var ErrInvalidPeriod = errors.New("invalid period")

// MaxTemplateDay is the largest day-of-month recurring templates and the
// cutover may use. Days 29-31 are rejected so month arithmetic never
// overflows into the next month and periods keep tiling the calendar.
const MaxTemplateDay = 28

// Config holds the cutover rule and the supported year range.
type Config struct {
	// CutoverDay is the day-of-month a new fiscal period begins on.
	// Must be 1-28 so the day exists in every calendar month.
	CutoverDay int
	// NextMonthMinDay is the smallest CutoverDay for which the cutover is
	// attributed to the previous calendar month.
	NextMonthMinDay int
	MinYear         int
	MaxYear         int
}

// Calculator derives fiscal period boundaries from a Config. It is pure and
// safe for concurrent use.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) (*Calculator, error) {
	if cfg.CutoverDay < 1 || cfg.CutoverDay > MaxTemplateDay {
		return nil, fmt.Errorf("cutover day %d out of range: %w", cfg.CutoverDay, ErrInvalidPeriod)
	}

	if cfg.MinYear > cfg.MaxYear {
		return nil, fmt.Errorf("year range %d-%d: %w", cfg.MinYear, cfg.MaxYear, ErrInvalidPeriod)
	}

	return &Calculator{cfg: cfg}, nil
}

// startsPrevMonth reports whether the period's first day falls in the
// calendar month before the period's label.
func (c *Calculator) startsPrevMonth() bool {
	return c.cfg.CutoverDay >= c.cfg.NextMonthMinDay
}

// Validate checks that (year, month) names a supported fiscal period.
func (c *Calculator) Validate(year, month int) error {
	if year < c.cfg.MinYear || year > c.cfg.MaxYear {
		return fmt.Errorf("year %d outside %d-%d: %w", year, c.cfg.MinYear, c.cfg.MaxYear, ErrInvalidPeriod)
	}

	if month < 1 || month > 12 {
		return fmt.Errorf("month %d: %w", month, ErrInvalidPeriod)
	}

	return nil
}

// FirstAndLastDate returns the inclusive date bounds of the fiscal period
// (year, month). The last date is always one day before the first date
// shifted forward one month, so consecutive periods never overlap or gap.
func (c *Calculator) FirstAndLastDate(year, month int) (time.Time, time.Time, error) {
	if err := c.Validate(year, month); err != nil {
		return time.Time{}, time.Time{}, err
	}

	first := time.Date(year, time.Month(month), c.cfg.CutoverDay, 0, 0, 0, 0, time.UTC)
	if c.startsPrevMonth() {
		first = first.AddDate(0, -1, 0)
	}

	last := first.AddDate(0, 1, -1)

	return first, last, nil
}

// PayAndPeriodDate maps a template's nominal pay day (and optional billing
// period day) onto concrete dates inside the fiscal period (year, month).
// The day is shifted one calendar month backward or forward when it would
// otherwise land outside the period bounds. Days must be 1-28.
func (c *Calculator) PayAndPeriodDate(year, month, payDay int, periodDay *int) (time.Time, *time.Time, error) {
	if err := c.Validate(year, month); err != nil {
		return time.Time{}, nil, err
	}

	payDate, err := c.templateDate(year, month, payDay)
	if err != nil {
		return time.Time{}, nil, err
	}

	if periodDay == nil {
		return payDate, nil, nil
	}

	periodDate, err := c.templateDate(year, month, *periodDay)
	if err != nil {
		return time.Time{}, nil, err
	}

	return payDate, &periodDate, nil
}

func (c *Calculator) templateDate(year, month, day int) (time.Time, error) {
	if day < 1 || day > MaxTemplateDay {
		return time.Time{}, fmt.Errorf("template day %d: %w", day, ErrInvalidPeriod)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	if c.startsPrevMonth() {
		// Period (y, m) starts in month m-1, so days at or past the
		// cutover belong to the previous calendar month.
		if day >= c.cfg.CutoverDay {
			d = d.AddDate(0, -1, 0)
		}
	} else {
		// Period (y, m) runs into month m+1, so days before the
		// cutover belong to the next calendar month.
		if day < c.cfg.CutoverDay {
			d = d.AddDate(0, 1, 0)
		}
	}

	return d, nil
}

// Resolve returns the fiscal (year, month) containing the given date, under
// the same cutover rule FirstAndLastDate uses.
func (c *Calculator) Resolve(date time.Time) (int, int) {
	year, month, day := date.Date()

	m := int(month)

	if c.startsPrevMonth() {
		if day >= c.cfg.CutoverDay {
			m++
		}
	} else {
		if day < c.cfg.CutoverDay {
			m--
		}
	}

	return Normalize(year, m)
}

// Normalize folds a month outside 1-12 into the adjacent year.
func Normalize(year, month int) (int, int) {
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return d.Year(), int(d.Month())
}

// AddMonths shifts a fiscal (year, month) by n months.
func AddMonths(year, month, n int) (int, int) {
	return Normalize(year, month+n)
}

// Index returns a total ordering over fiscal periods: Index(a) < Index(b)
// iff period a is strictly earlier than period b.
func Index(year, month int) int {
	return year*12 + (month - 1)
}
