// Package ledger holds the household ledger's domain model: who holds which
// account, how money moves (methods), and the concrete income and expense
// entries recorded against fiscal periods.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Bank is a financial institution holding one or more accounts.
type Bank struct {
	ID   uuid.UUID
	Name string
}

// Owner is a household member. Each (bank, owner) pair has at most one
// account.
type Owner struct {
	ID   uuid.UUID
	Name string
}

// Account is a real-world bank account. Balance is the manually maintained
// actual balance in integer yen; it only changes through an explicit edit,
// never as a side effect of ledger writes.
type Account struct {
	ID      uuid.UUID
	BankID  uuid.UUID
	OwnerID uuid.UUID
	Balance int64

	Bank  *Bank  // Loaded via JOIN
	Owner *Owner // Loaded via JOIN
}

// Method is a named way of paying through a specific account (transfer,
// direct debit, cash withdrawal, ...).
type Method struct {
	ID        uuid.UUID
	Name      string
	AccountID uuid.UUID

	Account *Account // Loaded via JOIN
}

// Income is money arriving in a period. (Name, PayDate) is unique.
type Income struct {
	ID        uuid.UUID
	Name      string
	PayDate   time.Time
	MethodID  uuid.UUID
	Amount    int64
	State     State
	CreatedAt time.Time
	UpdatedAt *time.Time

	Method *Method // Loaded via JOIN
}

// Expense is money leaving in a period. PeriodDate, when set, is the billing
// cycle cutoff, distinct from the day the money actually moves.
// (Name, PayDate) is unique.
type Expense struct {
	ID         uuid.UUID
	Name       string
	PayDate    time.Time
	PeriodDate *time.Time
	MethodID   uuid.UUID
	Amount     int64
	State      State
	CreatedAt  time.Time
	UpdatedAt  *time.Time

	Method *Method // Loaded via JOIN
}

// DefaultIncome is a recurring income template, materialized once per
// applicable month.
type DefaultIncome struct {
	ID        uuid.UUID
	Name      string
	PayDay    int // 1-28
	MethodID  uuid.UUID
	Amount    int64
	Undecided bool
	Months    []int // applicable months, 1-12

	Method *Method
}

// DefaultExpense is a recurring expense template. PeriodDay, when set, maps
// to the materialized entry's PeriodDate.
type DefaultExpense struct {
	ID        uuid.UUID
	Name      string
	PayDay    int  // 1-28
	PeriodDay *int // 1-28
	MethodID  uuid.UUID
	Amount    int64
	Undecided bool
	Months    []int

	Method *Method
}

// Loan is a recurring expense spanning an inclusive (year, month) range.
// The first installment may differ from the rest.
type Loan struct {
	ID               uuid.UUID
	Name             string
	PayDay           int // 1-28
	MethodID         uuid.UUID
	AmountFirst      int64
	AmountFromSecond int64
	FirstYear        int
	FirstMonth       int
	LastYear         int
	LastMonth        int

	Method *Method
}

// Covers reports whether the fiscal period (year, month) falls inside the
// loan's inclusive installment range.
func (l *Loan) Covers(year, month int) bool {
	after := year > l.FirstYear || (year == l.FirstYear && month >= l.FirstMonth)
	before := year < l.LastYear || (year == l.LastYear && month <= l.LastMonth)

	return after && before
}

// InstallmentAmount returns the amount due in (year, month): AmountFirst for
// the very first installment, AmountFromSecond for every later one.
func (l *Loan) InstallmentAmount(year, month int) int64 {
	if year == l.FirstYear && month == l.FirstMonth {
		return l.AmountFirst
	}

	return l.AmountFromSecond
}

// TemplateDateMode selects how a TemplateExpense computes its pay date.
type TemplateDateMode string

const (
	// DateModeToday uses the current date as pay date.
	DateModeToday TemplateDateMode = "today"
	// DateModeLater uses PayDay in the current month, switching to the
	// next month once today's day-of-month is past LimitDay.
	DateModeLater TemplateDateMode = "later"
)

// TemplateExpense is a parametrized one-shot expense template used to
// prefill the expense creation form. The amount is always entered by hand.
type TemplateExpense struct {
	ID        uuid.UUID
	Name      string
	MethodID  uuid.UUID
	Undecided bool
	DateMode  TemplateDateMode
	PayDay    *int // 1-28, required for DateModeLater
	LimitDay  *int // last day-of-month still booked in the current month

	Method *Method
}

// SuggestedPayDate resolves the template's date rule against today.
func (t *TemplateExpense) SuggestedPayDate(today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	if t.DateMode == DateModeToday || t.PayDay == nil {
		return day
	}

	d := time.Date(today.Year(), today.Month(), *t.PayDay, 0, 0, 0, 0, time.UTC)

	if t.LimitDay != nil && today.Day() > *t.LimitDay {
		d = d.AddDate(0, 1, 0)
	}

	return d
}
