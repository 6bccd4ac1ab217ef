// Package recurrence materializes recurring templates into concrete ledger
// entries. Materialization is idempotent per period: a template whose name
// already appears among the period's entries is skipped, so viewing the same
// period twice never duplicates rows. The name is the sole de-duplication
// key; renaming a template after its first materialization makes it count as
// a new one. That is long-standing behavior the ledger history depends on,
// so it is kept as is.
package recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurrence
type Repository interface {
	DefaultIncomesForMonth(ctx context.Context, month int) ([]*ledger.DefaultIncome, error)
	DefaultExpensesForMonth(ctx context.Context, month int) ([]*ledger.DefaultExpense, error)
	Loans(ctx context.Context) ([]*ledger.Loan, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one atomic materialization batch. A crash mid-batch rolls the whole
// batch back, so a retry can only add missing entries, never duplicate them.
type Tx interface {
	IncomeNames(ctx context.Context, from, to time.Time) (map[string]bool, error)
	ExpenseNames(ctx context.Context, from, to time.Time) (map[string]bool, error)
	CreateIncome(ctx context.Context, inc *ledger.Income) error
	CreateExpense(ctx context.Context, exp *ledger.Expense) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	calc *period.Calculator
	now  func() time.Time
}

func NewService(repo Repository, calc *period.Calculator, now func() time.Time) *Service {
	return &Service{repo: repo, calc: calc, now: now}
}

// Result counts the entries a materialization pass added.
type Result struct {
	Incomes      int
	Expenses     int
	LoanExpenses int
}

// CanMaterialize reports whether defaults may be materialized into
// (year, month). Past periods are never materialized into, so history is
// not silently rewritten.
func (s *Service) CanMaterialize(year, month int) bool {
	curYear, curMonth := s.calc.Resolve(s.now())

	return period.Index(year, month) >= period.Index(curYear, curMonth)
}

func (s *Service) guard(year, month int) error {
	if err := s.calc.Validate(year, month); err != nil {
		return err
	}

	if !s.CanMaterialize(year, month) {
		return fmt.Errorf("materializing into %d/%02d: %w", year, month, ledger.ErrPastPeriod)
	}

	return nil
}

// MaterializeAll runs the income, expense and loan passes for (year, month)
// and returns the combined counts. Each pass is its own transaction.
func (s *Service) MaterializeAll(ctx context.Context, year, month int) (Result, error) {
	var res Result

	var err error

	if res.Incomes, err = s.MaterializeIncomes(ctx, year, month); err != nil {
		return res, err
	}

	if res.Expenses, err = s.MaterializeExpenses(ctx, year, month); err != nil {
		return res, err
	}

	if res.LoanExpenses, err = s.MaterializeLoanExpenses(ctx, year, month); err != nil {
		return res, err
	}

	return res, nil
}

// MaterializeIncomes creates one income per default-income template flagged
// for the period's month, skipping templates whose name already appears in
// the period. Returns how many entries were added.
func (s *Service) MaterializeIncomes(ctx context.Context, year, month int) (int, error) {
	if err := s.guard(year, month); err != nil {
		return 0, err
	}

	defs, err := s.repo.DefaultIncomesForMonth(ctx, month)
	if err != nil {
		return 0, fmt.Errorf("loading default incomes: %w", err)
	}

	if len(defs) == 0 {
		return 0, nil
	}

	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return 0, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin materialization: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.IncomeNames(ctx, first, last)
	if err != nil {
		return 0, fmt.Errorf("listing period income names: %w", err)
	}

	added := 0

	for _, def := range defs {
		if existing[def.Name] {
			continue
		}

		payDate, _, err := s.calc.PayAndPeriodDate(year, month, def.PayDay, nil)
		if err != nil {
			return 0, fmt.Errorf("template %q: %w", def.Name, err)
		}

		inc := &ledger.Income{
			Name:     def.Name,
			PayDate:  payDate,
			MethodID: def.MethodID,
			Amount:   def.Amount,
			State:    templateState(def.Undecided),
		}

		if err := tx.CreateIncome(ctx, inc); err != nil {
			return 0, fmt.Errorf("materializing income %q: %w", def.Name, err)
		}

		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit materialization: %w", err)
	}

	return added, nil
}

// MaterializeExpenses creates one expense per default-expense template
// flagged for the period's month, carrying the billing period date when the
// template defines one.
func (s *Service) MaterializeExpenses(ctx context.Context, year, month int) (int, error) {
	if err := s.guard(year, month); err != nil {
		return 0, err
	}

	defs, err := s.repo.DefaultExpensesForMonth(ctx, month)
	if err != nil {
		return 0, fmt.Errorf("loading default expenses: %w", err)
	}

	if len(defs) == 0 {
		return 0, nil
	}

	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return 0, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin materialization: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.ExpenseNames(ctx, first, last)
	if err != nil {
		return 0, fmt.Errorf("listing period expense names: %w", err)
	}

	added := 0

	for _, def := range defs {
		if existing[def.Name] {
			continue
		}

		payDate, periodDate, err := s.calc.PayAndPeriodDate(year, month, def.PayDay, def.PeriodDay)
		if err != nil {
			return 0, fmt.Errorf("template %q: %w", def.Name, err)
		}

		exp := &ledger.Expense{
			Name:       def.Name,
			PayDate:    payDate,
			PeriodDate: periodDate,
			MethodID:   def.MethodID,
			Amount:     def.Amount,
			State:      templateState(def.Undecided),
		}

		if err := tx.CreateExpense(ctx, exp); err != nil {
			return 0, fmt.Errorf("materializing expense %q: %w", def.Name, err)
		}

		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit materialization: %w", err)
	}

	return added, nil
}

// MaterializeLoanExpenses creates one expense per loan whose installment
// range covers (year, month). The first installment uses the loan's
// AmountFirst; every later one uses AmountFromSecond.
func (s *Service) MaterializeLoanExpenses(ctx context.Context, year, month int) (int, error) {
	if err := s.guard(year, month); err != nil {
		return 0, err
	}

	loans, err := s.repo.Loans(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading loans: %w", err)
	}

	due := make([]*ledger.Loan, 0, len(loans))

	for _, loan := range loans {
		if loan.Covers(year, month) {
			due = append(due, loan)
		}
	}

	if len(due) == 0 {
		return 0, nil
	}

	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return 0, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin materialization: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.ExpenseNames(ctx, first, last)
	if err != nil {
		return 0, fmt.Errorf("listing period expense names: %w", err)
	}

	added := 0

	for _, loan := range due {
		if existing[loan.Name] {
			continue
		}

		payDate, _, err := s.calc.PayAndPeriodDate(year, month, loan.PayDay, nil)
		if err != nil {
			return 0, fmt.Errorf("loan %q: %w", loan.Name, err)
		}

		exp := &ledger.Expense{
			Name:     loan.Name,
			PayDate:  payDate,
			MethodID: loan.MethodID,
			Amount:   loan.InstallmentAmount(year, month),
			State:    ledger.StateDecided,
		}

		if err := tx.CreateExpense(ctx, exp); err != nil {
			return 0, fmt.Errorf("materializing loan %q: %w", loan.Name, err)
		}

		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit materialization: %w", err)
	}

	return added, nil
}

func templateState(undecided bool) ledger.State {
	if undecided {
		return ledger.StateUndecided
	}

	return ledger.StateDecided
}
