// Package balance aggregates ledger entries into period sums, running
// balances and reconciliation reports against the manually tracked account
// balances. All amounts are exact integer yen; aggregating over nothing
// yields 0.
package balance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=balance
type Repository interface {
	// SumIncomes returns the total income amount with pay_date <= until,
	// optionally restricted to entries whose money has moved.
	SumIncomes(ctx context.Context, until time.Time, doneOnly bool) (int64, error)
	SumExpenses(ctx context.Context, until time.Time, doneOnly bool) (int64, error)

	Accounts(ctx context.Context) ([]*ledger.Account, error)
	Methods(ctx context.Context) ([]*ledger.Method, error)

	// UndoneExpenseSumsByAccount returns, per account, the sum of
	// not-yet-done expense amounts with pay_date in [from, to].
	UndoneExpenseSumsByAccount(ctx context.Context, from, to time.Time) (map[uuid.UUID]int64, error)
	UndoneExpenseSumsByMethod(ctx context.Context, from, to time.Time) (map[uuid.UUID]int64, error)

	// MarkMethodExpensesDone transitions every expense of the method with
	// pay_date in [from, to] to done, atomically, and reports how many
	// rows changed.
	MarkMethodExpensesDone(ctx context.Context, methodID uuid.UUID, from, to time.Time) (int64, error)
}

type Service struct {
	repo Repository
	calc *period.Calculator
}

func NewService(repo Repository, calc *period.Calculator) *Service {
	return &Service{repo: repo, calc: calc}
}

// SumIncomeAmounts sums a filtered income set. An empty set sums to 0.
func SumIncomeAmounts(incs []*ledger.Income) int64 {
	var sum int64
	for _, inc := range incs {
		sum += inc.Amount
	}

	return sum
}

// SumExpenseAmounts sums a filtered expense set. An empty set sums to 0.
func SumExpenseAmounts(exps []*ledger.Expense) int64 {
	var sum int64
	for _, exp := range exps {
		sum += exp.Amount
	}

	return sum
}

// CumulativeBalance returns the running balance since inception up to the
// end of fiscal period (year, month): all income minus all expense amounts
// with pay_date on or before the period's last date.
func (s *Service) CumulativeBalance(ctx context.Context, year, month int) (int64, error) {
	return s.cumulative(ctx, year, month, false)
}

// CumulativeBalanceDone is CumulativeBalance restricted to entries whose
// money has actually moved.
func (s *Service) CumulativeBalanceDone(ctx context.Context, year, month int) (int64, error) {
	return s.cumulative(ctx, year, month, true)
}

func (s *Service) cumulative(ctx context.Context, year, month int, doneOnly bool) (int64, error) {
	_, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return 0, err
	}

	incSum, err := s.repo.SumIncomes(ctx, last, doneOnly)
	if err != nil {
		return 0, err
	}

	expSum, err := s.repo.SumExpenses(ctx, last, doneOnly)
	if err != nil {
		return 0, err
	}

	return incSum - expSum, nil
}

// AccountRequirement reports how much money an account still needs this
// period to cover its undone expenses.
type AccountRequirement struct {
	Account            *ledger.Account
	Requirement        int64
	IsInsufficient     bool
	InsufficientAmount int64
}

// AccountRequirements computes, for every account, the sum of not-yet-done
// expenses routed through the account's methods within (year, month), and
// whether the account's actual balance covers it.
func (s *Service) AccountRequirements(ctx context.Context, year, month int) ([]AccountRequirement, error) {
	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return nil, err
	}

	accounts, err := s.repo.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	sums, err := s.repo.UndoneExpenseSumsByAccount(ctx, first, last)
	if err != nil {
		return nil, err
	}

	reqs := make([]AccountRequirement, 0, len(accounts))

	for _, account := range accounts {
		req := AccountRequirement{
			Account:     account,
			Requirement: sums[account.ID],
		}

		if account.Balance < req.Requirement {
			req.IsInsufficient = true
			req.InsufficientAmount = req.Requirement - account.Balance
		}

		reqs = append(reqs, req)
	}

	return reqs, nil
}

// MethodRequirement is AccountRequirement grouped by payment method. The
// sufficiency check compares against the owning account's balance.
type MethodRequirement struct {
	Method             *ledger.Method
	Requirement        int64
	IsInsufficient     bool
	InsufficientAmount int64
}

func (s *Service) MethodRequirements(ctx context.Context, year, month int) ([]MethodRequirement, error) {
	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return nil, err
	}

	methods, err := s.repo.Methods(ctx)
	if err != nil {
		return nil, err
	}

	sums, err := s.repo.UndoneExpenseSumsByMethod(ctx, first, last)
	if err != nil {
		return nil, err
	}

	reqs := make([]MethodRequirement, 0, len(methods))

	for _, method := range methods {
		req := MethodRequirement{
			Method:      method,
			Requirement: sums[method.ID],
		}

		if method.Account != nil && method.Account.Balance < req.Requirement {
			req.IsInsufficient = true
			req.InsufficientAmount = req.Requirement - method.Account.Balance
		}

		reqs = append(reqs, req)
	}

	return reqs, nil
}

// DiscrepancyReport compares the manually tracked account balances with the
// ledger-derived balance of completed transactions. A non-zero Diff means
// money moved that was never recorded, or a data entry error.
type DiscrepancyReport struct {
	AccountBalanceSum int64
	LedgerDoneBalance int64
	Diff              int64
}

func (s *Service) Discrepancy(ctx context.Context, year, month int) (DiscrepancyReport, error) {
	accounts, err := s.repo.Accounts(ctx)
	if err != nil {
		return DiscrepancyReport{}, err
	}

	var balanceSum int64
	for _, account := range accounts {
		balanceSum += account.Balance
	}

	doneBalance, err := s.CumulativeBalanceDone(ctx, year, month)
	if err != nil {
		return DiscrepancyReport{}, err
	}

	return DiscrepancyReport{
		AccountBalanceSum: balanceSum,
		LedgerDoneBalance: doneBalance,
		Diff:              balanceSum - doneBalance,
	}, nil
}

// BulkMarkMethodDone marks every expense paid through the method within
// (year, month) as done. Used to settle a whole direct-debit batch at once.
func (s *Service) BulkMarkMethodDone(ctx context.Context, methodID uuid.UUID, year, month int) (int64, error) {
	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return 0, err
	}

	return s.repo.MarkMethodExpensesDone(ctx, methodID, first, last)
}
