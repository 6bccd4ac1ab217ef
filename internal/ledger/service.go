package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateIncome(ctx context.Context, inc *Income) error
	GetIncome(ctx context.Context, id uuid.UUID) (*Income, error)
	UpdateIncome(ctx context.Context, inc *Income) error
	DeleteIncome(ctx context.Context, id uuid.UUID) error
	ListIncomes(ctx context.Context, filter EntryFilter) ([]*Income, error)

	CreateExpense(ctx context.Context, exp *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, exp *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, filter EntryFilter) ([]*Expense, error)
}

// EntryFilter narrows entry listings. Nil fields are ignored.
type EntryFilter struct {
	From     *time.Time
	To       *time.Time
	State    *State
	MethodID *uuid.UUID
}

// Service exposes entry CRUD with the period freeze guard applied: entries
// whose fiscal period is more than one period before the current one are
// read-only, so historical reconciliations stay intact.
type Service struct {
	repo Repository
	calc *period.Calculator
	now  func() time.Time
}

func NewService(repo Repository, calc *period.Calculator, now func() time.Time) *Service {
	return &Service{repo: repo, calc: calc, now: now}
}

type IncomeParams struct {
	Name     string
	PayDate  time.Time
	MethodID uuid.UUID
	Amount   int64
	State    State
}

type ExpenseParams struct {
	Name       string
	PayDate    time.Time
	PeriodDate *time.Time
	MethodID   uuid.UUID
	Amount     int64
	State      State
}

// CanModifyEntry reports whether entries belonging to fiscal period
// (year, month) may still be updated or deleted. Only the current period and
// the one directly before it are open.
func (s *Service) CanModifyEntry(year, month int) bool {
	curYear, curMonth := s.calc.Resolve(s.now())

	return period.Index(year, month) >= period.Index(curYear, curMonth)-1
}

// guardModify rejects writes to entries frozen by their pay date's period.
func (s *Service) guardModify(payDate time.Time) error {
	year, month := s.calc.Resolve(payDate)
	if !s.CanModifyEntry(year, month) {
		return fmt.Errorf("entry in period %d/%02d: %w", year, month, ErrPastPeriod)
	}

	return nil
}

func (s *Service) CreateIncome(ctx context.Context, params IncomeParams) (*Income, error) {
	inc := &Income{
		Name:     params.Name,
		PayDate:  params.PayDate,
		MethodID: params.MethodID,
		Amount:   params.Amount,
		State:    params.State,
	}

	if err := s.repo.CreateIncome(ctx, inc); err != nil {
		return nil, err
	}

	return inc, nil
}

func (s *Service) GetIncome(ctx context.Context, id uuid.UUID) (*Income, error) {
	return s.repo.GetIncome(ctx, id)
}

// ListIncomes returns incomes matching the filter, ordered by pay date.
func (s *Service) ListIncomes(ctx context.Context, filter EntryFilter) ([]*Income, error) {
	return s.repo.ListIncomes(ctx, filter)
}

// ListPeriodIncomes returns every income whose pay date falls inside the
// fiscal period (year, month).
func (s *Service) ListPeriodIncomes(ctx context.Context, year, month int) ([]*Income, error) {
	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return nil, err
	}

	return s.repo.ListIncomes(ctx, EntryFilter{From: &first, To: &last})
}

func (s *Service) UpdateIncome(ctx context.Context, inc *Income) error {
	existing, err := s.repo.GetIncome(ctx, inc.ID)
	if err != nil {
		return err
	}

	if err := s.guardModify(existing.PayDate); err != nil {
		return err
	}

	return s.repo.UpdateIncome(ctx, inc)
}

func (s *Service) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetIncome(ctx, id)
	if err != nil {
		return err
	}

	if err := s.guardModify(existing.PayDate); err != nil {
		return err
	}

	return s.repo.DeleteIncome(ctx, id)
}

// AdvanceIncomeState moves an income forward in its lifecycle. Backward
// transitions are rejected.
func (s *Service) AdvanceIncomeState(ctx context.Context, id uuid.UUID, target State) error {
	inc, err := s.repo.GetIncome(ctx, id)
	if err != nil {
		return err
	}

	if err := s.guardModify(inc.PayDate); err != nil {
		return err
	}

	if !inc.State.CanAdvanceTo(target) {
		return fmt.Errorf("%s -> %s: %w", inc.State, target, ErrStateTransition)
	}

	inc.State = target

	return s.repo.UpdateIncome(ctx, inc)
}

func (s *Service) CreateExpense(ctx context.Context, params ExpenseParams) (*Expense, error) {
	exp := &Expense{
		Name:       params.Name,
		PayDate:    params.PayDate,
		PeriodDate: params.PeriodDate,
		MethodID:   params.MethodID,
		Amount:     params.Amount,
		State:      params.State,
	}

	if err := s.repo.CreateExpense(ctx, exp); err != nil {
		return nil, err
	}

	return exp, nil
}

func (s *Service) GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

// ListExpenses returns expenses matching the filter, ordered by pay date.
func (s *Service) ListExpenses(ctx context.Context, filter EntryFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// ListPeriodExpenses returns every expense whose pay date falls inside the
// fiscal period (year, month).
func (s *Service) ListPeriodExpenses(ctx context.Context, year, month int) ([]*Expense, error) {
	first, last, err := s.calc.FirstAndLastDate(year, month)
	if err != nil {
		return nil, err
	}

	return s.repo.ListExpenses(ctx, EntryFilter{From: &first, To: &last})
}

func (s *Service) UpdateExpense(ctx context.Context, exp *Expense) error {
	existing, err := s.repo.GetExpense(ctx, exp.ID)
	if err != nil {
		return err
	}

	if err := s.guardModify(existing.PayDate); err != nil {
		return err
	}

	return s.repo.UpdateExpense(ctx, exp)
}

func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return err
	}

	if err := s.guardModify(existing.PayDate); err != nil {
		return err
	}

	return s.repo.DeleteExpense(ctx, id)
}

// AdvanceExpenseState moves an expense forward in its lifecycle. Backward
// transitions are rejected.
func (s *Service) AdvanceExpenseState(ctx context.Context, id uuid.UUID, target State) error {
	exp, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return err
	}

	if err := s.guardModify(exp.PayDate); err != nil {
		return err
	}

	if !exp.State.CanAdvanceTo(target) {
		return fmt.Errorf("%s -> %s: %w", exp.State, target, ErrStateTransition)
	}

	exp.State = target

	return s.repo.UpdateExpense(ctx, exp)
}
