// Package catalog manages the long-lived records the ledger hangs off:
// banks, owners, accounts, payment methods, recurring default templates,
// loans and one-shot expense templates.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	ListBanks(ctx context.Context) ([]*ledger.Bank, error)
	CreateBank(ctx context.Context, bank *ledger.Bank) error
	DeleteBank(ctx context.Context, id uuid.UUID) error

	ListOwners(ctx context.Context) ([]*ledger.Owner, error)
	CreateOwner(ctx context.Context, owner *ledger.Owner) error
	DeleteOwner(ctx context.Context, id uuid.UUID) error

	ListAccounts(ctx context.Context) ([]*ledger.Account, error)
	CreateAccount(ctx context.Context, account *ledger.Account) error
	UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance int64) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	ListMethods(ctx context.Context) ([]*ledger.Method, error)
	CreateMethod(ctx context.Context, method *ledger.Method) error
	DeleteMethod(ctx context.Context, id uuid.UUID) error

	ListDefaultIncomes(ctx context.Context) ([]*ledger.DefaultIncome, error)
	CreateDefaultIncome(ctx context.Context, def *ledger.DefaultIncome) error
	UpdateDefaultIncome(ctx context.Context, def *ledger.DefaultIncome) error
	DeleteDefaultIncome(ctx context.Context, id uuid.UUID) error

	ListDefaultExpenses(ctx context.Context) ([]*ledger.DefaultExpense, error)
	CreateDefaultExpense(ctx context.Context, def *ledger.DefaultExpense) error
	UpdateDefaultExpense(ctx context.Context, def *ledger.DefaultExpense) error
	DeleteDefaultExpense(ctx context.Context, id uuid.UUID) error

	ListLoans(ctx context.Context) ([]*ledger.Loan, error)
	CreateLoan(ctx context.Context, loan *ledger.Loan) error
	UpdateLoan(ctx context.Context, loan *ledger.Loan) error
	DeleteLoan(ctx context.Context, id uuid.UUID) error

	ListTemplateExpenses(ctx context.Context) ([]*ledger.TemplateExpense, error)
	CreateTemplateExpense(ctx context.Context, tpl *ledger.TemplateExpense) error
	DeleteTemplateExpense(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBanks(ctx context.Context) ([]*ledger.Bank, error) {
	return s.repo.ListBanks(ctx)
}

func (s *Service) CreateBank(ctx context.Context, name string) (*ledger.Bank, error) {
	bank := &ledger.Bank{Name: name}
	if err := s.repo.CreateBank(ctx, bank); err != nil {
		return nil, err
	}

	return bank, nil
}

func (s *Service) DeleteBank(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBank(ctx, id)
}

func (s *Service) ListOwners(ctx context.Context) ([]*ledger.Owner, error) {
	return s.repo.ListOwners(ctx)
}

func (s *Service) CreateOwner(ctx context.Context, name string) (*ledger.Owner, error) {
	owner := &ledger.Owner{Name: name}
	if err := s.repo.CreateOwner(ctx, owner); err != nil {
		return nil, err
	}

	return owner, nil
}

func (s *Service) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOwner(ctx, id)
}

func (s *Service) ListAccounts(ctx context.Context) ([]*ledger.Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) CreateAccount(ctx context.Context, bankID, ownerID uuid.UUID, balance int64) (*ledger.Account, error) {
	if balance < 0 {
		return nil, fmt.Errorf("account balance must not be negative")
	}

	account := &ledger.Account{BankID: bankID, OwnerID: ownerID, Balance: balance}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateAccountBalance records the account's actual real-world balance.
// This is the only way the balance ever changes.
func (s *Service) UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	if balance < 0 {
		return fmt.Errorf("account balance must not be negative")
	}

	return s.repo.UpdateAccountBalance(ctx, id, balance)
}

func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, id)
}

func (s *Service) ListMethods(ctx context.Context) ([]*ledger.Method, error) {
	return s.repo.ListMethods(ctx)
}

func (s *Service) CreateMethod(ctx context.Context, name string, accountID uuid.UUID) (*ledger.Method, error) {
	method := &ledger.Method{Name: name, AccountID: accountID}
	if err := s.repo.CreateMethod(ctx, method); err != nil {
		return nil, err
	}

	return method, nil
}

func (s *Service) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMethod(ctx, id)
}

func validateTemplateDays(payDay int, periodDay *int, months []int) error {
	if payDay < 1 || payDay > period.MaxTemplateDay {
		return fmt.Errorf("pay day %d: %w", payDay, period.ErrInvalidPeriod)
	}

	if periodDay != nil && (*periodDay < 1 || *periodDay > period.MaxTemplateDay) {
		return fmt.Errorf("period day %d: %w", *periodDay, period.ErrInvalidPeriod)
	}

	for _, m := range months {
		if m < 1 || m > 12 {
			return fmt.Errorf("applicable month %d: %w", m, period.ErrInvalidPeriod)
		}
	}

	return nil
}

func (s *Service) ListDefaultIncomes(ctx context.Context) ([]*ledger.DefaultIncome, error) {
	return s.repo.ListDefaultIncomes(ctx)
}

func (s *Service) CreateDefaultIncome(ctx context.Context, def *ledger.DefaultIncome) error {
	if err := validateTemplateDays(def.PayDay, nil, def.Months); err != nil {
		return err
	}

	return s.repo.CreateDefaultIncome(ctx, def)
}

func (s *Service) UpdateDefaultIncome(ctx context.Context, def *ledger.DefaultIncome) error {
	if err := validateTemplateDays(def.PayDay, nil, def.Months); err != nil {
		return err
	}

	return s.repo.UpdateDefaultIncome(ctx, def)
}

func (s *Service) DeleteDefaultIncome(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDefaultIncome(ctx, id)
}

func (s *Service) ListDefaultExpenses(ctx context.Context) ([]*ledger.DefaultExpense, error) {
	return s.repo.ListDefaultExpenses(ctx)
}

func (s *Service) CreateDefaultExpense(ctx context.Context, def *ledger.DefaultExpense) error {
	if err := validateTemplateDays(def.PayDay, def.PeriodDay, def.Months); err != nil {
		return err
	}

	return s.repo.CreateDefaultExpense(ctx, def)
}

func (s *Service) UpdateDefaultExpense(ctx context.Context, def *ledger.DefaultExpense) error {
	if err := validateTemplateDays(def.PayDay, def.PeriodDay, def.Months); err != nil {
		return err
	}

	return s.repo.UpdateDefaultExpense(ctx, def)
}

func (s *Service) DeleteDefaultExpense(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDefaultExpense(ctx, id)
}

func (s *Service) ListLoans(ctx context.Context) ([]*ledger.Loan, error) {
	return s.repo.ListLoans(ctx)
}

func validateLoanRange(loan *ledger.Loan) error {
	if loan.PayDay < 1 || loan.PayDay > period.MaxTemplateDay {
		return fmt.Errorf("pay day %d: %w", loan.PayDay, period.ErrInvalidPeriod)
	}

	if period.Index(loan.FirstYear, loan.FirstMonth) > period.Index(loan.LastYear, loan.LastMonth) {
		return fmt.Errorf("loan range %d/%02d-%d/%02d: %w",
			loan.FirstYear, loan.FirstMonth, loan.LastYear, loan.LastMonth, period.ErrInvalidPeriod)
	}

	return nil
}

func (s *Service) CreateLoan(ctx context.Context, loan *ledger.Loan) error {
	if err := validateLoanRange(loan); err != nil {
		return err
	}

	return s.repo.CreateLoan(ctx, loan)
}

func (s *Service) UpdateLoan(ctx context.Context, loan *ledger.Loan) error {
	if err := validateLoanRange(loan); err != nil {
		return err
	}

	return s.repo.UpdateLoan(ctx, loan)
}

func (s *Service) DeleteLoan(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLoan(ctx, id)
}

func (s *Service) ListTemplateExpenses(ctx context.Context) ([]*ledger.TemplateExpense, error) {
	return s.repo.ListTemplateExpenses(ctx)
}

func (s *Service) CreateTemplateExpense(ctx context.Context, tpl *ledger.TemplateExpense) error {
	if tpl.DateMode == ledger.DateModeLater {
		if tpl.PayDay == nil {
			return fmt.Errorf("pay day required for %q templates", ledger.DateModeLater)
		}

		if *tpl.PayDay < 1 || *tpl.PayDay > period.MaxTemplateDay {
			return fmt.Errorf("pay day %d: %w", *tpl.PayDay, period.ErrInvalidPeriod)
		}
	}

	return s.repo.CreateTemplateExpense(ctx, tpl)
}

func (s *Service) DeleteTemplateExpense(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTemplateExpense(ctx, id)
}

// Suggestion is a prefilled expense form derived from a one-shot template.
type Suggestion struct {
	Template  *ledger.TemplateExpense
	PayDate   time.Time
	Undecided bool
}

// Suggestions resolves every template's date rule against today.
func (s *Service) Suggestions(ctx context.Context, today time.Time) ([]Suggestion, error) {
	tpls, err := s.repo.ListTemplateExpenses(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(tpls))

	for _, tpl := range tpls {
		suggestions = append(suggestions, Suggestion{
			Template:  tpl,
			PayDate:   tpl.SuggestedPayDate(today),
			Undecided: tpl.Undecided,
		})
	}

	return suggestions, nil
}
