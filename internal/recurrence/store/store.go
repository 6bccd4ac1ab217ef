package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/recurrence"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DefaultIncomesForMonth(ctx context.Context, month int) ([]*ledger.DefaultIncome, error) {
	query := `
		SELECT d.id, d.name, d.pay_day, d.method_id, d.amount, d.undecided
		FROM default_incomes d
		JOIN default_income_months dm ON dm.default_income_id = d.id
		WHERE dm.month = $1
		ORDER BY d.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("listing default incomes: %w", err)
	}
	defer rows.Close()

	var defs []*ledger.DefaultIncome

	for rows.Next() {
		var def ledger.DefaultIncome
		if err := rows.Scan(&def.ID, &def.Name, &def.PayDay, &def.MethodID, &def.Amount, &def.Undecided); err != nil {
			return nil, fmt.Errorf("scanning default income: %w", err)
		}

		defs = append(defs, &def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating default income rows: %w", err)
	}

	return defs, nil
}

func (s *Store) DefaultExpensesForMonth(ctx context.Context, month int) ([]*ledger.DefaultExpense, error) {
	query := `
		SELECT d.id, d.name, d.pay_day, d.period_day, d.method_id, d.amount, d.undecided
		FROM default_expenses d
		JOIN default_expense_months dm ON dm.default_expense_id = d.id
		WHERE dm.month = $1
		ORDER BY d.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("listing default expenses: %w", err)
	}
	defer rows.Close()

	var defs []*ledger.DefaultExpense

	for rows.Next() {
		var def ledger.DefaultExpense

		var periodDay sql.NullInt64

		if err := rows.Scan(&def.ID, &def.Name, &def.PayDay, &periodDay, &def.MethodID, &def.Amount, &def.Undecided); err != nil {
			return nil, fmt.Errorf("scanning default expense: %w", err)
		}

		if periodDay.Valid {
			d := int(periodDay.Int64)
			def.PeriodDay = &d
		}

		defs = append(defs, &def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating default expense rows: %w", err)
	}

	return defs, nil
}

func (s *Store) Loans(ctx context.Context) ([]*ledger.Loan, error) {
	query := `
		SELECT id, name, pay_day, method_id, amount_first, amount_from_second,
			first_year, first_month, last_year, last_month
		FROM loans
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}
	defer rows.Close()

	var loans []*ledger.Loan

	for rows.Next() {
		var loan ledger.Loan
		if err := rows.Scan(
			&loan.ID, &loan.Name, &loan.PayDay, &loan.MethodID,
			&loan.AmountFirst, &loan.AmountFromSecond,
			&loan.FirstYear, &loan.FirstMonth, &loan.LastYear, &loan.LastMonth,
		); err != nil {
			return nil, fmt.Errorf("scanning loan: %w", err)
		}

		loans = append(loans, &loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loan rows: %w", err)
	}

	return loans, nil
}

type materializeTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (recurrence.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning materialization tx: %w", err)
	}

	return &materializeTx{tx: tx}, nil
}

func (t *materializeTx) Commit() error   { return t.tx.Commit() }
func (t *materializeTx) Rollback() error { return t.tx.Rollback() }

func (t *materializeTx) IncomeNames(ctx context.Context, from, to time.Time) (map[string]bool, error) {
	query := `SELECT name FROM incomes WHERE pay_date >= $1 AND pay_date <= $2`

	return t.names(ctx, query, from, to)
}

// ExpenseNames keys expenses on their billing period date when set, falling
// back to the pay date, matching how default expenses are booked against a
// period.
func (t *materializeTx) ExpenseNames(ctx context.Context, from, to time.Time) (map[string]bool, error) {
	query := `SELECT name FROM expenses WHERE COALESCE(period_date, pay_date) >= $1 AND COALESCE(period_date, pay_date) <= $2`

	return t.names(ctx, query, from, to)
}

func (t *materializeTx) names(ctx context.Context, query string, from, to time.Time) (map[string]bool, error) {
	rows, err := t.tx.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing period names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]bool)

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning name: %w", err)
		}

		names[name] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating name rows: %w", err)
	}

	return names, nil
}

func (t *materializeTx) CreateIncome(ctx context.Context, inc *ledger.Income) error {
	query := `
		INSERT INTO incomes (name, pay_date, method_id, amount, state, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		inc.Name,
		inc.PayDate,
		inc.MethodID,
		inc.Amount,
		inc.State,
	).Scan(&inc.ID, &inc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}

func (t *materializeTx) CreateExpense(ctx context.Context, exp *ledger.Expense) error {
	query := `
		INSERT INTO expenses (name, pay_date, period_date, method_id, amount, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		exp.Name,
		exp.PayDate,
		exp.PeriodDate,
		exp.MethodID,
		exp.Amount,
		exp.State,
	).Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}
