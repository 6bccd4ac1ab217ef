package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// mapConstraintErr converts Postgres constraint violations into domain
// sentinel errors. Unique violations on (name, pay_date) become
// ErrDuplicateEntry; foreign key violations become ErrReferenced.
func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ledger.ErrDuplicateEntry)
	case "23503":
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ledger.ErrReferenced)
	}

	return err
}

// scanIncome reads an income row joined with its method and account.
// Expected column order: id, name, pay_date, method_id, amount, state,
// created_at, updated_at, method_name, account_id
func scanIncome(s scanner) (*ledger.Income, error) {
	var inc ledger.Income

	var stateStr string

	var methodName string

	var accountID uuid.UUID

	if err := s.Scan(
		&inc.ID, &inc.Name, &inc.PayDate, &inc.MethodID, &inc.Amount, &stateStr,
		&inc.CreatedAt, &inc.UpdatedAt,
		&methodName, &accountID,
	); err != nil {
		return nil, err
	}

	inc.State = ledger.State(stateStr)
	inc.Method = &ledger.Method{ID: inc.MethodID, Name: methodName, AccountID: accountID}

	return &inc, nil
}

func scanExpense(s scanner) (*ledger.Expense, error) {
	var exp ledger.Expense

	var stateStr string

	var periodDate sql.NullTime

	var methodName string

	var accountID uuid.UUID

	if err := s.Scan(
		&exp.ID, &exp.Name, &exp.PayDate, &periodDate, &exp.MethodID, &exp.Amount, &stateStr,
		&exp.CreatedAt, &exp.UpdatedAt,
		&methodName, &accountID,
	); err != nil {
		return nil, err
	}

	exp.State = ledger.State(stateStr)
	exp.Method = &ledger.Method{ID: exp.MethodID, Name: methodName, AccountID: accountID}

	if periodDate.Valid {
		d := periodDate.Time
		exp.PeriodDate = &d
	}

	return &exp, nil
}

const selectIncomeColumns = `
	i.id, i.name, i.pay_date, i.method_id, i.amount, i.state,
	i.created_at, i.updated_at, m.name AS method_name, m.account_id
`

const selectExpenseColumns = `
	e.id, e.name, e.pay_date, e.period_date, e.method_id, e.amount, e.state,
	e.created_at, e.updated_at, m.name AS method_name, m.account_id
`

func (s *Store) CreateIncome(ctx context.Context, inc *ledger.Income) error {
	query := `
		INSERT INTO incomes (name, pay_date, method_id, amount, state, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inc.Name,
		inc.PayDate,
		inc.MethodID,
		inc.Amount,
		inc.State,
	).Scan(&inc.ID, &inc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) GetIncome(ctx context.Context, id uuid.UUID) (*ledger.Income, error) {
	query := `SELECT ` + selectIncomeColumns + `
		FROM incomes i
		JOIN methods m ON i.method_id = m.id
		WHERE i.id = $1`

	inc, err := scanIncome(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting income: %w", err)
	}

	return inc, nil
}

func (s *Store) ListIncomes(ctx context.Context, filter ledger.EntryFilter) ([]*ledger.Income, error) {
	query := `SELECT ` + selectIncomeColumns + `
		FROM incomes i
		JOIN methods m ON i.method_id = m.id
		WHERE 1=1`

	query, args := appendEntryFilter(query, nil, filter, "i", "i.pay_date")
	query += " ORDER BY i.pay_date ASC, i.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var incs []*ledger.Income

	for rows.Next() {
		inc, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		incs = append(incs, inc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income rows: %w", err)
	}

	return incs, nil
}

func (s *Store) UpdateIncome(ctx context.Context, inc *ledger.Income) error {
	query := `
		UPDATE incomes
		SET name = $1, pay_date = $2, method_id = $3, amount = $4, state = $5, updated_at = NOW()
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		inc.Name,
		inc.PayDate,
		inc.MethodID,
		inc.Amount,
		inc.State,
		inc.ID,
	)
	if err != nil {
		return fmt.Errorf("updating income: %w", mapConstraintErr(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting income: %w", mapConstraintErr(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) CreateExpense(ctx context.Context, exp *ledger.Expense) error {
	query := `
		INSERT INTO expenses (name, pay_date, period_date, method_id, amount, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		exp.Name,
		exp.PayDate,
		exp.PeriodDate,
		exp.MethodID,
		exp.Amount,
		exp.State,
	).Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		JOIN methods m ON e.method_id = m.id
		WHERE e.id = $1`

	exp, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return exp, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter ledger.EntryFilter) ([]*ledger.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		JOIN methods m ON e.method_id = m.id
		WHERE 1=1`

	// An expense with a billing period date belongs to that period, not to
	// the month its money moves.
	query, args := appendEntryFilter(query, nil, filter, "e", "COALESCE(e.period_date, e.pay_date)")
	query += " ORDER BY e.pay_date ASC, e.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var exps []*ledger.Expense

	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		exps = append(exps, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return exps, nil
}

func (s *Store) UpdateExpense(ctx context.Context, exp *ledger.Expense) error {
	query := `
		UPDATE expenses
		SET name = $1, pay_date = $2, period_date = $3, method_id = $4, amount = $5, state = $6, updated_at = NOW()
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		exp.Name,
		exp.PayDate,
		exp.PeriodDate,
		exp.MethodID,
		exp.Amount,
		exp.State,
		exp.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", mapConstraintErr(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", mapConstraintErr(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

// appendEntryFilter extends query with WHERE clauses for the set filter
// fields. alias is the entry table's alias in the query and dateExpr the SQL
// expression the From/To range applies to.
func appendEntryFilter(query string, args []any, filter ledger.EntryFilter, alias, dateExpr string) (string, []any) {
	argIdx := len(args) + 1

	if filter.From != nil {
		query += fmt.Sprintf(" AND %s >= $%d", dateExpr, argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND %s <= $%d", dateExpr, argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	if filter.State != nil {
		query += fmt.Sprintf(" AND %s.state = $%d", alias, argIdx)

		args = append(args, *filter.State)
		argIdx++
	}

	if filter.MethodID != nil {
		query += fmt.Sprintf(" AND %s.method_id = $%d", alias, argIdx)

		args = append(args, *filter.MethodID)
		argIdx++
	}

	return query, args
}
