package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// COALESCE keeps empty aggregates at 0 instead of NULL.
func (s *Store) SumIncomes(ctx context.Context, until time.Time, doneOnly bool) (int64, error) {
	return s.sumEntries(ctx, "incomes", until, doneOnly)
}

func (s *Store) SumExpenses(ctx context.Context, until time.Time, doneOnly bool) (int64, error) {
	return s.sumEntries(ctx, "expenses", until, doneOnly)
}

func (s *Store) sumEntries(ctx context.Context, table string, until time.Time, doneOnly bool) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ` + table + ` WHERE pay_date <= $1`

	args := []any{until}

	if doneOnly {
		query += ` AND state = $2`

		args = append(args, ledger.StateDone)
	}

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing %s: %w", table, err)
	}

	return sum, nil
}

func (s *Store) Accounts(ctx context.Context) ([]*ledger.Account, error) {
	query := `
		SELECT a.id, a.bank_id, a.owner_id, a.balance, b.name, o.name
		FROM accounts a
		JOIN banks b ON a.bank_id = b.id
		JOIN owners o ON a.owner_id = o.id
		ORDER BY o.name ASC, b.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*ledger.Account

	for rows.Next() {
		var account ledger.Account

		var bankName, ownerName string

		if err := rows.Scan(&account.ID, &account.BankID, &account.OwnerID, &account.Balance, &bankName, &ownerName); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		account.Bank = &ledger.Bank{ID: account.BankID, Name: bankName}
		account.Owner = &ledger.Owner{ID: account.OwnerID, Name: ownerName}

		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) Methods(ctx context.Context) ([]*ledger.Method, error) {
	query := `
		SELECT m.id, m.name, m.account_id, a.balance, b.name, o.name
		FROM methods m
		JOIN accounts a ON m.account_id = a.id
		JOIN banks b ON a.bank_id = b.id
		JOIN owners o ON a.owner_id = o.id
		ORDER BY m.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing methods: %w", err)
	}
	defer rows.Close()

	var methods []*ledger.Method

	for rows.Next() {
		var method ledger.Method

		var balance int64

		var bankName, ownerName string

		if err := rows.Scan(&method.ID, &method.Name, &method.AccountID, &balance, &bankName, &ownerName); err != nil {
			return nil, fmt.Errorf("scanning method: %w", err)
		}

		method.Account = &ledger.Account{
			ID:      method.AccountID,
			Balance: balance,
			Bank:    &ledger.Bank{Name: bankName},
			Owner:   &ledger.Owner{Name: ownerName},
		}

		methods = append(methods, &method)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating method rows: %w", err)
	}

	return methods, nil
}

func (s *Store) UndoneExpenseSumsByAccount(ctx context.Context, from, to time.Time) (map[uuid.UUID]int64, error) {
	query := `
		SELECT m.account_id, COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN methods m ON e.method_id = m.id
		WHERE e.pay_date >= $1 AND e.pay_date <= $2 AND e.state <> $3
		GROUP BY m.account_id
	`

	return s.groupedSums(ctx, query, from, to)
}

func (s *Store) UndoneExpenseSumsByMethod(ctx context.Context, from, to time.Time) (map[uuid.UUID]int64, error) {
	query := `
		SELECT e.method_id, COALESCE(SUM(e.amount), 0)
		FROM expenses e
		WHERE e.pay_date >= $1 AND e.pay_date <= $2 AND e.state <> $3
		GROUP BY e.method_id
	`

	return s.groupedSums(ctx, query, from, to)
}

func (s *Store) groupedSums(ctx context.Context, query string, from, to time.Time) (map[uuid.UUID]int64, error) {
	rows, err := s.db.QueryContext(ctx, query, from, to, ledger.StateDone)
	if err != nil {
		return nil, fmt.Errorf("summing undone expenses: %w", err)
	}
	defer rows.Close()

	sums := make(map[uuid.UUID]int64)

	for rows.Next() {
		var id uuid.UUID

		var sum int64

		if err := rows.Scan(&id, &sum); err != nil {
			return nil, fmt.Errorf("scanning expense sum: %w", err)
		}

		sums[id] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense sum rows: %w", err)
	}

	return sums, nil
}

// MarkMethodExpensesDone runs as one transaction so a partial bulk update is
// never visible.
func (s *Store) MarkMethodExpensesDone(ctx context.Context, methodID uuid.UUID, from, to time.Time) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning bulk update: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE expenses
		SET state = $1, updated_at = NOW()
		WHERE method_id = $2 AND pay_date >= $3 AND pay_date <= $4 AND state <> $1
	`

	res, err := tx.ExecContext(ctx, query, ledger.StateDone, methodID, from, to)
	if err != nil {
		return 0, fmt.Errorf("marking method expenses done: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting updated rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing bulk update: %w", err)
	}

	return n, nil
}
