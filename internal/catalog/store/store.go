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

type scanner interface {
	Scan(dest ...any) error
}

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

func checkAffected(res sql.Result) error {
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) ListBanks(ctx context.Context) ([]*ledger.Bank, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM banks ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing banks: %w", err)
	}
	defer rows.Close()

	var banks []*ledger.Bank

	for rows.Next() {
		var b ledger.Bank
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scanning bank: %w", err)
		}

		banks = append(banks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank rows: %w", err)
	}

	return banks, nil
}

func (s *Store) CreateBank(ctx context.Context, bank *ledger.Bank) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO banks (name) VALUES ($1) RETURNING id`,
		bank.Name,
	).Scan(&bank.ID)
	if err != nil {
		return fmt.Errorf("creating bank: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) DeleteBank(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting bank: %w", mapConstraintErr(err))
	}

	return checkAffected(res)
}

func (s *Store) ListOwners(ctx context.Context) ([]*ledger.Owner, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM owners ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	defer rows.Close()

	var owners []*ledger.Owner

	for rows.Next() {
		var o ledger.Owner
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scanning owner: %w", err)
		}

		owners = append(owners, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating owner rows: %w", err)
	}

	return owners, nil
}

func (s *Store) CreateOwner(ctx context.Context, owner *ledger.Owner) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO owners (name) VALUES ($1) RETURNING id`,
		owner.Name,
	).Scan(&owner.ID)
	if err != nil {
		return fmt.Errorf("creating owner: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting owner: %w", mapConstraintErr(err))
	}

	return checkAffected(res)
}

func scanAccount(s scanner) (*ledger.Account, error) {
	var a ledger.Account

	var bankName, ownerName string

	if err := s.Scan(&a.ID, &a.BankID, &a.OwnerID, &a.Balance, &bankName, &ownerName); err != nil {
		return nil, err
	}

	a.Bank = &ledger.Bank{ID: a.BankID, Name: bankName}
	a.Owner = &ledger.Owner{ID: a.OwnerID, Name: ownerName}

	return &a, nil
}

const selectAccountColumns = `
	a.id, a.bank_id, a.owner_id, a.balance, b.name AS bank_name, o.name AS owner_name
`

func (s *Store) ListAccounts(ctx context.Context) ([]*ledger.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts a
		JOIN banks b ON a.bank_id = b.id
		JOIN owners o ON a.owner_id = o.id
		ORDER BY b.name ASC, o.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*ledger.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) CreateAccount(ctx context.Context, account *ledger.Account) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO accounts (bank_id, owner_id, balance) VALUES ($1, $2, $3) RETURNING id`,
		account.BankID,
		account.OwnerID,
		account.Balance,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("creating account: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET balance = $1 WHERE id = $2`,
		balance,
		id,
	)
	if err != nil {
		return fmt.Errorf("updating account balance: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", mapConstraintErr(err))
	}

	return checkAffected(res)
}

func (s *Store) ListMethods(ctx context.Context) ([]*ledger.Method, error) {
	query := `
		SELECT m.id, m.name, m.account_id, b.name AS bank_name, o.name AS owner_name
		FROM methods m
		JOIN accounts a ON m.account_id = a.id
		JOIN banks b ON a.bank_id = b.id
		JOIN owners o ON a.owner_id = o.id
		ORDER BY m.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing methods: %w", err)
	}
	defer rows.Close()

	var methods []*ledger.Method

	for rows.Next() {
		var m ledger.Method

		var bankName, ownerName string

		if err := rows.Scan(&m.ID, &m.Name, &m.AccountID, &bankName, &ownerName); err != nil {
			return nil, fmt.Errorf("scanning method: %w", err)
		}

		m.Account = &ledger.Account{
			ID:    m.AccountID,
			Bank:  &ledger.Bank{Name: bankName},
			Owner: &ledger.Owner{Name: ownerName},
		}

		methods = append(methods, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating method rows: %w", err)
	}

	return methods, nil
}

func (s *Store) CreateMethod(ctx context.Context, method *ledger.Method) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO methods (name, account_id) VALUES ($1, $2) RETURNING id`,
		method.Name,
		method.AccountID,
	).Scan(&method.ID)
	if err != nil {
		return fmt.Errorf("creating method: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting method: %w", mapConstraintErr(err))
	}

	return checkAffected(res)
}

// loadMonths fetches the applicable-month sets for a whole template table
// in one query, keyed by template id.
func (s *Store) loadMonths(ctx context.Context, table, column string) (map[uuid.UUID][]int, error) {
	query := fmt.Sprintf(`SELECT %s, month FROM %s ORDER BY month ASC`, column, table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	months := make(map[uuid.UUID][]int)

	for rows.Next() {
		var id uuid.UUID

		var m int

		if err := rows.Scan(&id, &m); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}

		months[id] = append(months[id], m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}

	return months, nil
}

func (s *Store) ListDefaultIncomes(ctx context.Context) ([]*ledger.DefaultIncome, error) {
	query := `
		SELECT d.id, d.name, d.pay_day, d.method_id, d.amount, d.undecided, m.name AS method_name
		FROM default_incomes d
		JOIN methods m ON d.method_id = m.id
		ORDER BY d.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing default incomes: %w", err)
	}
	defer rows.Close()

	var defs []*ledger.DefaultIncome

	for rows.Next() {
		var d ledger.DefaultIncome

		var methodName string

		if err := rows.Scan(&d.ID, &d.Name, &d.PayDay, &d.MethodID, &d.Amount, &d.Undecided, &methodName); err != nil {
			return nil, fmt.Errorf("scanning default income: %w", err)
		}

		d.Method = &ledger.Method{ID: d.MethodID, Name: methodName}

		defs = append(defs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating default income rows: %w", err)
	}

	months, err := s.loadMonths(ctx, "default_income_months", "default_income_id")
	if err != nil {
		return nil, err
	}

	for _, d := range defs {
		d.Months = months[d.ID]
	}

	return defs, nil
}

func (s *Store) CreateDefaultIncome(ctx context.Context, def *ledger.DefaultIncome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO default_incomes (name, pay_day, method_id, amount, undecided)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		def.Name, def.PayDay, def.MethodID, def.Amount, def.Undecided,
	).Scan(&def.ID)
	if err != nil {
		return fmt.Errorf("creating default income: %w", mapConstraintErr(err))
	}

	if err := insertMonths(ctx, tx, "default_income_months", "default_income_id", def.ID, def.Months); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing default income: %w", err)
	}

	return nil
}

func (s *Store) UpdateDefaultIncome(ctx context.Context, def *ledger.DefaultIncome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE default_incomes
		SET name = $1, pay_day = $2, method_id = $3, amount = $4, undecided = $5
		WHERE id = $6`,
		def.Name, def.PayDay, def.MethodID, def.Amount, def.Undecided, def.ID,
	)
	if err != nil {
		return fmt.Errorf("updating default income: %w", mapConstraintErr(err))
	}

	if err := checkAffected(res); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM default_income_months WHERE default_income_id = $1`, def.ID,
	); err != nil {
		return fmt.Errorf("clearing default income months: %w", err)
	}

	if err := insertMonths(ctx, tx, "default_income_months", "default_income_id", def.ID, def.Months); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing default income: %w", err)
	}

	return nil
}

func (s *Store) DeleteDefaultIncome(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM default_incomes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting default income: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) ListDefaultExpenses(ctx context.Context) ([]*ledger.DefaultExpense, error) {
	query := `
		SELECT d.id, d.name, d.pay_day, d.period_day, d.method_id, d.amount, d.undecided,
			m.name AS method_name
		FROM default_expenses d
		JOIN methods m ON d.method_id = m.id
		ORDER BY d.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing default expenses: %w", err)
	}
	defer rows.Close()

	var defs []*ledger.DefaultExpense

	for rows.Next() {
		var d ledger.DefaultExpense

		var periodDay sql.NullInt64

		var methodName string

		if err := rows.Scan(&d.ID, &d.Name, &d.PayDay, &periodDay, &d.MethodID, &d.Amount, &d.Undecided, &methodName); err != nil {
			return nil, fmt.Errorf("scanning default expense: %w", err)
		}

		if periodDay.Valid {
			day := int(periodDay.Int64)
			d.PeriodDay = &day
		}

		d.Method = &ledger.Method{ID: d.MethodID, Name: methodName}

		defs = append(defs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating default expense rows: %w", err)
	}

	months, err := s.loadMonths(ctx, "default_expense_months", "default_expense_id")
	if err != nil {
		return nil, err
	}

	for _, d := range defs {
		d.Months = months[d.ID]
	}

	return defs, nil
}

func (s *Store) CreateDefaultExpense(ctx context.Context, def *ledger.DefaultExpense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO default_expenses (name, pay_day, period_day, method_id, amount, undecided)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		def.Name, def.PayDay, def.PeriodDay, def.MethodID, def.Amount, def.Undecided,
	).Scan(&def.ID)
	if err != nil {
		return fmt.Errorf("creating default expense: %w", mapConstraintErr(err))
	}

	if err := insertMonths(ctx, tx, "default_expense_months", "default_expense_id", def.ID, def.Months); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing default expense: %w", err)
	}

	return nil
}

func (s *Store) UpdateDefaultExpense(ctx context.Context, def *ledger.DefaultExpense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE default_expenses
		SET name = $1, pay_day = $2, period_day = $3, method_id = $4, amount = $5, undecided = $6
		WHERE id = $7`,
		def.Name, def.PayDay, def.PeriodDay, def.MethodID, def.Amount, def.Undecided, def.ID,
	)
	if err != nil {
		return fmt.Errorf("updating default expense: %w", mapConstraintErr(err))
	}

	if err := checkAffected(res); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM default_expense_months WHERE default_expense_id = $1`, def.ID,
	); err != nil {
		return fmt.Errorf("clearing default expense months: %w", err)
	}

	if err := insertMonths(ctx, tx, "default_expense_months", "default_expense_id", def.ID, def.Months); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing default expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteDefaultExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM default_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting default expense: %w", err)
	}

	return checkAffected(res)
}

func insertMonths(ctx context.Context, tx *sql.Tx, table, column string, id uuid.UUID, months []int) error {
	for _, m := range months {
		query := fmt.Sprintf(`INSERT INTO %s (%s, month) VALUES ($1, $2)`, table, column)
		if _, err := tx.ExecContext(ctx, query, id, m); err != nil {
			return fmt.Errorf("inserting month %d: %w", m, mapConstraintErr(err))
		}
	}

	return nil
}

func scanLoan(s scanner) (*ledger.Loan, error) {
	var l ledger.Loan

	var methodName string

	if err := s.Scan(
		&l.ID, &l.Name, &l.PayDay, &l.MethodID, &l.AmountFirst, &l.AmountFromSecond,
		&l.FirstYear, &l.FirstMonth, &l.LastYear, &l.LastMonth, &methodName,
	); err != nil {
		return nil, err
	}

	l.Method = &ledger.Method{ID: l.MethodID, Name: methodName}

	return &l, nil
}

func (s *Store) ListLoans(ctx context.Context) ([]*ledger.Loan, error) {
	query := `
		SELECT l.id, l.name, l.pay_day, l.method_id, l.amount_first, l.amount_from_second,
			l.first_year, l.first_month, l.last_year, l.last_month, m.name AS method_name
		FROM loans l
		JOIN methods m ON l.method_id = m.id
		ORDER BY l.first_year ASC, l.first_month ASC, l.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}
	defer rows.Close()

	var loans []*ledger.Loan

	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning loan: %w", err)
		}

		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loan rows: %w", err)
	}

	return loans, nil
}

func (s *Store) CreateLoan(ctx context.Context, loan *ledger.Loan) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO loans (name, pay_day, method_id, amount_first, amount_from_second,
			first_year, first_month, last_year, last_month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		loan.Name, loan.PayDay, loan.MethodID, loan.AmountFirst, loan.AmountFromSecond,
		loan.FirstYear, loan.FirstMonth, loan.LastYear, loan.LastMonth,
	).Scan(&loan.ID)
	if err != nil {
		return fmt.Errorf("creating loan: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) UpdateLoan(ctx context.Context, loan *ledger.Loan) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE loans
		SET name = $1, pay_day = $2, method_id = $3, amount_first = $4, amount_from_second = $5,
			first_year = $6, first_month = $7, last_year = $8, last_month = $9
		WHERE id = $10`,
		loan.Name, loan.PayDay, loan.MethodID, loan.AmountFirst, loan.AmountFromSecond,
		loan.FirstYear, loan.FirstMonth, loan.LastYear, loan.LastMonth, loan.ID,
	)
	if err != nil {
		return fmt.Errorf("updating loan: %w", mapConstraintErr(err))
	}

	return checkAffected(res)
}

func (s *Store) DeleteLoan(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting loan: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) ListTemplateExpenses(ctx context.Context) ([]*ledger.TemplateExpense, error) {
	query := `
		SELECT t.id, t.name, t.method_id, t.undecided, t.date_mode, t.pay_day, t.limit_day,
			m.name AS method_name
		FROM template_expenses t
		JOIN methods m ON t.method_id = m.id
		ORDER BY t.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing template expenses: %w", err)
	}
	defer rows.Close()

	var tpls []*ledger.TemplateExpense

	for rows.Next() {
		var t ledger.TemplateExpense

		var dateMode string

		var payDay, limitDay sql.NullInt64

		var methodName string

		if err := rows.Scan(&t.ID, &t.Name, &t.MethodID, &t.Undecided, &dateMode, &payDay, &limitDay, &methodName); err != nil {
			return nil, fmt.Errorf("scanning template expense: %w", err)
		}

		t.DateMode = ledger.TemplateDateMode(dateMode)

		if payDay.Valid {
			d := int(payDay.Int64)
			t.PayDay = &d
		}

		if limitDay.Valid {
			d := int(limitDay.Int64)
			t.LimitDay = &d
		}

		t.Method = &ledger.Method{ID: t.MethodID, Name: methodName}

		tpls = append(tpls, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template expense rows: %w", err)
	}

	return tpls, nil
}

func (s *Store) CreateTemplateExpense(ctx context.Context, tpl *ledger.TemplateExpense) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO template_expenses (name, method_id, undecided, date_mode, pay_day, limit_day)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		tpl.Name, tpl.MethodID, tpl.Undecided, tpl.DateMode, tpl.PayDay, tpl.LimitDay,
	).Scan(&tpl.ID)
	if err != nil {
		return fmt.Errorf("creating template expense: %w", mapConstraintErr(err))
	}

	return nil
}

func (s *Store) DeleteTemplateExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM template_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting template expense: %w", err)
	}

	return checkAffected(res)
}
