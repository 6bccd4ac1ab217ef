package period

import (
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/balance"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type periodResponse struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}

type entryRow struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	PayDate    time.Time    `json:"pay_date"`
	PeriodDate *time.Time   `json:"period_date,omitempty"`
	MethodName string       `json:"method_name,omitempty"`
	Amount     int64        `json:"amount"`
	State      ledger.State `json:"state"`
}

type discrepancyResponse struct {
	AccountBalanceSum int64 `json:"account_balance_sum"`
	LedgerDoneBalance int64 `json:"ledger_done_balance"`
	Diff              int64 `json:"diff"`
}

type periodRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type accountRow struct {
	ID                 uuid.UUID `json:"id"`
	BankName           string    `json:"bank_name"`
	OwnerName          string    `json:"owner_name"`
	Balance            int64     `json:"balance"`
	Requirement        int64     `json:"requirement"`
	IsInsufficient     bool      `json:"is_insufficient"`
	InsufficientAmount int64     `json:"insufficient_amount"`
}

type tableResponse struct {
	Period            periodResponse      `json:"period"`
	Prev              periodRef           `json:"prev"`
	Next              periodRef           `json:"next"`
	Incomes           []entryRow          `json:"incomes"`
	Expenses          []entryRow          `json:"expenses"`
	IncomeSum         int64               `json:"income_sum"`
	ExpenseSum        int64               `json:"expense_sum"`
	MonthBalance      int64               `json:"month_balance"`
	LastMonthBalance  int64               `json:"last_month_balance"`
	CumulativeBalance int64               `json:"cumulative_balance"`
	Accounts          []accountRow        `json:"accounts"`
	Discrepancy       discrepancyResponse `json:"discrepancy"`
}

func toAccountRows(reqs []balance.AccountRequirement) []accountRow {
	rows := make([]accountRow, len(reqs))

	for i, ar := range reqs {
		rows[i] = accountRow{
			ID:                 ar.Account.ID,
			Balance:            ar.Account.Balance,
			Requirement:        ar.Requirement,
			IsInsufficient:     ar.IsInsufficient,
			InsufficientAmount: ar.InsufficientAmount,
		}

		if ar.Account.Bank != nil {
			rows[i].BankName = ar.Account.Bank.Name
		}

		if ar.Account.Owner != nil {
			rows[i].OwnerName = ar.Account.Owner.Name
		}
	}

	return rows
}

func toIncomeRows(incs []*ledger.Income) []entryRow {
	rows := make([]entryRow, len(incs))

	for i, inc := range incs {
		rows[i] = entryRow{
			ID:      inc.ID,
			Name:    inc.Name,
			PayDate: inc.PayDate,
			Amount:  inc.Amount,
			State:   inc.State,
		}

		if inc.Method != nil {
			rows[i].MethodName = inc.Method.Name
		}
	}

	return rows
}

func toExpenseRows(exps []*ledger.Expense) []entryRow {
	rows := make([]entryRow, len(exps))

	for i, exp := range exps {
		rows[i] = entryRow{
			ID:         exp.ID,
			Name:       exp.Name,
			PayDate:    exp.PayDate,
			PeriodDate: exp.PeriodDate,
			Amount:     exp.Amount,
			State:      exp.State,
		}

		if exp.Method != nil {
			rows[i].MethodName = exp.Method.Name
		}
	}

	return rows
}

func toDiscrepancyResponse(d balance.DiscrepancyReport) discrepancyResponse {
	return discrepancyResponse{
		AccountBalanceSum: d.AccountBalanceSum,
		LedgerDoneBalance: d.LedgerDoneBalance,
		Diff:              d.Diff,
	}
}
