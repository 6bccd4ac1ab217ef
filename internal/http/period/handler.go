// Package period serves the monthly table view: the single screen the
// household checks daily, combining the period's entries with running
// balances and reconciliation status.
package period

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kakeibo-app/kakeibo/internal/balance"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
	"github.com/kakeibo-app/kakeibo/internal/recurrence"
)

type Handler struct {
	calc    *period.Calculator
	entries *ledger.Service
	rec     *recurrence.Service
	bal     *balance.Service
	now     func() time.Time
}

func NewHandler(
	calc *period.Calculator,
	entries *ledger.Service,
	rec *recurrence.Service,
	bal *balance.Service,
	now func() time.Time,
) *Handler {
	return &Handler{calc: calc, entries: entries, rec: rec, bal: bal, now: now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/current", h.current)
	r.Get("/{year}/{month}/table", h.table)
	r.Post("/{year}/{month}/materialize", h.materialize)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	year, month := h.calc.Resolve(h.now())

	first, last, err := h.calc.FirstAndLastDate(year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, periodResponse{
		Year:      year,
		Month:     month,
		FirstDate: first,
		LastDate:  last,
	})
}

// table builds the full monthly view. Recurring templates are materialized
// on the way in, so simply opening a month fills in its expected entries.
func (h *Handler) table(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.periodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	if h.rec.CanMaterialize(year, month) {
		if _, err := h.rec.MaterializeAll(ctx, year, month); err != nil {
			slog.Error("failed to materialize period", "year", year, "month", month, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}
	}

	first, last, err := h.calc.FirstAndLastDate(year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	incomes, err := h.entries.ListPeriodIncomes(ctx, year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	expenses, err := h.entries.ListPeriodExpenses(ctx, year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	prevYear, prevMonth := period.AddMonths(year, month, -1)

	lastMonthBalance, err := h.bal.CumulativeBalance(ctx, prevYear, prevMonth)
	if err != nil && !errors.Is(err, period.ErrInvalidPeriod) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	cumulative, err := h.bal.CumulativeBalance(ctx, year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	accounts, err := h.bal.AccountRequirements(ctx, year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	discrepancy, err := h.bal.Discrepancy(ctx, year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	nextYear, nextMonth := period.AddMonths(year, month, 1)

	incomeSum := balance.SumIncomeAmounts(incomes)
	expenseSum := balance.SumExpenseAmounts(expenses)

	writeJSON(w, http.StatusOK, tableResponse{
		Period: periodResponse{
			Year:      year,
			Month:     month,
			FirstDate: first,
			LastDate:  last,
		},
		Prev:              periodRef{Year: prevYear, Month: prevMonth},
		Next:              periodRef{Year: nextYear, Month: nextMonth},
		Incomes:           toIncomeRows(incomes),
		Expenses:          toExpenseRows(expenses),
		IncomeSum:         incomeSum,
		ExpenseSum:        expenseSum,
		MonthBalance:      incomeSum - expenseSum,
		LastMonthBalance:  lastMonthBalance,
		CumulativeBalance: cumulative,
		Accounts:          toAccountRows(accounts),
		Discrepancy:       toDiscrepancyResponse(discrepancy),
	})
}

type materializeResponse struct {
	Incomes      int `json:"incomes"`
	Expenses     int `json:"expenses"`
	LoanExpenses int `json:"loan_expenses"`
}

func (h *Handler) materialize(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.periodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.rec.MaterializeAll(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, ledger.ErrPastPeriod) {
			http.Error(w, "past periods cannot be materialized", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, materializeResponse{
		Incomes:      result.Incomes,
		Expenses:     result.Expenses,
		LoanExpenses: result.LoanExpenses,
	})
}

func (h *Handler) periodParams(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, errors.New("invalid year")
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, errors.New("invalid month")
	}

	if err := h.calc.Validate(year, month); err != nil {
		return 0, 0, err
	}

	return year, month, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
