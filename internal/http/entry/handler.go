package entry

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type Handler struct {
	svc      *ledger.Service
	validate *validator.Validate
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

// IncomeRoutes mounts the income endpoints.
func (h *Handler) IncomeRoutes(r chi.Router) {
	r.Post("/", h.createIncome)
	r.Get("/", h.listIncomes)
	r.Get("/{id}", h.getIncome)
	r.Patch("/{id}", h.updateIncome)
	r.Patch("/{id}/state", h.advanceIncomeState)
	r.Delete("/{id}", h.deleteIncome)
}

// ExpenseRoutes mounts the expense endpoints.
func (h *Handler) ExpenseRoutes(r chi.Router) {
	r.Post("/", h.createExpense)
	r.Get("/", h.listExpenses)
	r.Get("/{id}", h.getExpense)
	r.Patch("/{id}", h.updateExpense)
	r.Patch("/{id}/state", h.advanceExpenseState)
	r.Delete("/{id}", h.deleteExpense)
}

// writeEntryError maps domain sentinel errors onto HTTP statuses.
func writeEntryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "entry not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrDuplicateEntry):
		http.Error(w, "an entry with this name and pay date already exists", http.StatusConflict)
	case errors.Is(err, ledger.ErrPastPeriod):
		http.Error(w, "entries in closed periods cannot be modified", http.StatusConflict)
	case errors.Is(err, ledger.ErrStateTransition):
		http.Error(w, "entry state can only move forward", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createIncomeRequest struct {
	Name     string    `json:"name" validate:"required"`
	PayDate  time.Time `json:"pay_date" validate:"required"`
	MethodID uuid.UUID `json:"method_id" validate:"required"`
	Amount   int64     `json:"amount" validate:"gte=0"`
	State    string    `json:"state"`
}

func (h *Handler) createIncome(w http.ResponseWriter, r *http.Request) {
	var req createIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := parseState(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inc, err := h.svc.CreateIncome(r.Context(), ledger.IncomeParams{
		Name:     req.Name,
		PayDate:  req.PayDate,
		MethodID: req.MethodID,
		Amount:   req.Amount,
		State:    state,
	})
	if err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIncomeResponse(inc))
}

func (h *Handler) listIncomes(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	incs, err := h.svc.ListIncomes(r.Context(), filter)
	if err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toIncomeResponseList(incs))
}

func (h *Handler) getIncome(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inc, err := h.svc.GetIncome(r.Context(), id)
	if err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toIncomeResponse(inc))
}

type updateEntryRequest struct {
	Name       *string    `json:"name,omitempty"`
	PayDate    *time.Time `json:"pay_date,omitempty"`
	PeriodDate *time.Time `json:"period_date,omitempty"`
	MethodID   *uuid.UUID `json:"method_id,omitempty"`
	Amount     *int64     `json:"amount,omitempty"`
}

func (h *Handler) updateIncome(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inc, err := h.svc.GetIncome(r.Context(), id)
	if err != nil {
		writeEntryError(w, err)
		return
	}

	if req.Name != nil {
		inc.Name = *req.Name
	}

	if req.PayDate != nil {
		inc.PayDate = *req.PayDate
	}

	if req.MethodID != nil {
		inc.MethodID = *req.MethodID
	}

	if req.Amount != nil {
		inc.Amount = *req.Amount
	}

	if err := h.svc.UpdateIncome(r.Context(), inc); err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toIncomeResponse(inc))
}

type advanceStateRequest struct {
	State string `json:"state" validate:"required"`
}

func (h *Handler) advanceIncomeState(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req advanceStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := ledger.ParseState(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AdvanceIncomeState(r.Context(), id, state); err != nil {
		writeEntryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteIncome(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteIncome(r.Context(), id); err != nil {
		writeEntryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createExpenseRequest struct {
	Name       string     `json:"name" validate:"required"`
	PayDate    time.Time  `json:"pay_date" validate:"required"`
	PeriodDate *time.Time `json:"period_date,omitempty"`
	MethodID   uuid.UUID  `json:"method_id" validate:"required"`
	Amount     int64      `json:"amount" validate:"gte=0"`
	State      string     `json:"state"`
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := parseState(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exp, err := h.svc.CreateExpense(r.Context(), ledger.ExpenseParams{
		Name:       req.Name,
		PayDate:    req.PayDate,
		PeriodDate: req.PeriodDate,
		MethodID:   req.MethodID,
		Amount:     req.Amount,
		State:      state,
	})
	if err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(exp))
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exps, err := h.svc.ListExpenses(r.Context(), filter)
	if err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponseList(exps))
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	exp, err := h.svc.GetExpense(r.Context(), id)
	if err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(exp))
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exp, err := h.svc.GetExpense(r.Context(), id)
	if err != nil {
		writeEntryError(w, err)
		return
	}

	if req.Name != nil {
		exp.Name = *req.Name
	}

	if req.PayDate != nil {
		exp.PayDate = *req.PayDate
	}

	if req.PeriodDate != nil {
		exp.PeriodDate = req.PeriodDate
	}

	if req.MethodID != nil {
		exp.MethodID = *req.MethodID
	}

	if req.Amount != nil {
		exp.Amount = *req.Amount
	}

	if err := h.svc.UpdateExpense(r.Context(), exp); err != nil {
		writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(exp))
}

func (h *Handler) advanceExpenseState(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req advanceStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := ledger.ParseState(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AdvanceExpenseState(r.Context(), id, state); err != nil {
		writeEntryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		writeEntryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseState resolves the optional state field, defaulting new entries to
// decided.
func parseState(s string) (ledger.State, error) {
	if s == "" {
		return ledger.StateDecided, nil
	}

	return ledger.ParseState(s)
}

func filterFromQuery(r *http.Request) (ledger.EntryFilter, error) {
	filter := ledger.EntryFilter{}

	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, err
		}

		filter.From = &t
	}

	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, err
		}

		filter.To = &t
	}

	if s := r.URL.Query().Get("state"); s != "" {
		state, err := ledger.ParseState(s)
		if err != nil {
			return filter, err
		}

		filter.State = &state
	}

	if s := r.URL.Query().Get("method_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, err
		}

		filter.MethodID = &id
	}

	return filter, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
