package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/catalog"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type Handler struct {
	svc      *catalog.Service
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(svc *catalog.Service, now func() time.Time) *Handler {
	return &Handler{svc: svc, validate: validator.New(), now: now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/banks", func(r chi.Router) {
		r.Get("/", h.listBanks)
		r.Post("/", h.createBank)
		r.Delete("/{id}", h.deleteBank)
	})

	r.Route("/owners", func(r chi.Router) {
		r.Get("/", h.listOwners)
		r.Post("/", h.createOwner)
		r.Delete("/{id}", h.deleteOwner)
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.Post("/", h.createAccount)
		r.Patch("/{id}/balance", h.updateAccountBalance)
		r.Delete("/{id}", h.deleteAccount)
	})

	r.Route("/methods", func(r chi.Router) {
		r.Get("/", h.listMethods)
		r.Post("/", h.createMethod)
		r.Delete("/{id}", h.deleteMethod)
	})

	r.Route("/defaults/incomes", func(r chi.Router) {
		r.Get("/", h.listDefaultIncomes)
		r.Post("/", h.createDefaultIncome)
		r.Patch("/{id}", h.updateDefaultIncome)
		r.Delete("/{id}", h.deleteDefaultIncome)
	})

	r.Route("/defaults/expenses", func(r chi.Router) {
		r.Get("/", h.listDefaultExpenses)
		r.Post("/", h.createDefaultExpense)
		r.Patch("/{id}", h.updateDefaultExpense)
		r.Delete("/{id}", h.deleteDefaultExpense)
	})

	r.Route("/loans", func(r chi.Router) {
		r.Get("/", h.listLoans)
		r.Post("/", h.createLoan)
		r.Patch("/{id}", h.updateLoan)
		r.Delete("/{id}", h.deleteLoan)
	})

	r.Route("/templates", func(r chi.Router) {
		r.Get("/", h.listTemplateExpenses)
		r.Get("/suggestions", h.suggestions)
		r.Post("/", h.createTemplateExpense)
		r.Delete("/{id}", h.deleteTemplateExpense)
	})
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrDuplicateEntry):
		http.Error(w, "already exists", http.StatusConflict)
	case errors.Is(err, ledger.ErrReferenced):
		http.Error(w, "still referenced by other records", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.svc.ListBanks(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBankResponseList(banks))
}

func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bank, err := h.svc.CreateBank(r.Context(), req.Name)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBankResponse(bank))
}

func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteBank)
}

func (h *Handler) listOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.svc.ListOwners(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOwnerResponseList(owners))
}

func (h *Handler) createOwner(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	owner, err := h.svc.CreateOwner(r.Context(), req.Name)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOwnerResponse(owner))
}

func (h *Handler) deleteOwner(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteOwner)
}

type createAccountRequest struct {
	BankID  uuid.UUID `json:"bank_id" validate:"required"`
	OwnerID uuid.UUID `json:"owner_id" validate:"required"`
	Balance int64     `json:"balance" validate:"gte=0"`
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponseList(accounts))
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.svc.CreateAccount(r.Context(), req.BankID, req.OwnerID, req.Balance)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

type updateBalanceRequest struct {
	Balance int64 `json:"balance" validate:"gte=0"`
}

func (h *Handler) updateAccountBalance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateAccountBalance(r.Context(), id, req.Balance); err != nil {
		writeCatalogError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteAccount)
}

type createMethodRequest struct {
	Name      string    `json:"name" validate:"required"`
	AccountID uuid.UUID `json:"account_id" validate:"required"`
}

func (h *Handler) listMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.svc.ListMethods(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMethodResponseList(methods))
}

func (h *Handler) createMethod(w http.ResponseWriter, r *http.Request) {
	var req createMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	method, err := h.svc.CreateMethod(r.Context(), req.Name, req.AccountID)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMethodResponse(method))
}

func (h *Handler) deleteMethod(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteMethod)
}

type defaultIncomeRequest struct {
	Name      string    `json:"name" validate:"required"`
	PayDay    int       `json:"pay_day" validate:"min=1,max=28"`
	MethodID  uuid.UUID `json:"method_id" validate:"required"`
	Amount    int64     `json:"amount" validate:"gte=0"`
	Undecided bool      `json:"undecided"`
	Months    []int     `json:"months" validate:"required,min=1,dive,min=1,max=12"`
}

func (h *Handler) listDefaultIncomes(w http.ResponseWriter, r *http.Request) {
	defs, err := h.svc.ListDefaultIncomes(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefaultIncomeResponseList(defs))
}

func (h *Handler) createDefaultIncome(w http.ResponseWriter, r *http.Request) {
	var req defaultIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def := &ledger.DefaultIncome{
		Name:      req.Name,
		PayDay:    req.PayDay,
		MethodID:  req.MethodID,
		Amount:    req.Amount,
		Undecided: req.Undecided,
		Months:    req.Months,
	}

	if err := h.svc.CreateDefaultIncome(r.Context(), def); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDefaultIncomeResponse(def))
}

func (h *Handler) updateDefaultIncome(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req defaultIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def := &ledger.DefaultIncome{
		ID:        id,
		Name:      req.Name,
		PayDay:    req.PayDay,
		MethodID:  req.MethodID,
		Amount:    req.Amount,
		Undecided: req.Undecided,
		Months:    req.Months,
	}

	if err := h.svc.UpdateDefaultIncome(r.Context(), def); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefaultIncomeResponse(def))
}

func (h *Handler) deleteDefaultIncome(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteDefaultIncome)
}

type defaultExpenseRequest struct {
	Name      string    `json:"name" validate:"required"`
	PayDay    int       `json:"pay_day" validate:"min=1,max=28"`
	PeriodDay *int      `json:"period_day,omitempty" validate:"omitempty,min=1,max=28"`
	MethodID  uuid.UUID `json:"method_id" validate:"required"`
	Amount    int64     `json:"amount" validate:"gte=0"`
	Undecided bool      `json:"undecided"`
	Months    []int     `json:"months" validate:"required,min=1,dive,min=1,max=12"`
}

func (h *Handler) listDefaultExpenses(w http.ResponseWriter, r *http.Request) {
	defs, err := h.svc.ListDefaultExpenses(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefaultExpenseResponseList(defs))
}

func (h *Handler) createDefaultExpense(w http.ResponseWriter, r *http.Request) {
	var req defaultExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def := &ledger.DefaultExpense{
		Name:      req.Name,
		PayDay:    req.PayDay,
		PeriodDay: req.PeriodDay,
		MethodID:  req.MethodID,
		Amount:    req.Amount,
		Undecided: req.Undecided,
		Months:    req.Months,
	}

	if err := h.svc.CreateDefaultExpense(r.Context(), def); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDefaultExpenseResponse(def))
}

func (h *Handler) updateDefaultExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req defaultExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def := &ledger.DefaultExpense{
		ID:        id,
		Name:      req.Name,
		PayDay:    req.PayDay,
		PeriodDay: req.PeriodDay,
		MethodID:  req.MethodID,
		Amount:    req.Amount,
		Undecided: req.Undecided,
		Months:    req.Months,
	}

	if err := h.svc.UpdateDefaultExpense(r.Context(), def); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefaultExpenseResponse(def))
}

func (h *Handler) deleteDefaultExpense(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteDefaultExpense)
}

type loanRequest struct {
	Name             string    `json:"name" validate:"required"`
	PayDay           int       `json:"pay_day" validate:"min=1,max=28"`
	MethodID         uuid.UUID `json:"method_id" validate:"required"`
	AmountFirst      int64     `json:"amount_first" validate:"gte=0"`
	AmountFromSecond int64     `json:"amount_from_second" validate:"gte=0"`
	FirstYear        int       `json:"first_year" validate:"required"`
	FirstMonth       int       `json:"first_month" validate:"min=1,max=12"`
	LastYear         int       `json:"last_year" validate:"required"`
	LastMonth        int       `json:"last_month" validate:"min=1,max=12"`
}

func (req loanRequest) toLoan(id uuid.UUID) *ledger.Loan {
	return &ledger.Loan{
		ID:               id,
		Name:             req.Name,
		PayDay:           req.PayDay,
		MethodID:         req.MethodID,
		AmountFirst:      req.AmountFirst,
		AmountFromSecond: req.AmountFromSecond,
		FirstYear:        req.FirstYear,
		FirstMonth:       req.FirstMonth,
		LastYear:         req.LastYear,
		LastMonth:        req.LastMonth,
	}
}

func (h *Handler) listLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.ListLoans(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLoanResponseList(loans))
}

func (h *Handler) createLoan(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	loan := req.toLoan(uuid.Nil)

	if err := h.svc.CreateLoan(r.Context(), loan); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLoanResponse(loan))
}

func (h *Handler) updateLoan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	loan := req.toLoan(id)

	if err := h.svc.UpdateLoan(r.Context(), loan); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLoanResponse(loan))
}

func (h *Handler) deleteLoan(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteLoan)
}

type templateExpenseRequest struct {
	Name      string    `json:"name" validate:"required"`
	MethodID  uuid.UUID `json:"method_id" validate:"required"`
	Undecided bool      `json:"undecided"`
	DateMode  string    `json:"date_mode" validate:"required,oneof=today later"`
	PayDay    *int      `json:"pay_day,omitempty" validate:"omitempty,min=1,max=28"`
	LimitDay  *int      `json:"limit_day,omitempty" validate:"omitempty,min=1,max=31"`
}

func (h *Handler) listTemplateExpenses(w http.ResponseWriter, r *http.Request) {
	tpls, err := h.svc.ListTemplateExpenses(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTemplateExpenseResponseList(tpls))
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.svc.Suggestions(r.Context(), h.now())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionResponseList(suggestions))
}

func (h *Handler) createTemplateExpense(w http.ResponseWriter, r *http.Request) {
	var req templateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tpl := &ledger.TemplateExpense{
		Name:      req.Name,
		MethodID:  req.MethodID,
		Undecided: req.Undecided,
		DateMode:  ledger.TemplateDateMode(req.DateMode),
		PayDay:    req.PayDay,
		LimitDay:  req.LimitDay,
	}

	if err := h.svc.CreateTemplateExpense(r.Context(), tpl); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTemplateExpenseResponse(tpl))
}

func (h *Handler) deleteTemplateExpense(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteTemplateExpense)
}

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := del(r.Context(), id); err != nil {
		writeCatalogError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
