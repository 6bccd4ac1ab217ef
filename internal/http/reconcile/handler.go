// Package reconcile serves the payday checklist: how much each account and
// method still needs this period, and whether real balances match the
// ledger.
package reconcile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/balance"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
)

type Handler struct {
	calc *period.Calculator
	bal  *balance.Service
}

func NewHandler(calc *period.Calculator, bal *balance.Service) *Handler {
	return &Handler{calc: calc, bal: bal}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{year}/{month}/accounts", h.accountRequirements)
	r.Get("/{year}/{month}/methods", h.methodRequirements)
	r.Get("/{year}/{month}/discrepancy", h.discrepancy)
	r.Post("/{year}/{month}/methods/{id}/done", h.markMethodDone)
}

func (h *Handler) accountRequirements(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.periodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reqs, err := h.bal.AccountRequirements(r.Context(), year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toAccountRequirementList(reqs))
}

func (h *Handler) methodRequirements(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.periodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reqs, err := h.bal.MethodRequirements(r.Context(), year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toMethodRequirementList(reqs))
}

func (h *Handler) discrepancy(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.periodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.bal.Discrepancy(r.Context(), year, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toDiscrepancyResponse(report))
}

type markDoneResponse struct {
	Updated int64 `json:"updated"`
}

func (h *Handler) markMethodDone(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.periodParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	updated, err := h.bal.BulkMarkMethodDone(r.Context(), id, year, month)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "method not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, markDoneResponse{Updated: updated})
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
