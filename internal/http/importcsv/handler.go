package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/importer"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type Handler struct {
	importSvc *importer.Service
	entrySvc  *ledger.Service
}

func NewHandler(importSvc *importer.Service, entrySvc *ledger.Service) *Handler {
	return &Handler{importSvc: importSvc, entrySvc: entrySvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedEntry struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	PayDate time.Time `json:"pay_date"`
	Amount  int64     `json:"amount"`
	Kind    string    `json:"kind"` // income or expense
}

type skippedRow struct {
	Name    string    `json:"name"`
	PayDate time.Time `json:"pay_date"`
	Amount  int64     `json:"amount"`
	Reason  string    `json:"reason"`
}

type importResponse struct {
	Imported []importedEntry `json:"imported"`
	Skipped  []skippedRow    `json:"skipped"`
}

// importCSV parses an uploaded statement and records its rows as entries.
// Rows colliding with an existing (name, pay date) pair are reported as
// skipped rather than failing the whole upload, so re-importing an
// overlapping statement is harmless.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		http.Error(w, "source field is required", http.StatusBadRequest)
		return
	}

	methodID, err := uuid.Parse(r.FormValue("method_id"))
	if err != nil {
		http.Error(w, "method_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importResponse{
		Imported: []importedEntry{},
		Skipped:  []skippedRow{},
	}

	for _, row := range rows {
		entry, err := h.createEntry(r, methodID, row)
		if err != nil {
			if errors.Is(err, ledger.ErrDuplicateEntry) {
				resp.Skipped = append(resp.Skipped, skippedRow{
					Name:    row.Description,
					PayDate: row.Date,
					Amount:  row.Amount,
					Reason:  "duplicate",
				})

				continue
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		resp.Imported = append(resp.Imported, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) createEntry(r *http.Request, methodID uuid.UUID, row importer.Row) (importedEntry, error) {
	if row.Withdrawal {
		exp, err := h.entrySvc.CreateExpense(r.Context(), ledger.ExpenseParams{
			Name:     row.Description,
			PayDate:  row.Date,
			MethodID: methodID,
			Amount:   row.Amount,
			State:    ledger.StateDone,
		})
		if err != nil {
			return importedEntry{}, err
		}

		return importedEntry{
			ID:      exp.ID,
			Name:    exp.Name,
			PayDate: exp.PayDate,
			Amount:  exp.Amount,
			Kind:    "expense",
		}, nil
	}

	inc, err := h.entrySvc.CreateIncome(r.Context(), ledger.IncomeParams{
		Name:     row.Description,
		PayDate:  row.Date,
		MethodID: methodID,
		Amount:   row.Amount,
		State:    ledger.StateDone,
	})
	if err != nil {
		return importedEntry{}, err
	}

	return importedEntry{
		ID:      inc.ID,
		Name:    inc.Name,
		PayDate: inc.PayDate,
		Amount:  inc.Amount,
		Kind:    "income",
	}, nil
}
