package entry

import (
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type methodResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type incomeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	PayDate   time.Time       `json:"pay_date"`
	MethodID  uuid.UUID       `json:"method_id"`
	Method    *methodResponse `json:"method,omitempty"`
	Amount    int64           `json:"amount"`
	State     ledger.State    `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

type expenseResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	PayDate    time.Time       `json:"pay_date"`
	PeriodDate *time.Time      `json:"period_date,omitempty"`
	MethodID   uuid.UUID       `json:"method_id"`
	Method     *methodResponse `json:"method,omitempty"`
	Amount     int64           `json:"amount"`
	State      ledger.State    `json:"state"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

func toMethodResponse(m *ledger.Method) *methodResponse {
	if m == nil {
		return nil
	}

	return &methodResponse{ID: m.ID, Name: m.Name}
}

func toIncomeResponse(inc *ledger.Income) incomeResponse {
	return incomeResponse{
		ID:        inc.ID,
		Name:      inc.Name,
		PayDate:   inc.PayDate,
		MethodID:  inc.MethodID,
		Method:    toMethodResponse(inc.Method),
		Amount:    inc.Amount,
		State:     inc.State,
		CreatedAt: inc.CreatedAt,
		UpdatedAt: inc.UpdatedAt,
	}
}

func toIncomeResponseList(incs []*ledger.Income) []incomeResponse {
	resp := make([]incomeResponse, len(incs))
	for i, inc := range incs {
		resp[i] = toIncomeResponse(inc)
	}

	return resp
}

func toExpenseResponse(exp *ledger.Expense) expenseResponse {
	return expenseResponse{
		ID:         exp.ID,
		Name:       exp.Name,
		PayDate:    exp.PayDate,
		PeriodDate: exp.PeriodDate,
		MethodID:   exp.MethodID,
		Method:     toMethodResponse(exp.Method),
		Amount:     exp.Amount,
		State:      exp.State,
		CreatedAt:  exp.CreatedAt,
		UpdatedAt:  exp.UpdatedAt,
	}
}

func toExpenseResponseList(exps []*ledger.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(exps))
	for i, exp := range exps {
		resp[i] = toExpenseResponse(exp)
	}

	return resp
}
