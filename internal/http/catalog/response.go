package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/catalog"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

type bankResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ownerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	BankID    uuid.UUID `json:"bank_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	BankName  string    `json:"bank_name,omitempty"`
	OwnerName string    `json:"owner_name,omitempty"`
	Balance   int64     `json:"balance"`
}

type methodResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AccountID uuid.UUID `json:"account_id"`
	BankName  string    `json:"bank_name,omitempty"`
	OwnerName string    `json:"owner_name,omitempty"`
}

type defaultIncomeResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PayDay     int       `json:"pay_day"`
	MethodID   uuid.UUID `json:"method_id"`
	MethodName string    `json:"method_name,omitempty"`
	Amount     int64     `json:"amount"`
	Undecided  bool      `json:"undecided"`
	Months     []int     `json:"months"`
}

type defaultExpenseResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PayDay     int       `json:"pay_day"`
	PeriodDay  *int      `json:"period_day,omitempty"`
	MethodID   uuid.UUID `json:"method_id"`
	MethodName string    `json:"method_name,omitempty"`
	Amount     int64     `json:"amount"`
	Undecided  bool      `json:"undecided"`
	Months     []int     `json:"months"`
}

type loanResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PayDay           int       `json:"pay_day"`
	MethodID         uuid.UUID `json:"method_id"`
	MethodName       string    `json:"method_name,omitempty"`
	AmountFirst      int64     `json:"amount_first"`
	AmountFromSecond int64     `json:"amount_from_second"`
	FirstYear        int       `json:"first_year"`
	FirstMonth       int       `json:"first_month"`
	LastYear         int       `json:"last_year"`
	LastMonth        int       `json:"last_month"`
}

type templateExpenseResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	MethodID   uuid.UUID `json:"method_id"`
	MethodName string    `json:"method_name,omitempty"`
	Undecided  bool      `json:"undecided"`
	DateMode   string    `json:"date_mode"`
	PayDay     *int      `json:"pay_day,omitempty"`
	LimitDay   *int      `json:"limit_day,omitempty"`
}

type suggestionResponse struct {
	Template  templateExpenseResponse `json:"template"`
	PayDate   time.Time               `json:"pay_date"`
	Undecided bool                    `json:"undecided"`
}

func toBankResponse(b *ledger.Bank) bankResponse {
	return bankResponse{ID: b.ID, Name: b.Name}
}

func toBankResponseList(banks []*ledger.Bank) []bankResponse {
	resp := make([]bankResponse, len(banks))
	for i, b := range banks {
		resp[i] = toBankResponse(b)
	}

	return resp
}

func toOwnerResponse(o *ledger.Owner) ownerResponse {
	return ownerResponse{ID: o.ID, Name: o.Name}
}

func toOwnerResponseList(owners []*ledger.Owner) []ownerResponse {
	resp := make([]ownerResponse, len(owners))
	for i, o := range owners {
		resp[i] = toOwnerResponse(o)
	}

	return resp
}

func toAccountResponse(a *ledger.Account) accountResponse {
	resp := accountResponse{
		ID:      a.ID,
		BankID:  a.BankID,
		OwnerID: a.OwnerID,
		Balance: a.Balance,
	}

	if a.Bank != nil {
		resp.BankName = a.Bank.Name
	}

	if a.Owner != nil {
		resp.OwnerName = a.Owner.Name
	}

	return resp
}

func toAccountResponseList(accounts []*ledger.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toAccountResponse(a)
	}

	return resp
}

func toMethodResponse(m *ledger.Method) methodResponse {
	resp := methodResponse{
		ID:        m.ID,
		Name:      m.Name,
		AccountID: m.AccountID,
	}

	if m.Account != nil {
		if m.Account.Bank != nil {
			resp.BankName = m.Account.Bank.Name
		}

		if m.Account.Owner != nil {
			resp.OwnerName = m.Account.Owner.Name
		}
	}

	return resp
}

func toMethodResponseList(methods []*ledger.Method) []methodResponse {
	resp := make([]methodResponse, len(methods))
	for i, m := range methods {
		resp[i] = toMethodResponse(m)
	}

	return resp
}

func toDefaultIncomeResponse(d *ledger.DefaultIncome) defaultIncomeResponse {
	resp := defaultIncomeResponse{
		ID:        d.ID,
		Name:      d.Name,
		PayDay:    d.PayDay,
		MethodID:  d.MethodID,
		Amount:    d.Amount,
		Undecided: d.Undecided,
		Months:    d.Months,
	}

	if d.Method != nil {
		resp.MethodName = d.Method.Name
	}

	return resp
}

func toDefaultIncomeResponseList(defs []*ledger.DefaultIncome) []defaultIncomeResponse {
	resp := make([]defaultIncomeResponse, len(defs))
	for i, d := range defs {
		resp[i] = toDefaultIncomeResponse(d)
	}

	return resp
}

func toDefaultExpenseResponse(d *ledger.DefaultExpense) defaultExpenseResponse {
	resp := defaultExpenseResponse{
		ID:        d.ID,
		Name:      d.Name,
		PayDay:    d.PayDay,
		PeriodDay: d.PeriodDay,
		MethodID:  d.MethodID,
		Amount:    d.Amount,
		Undecided: d.Undecided,
		Months:    d.Months,
	}

	if d.Method != nil {
		resp.MethodName = d.Method.Name
	}

	return resp
}

func toDefaultExpenseResponseList(defs []*ledger.DefaultExpense) []defaultExpenseResponse {
	resp := make([]defaultExpenseResponse, len(defs))
	for i, d := range defs {
		resp[i] = toDefaultExpenseResponse(d)
	}

	return resp
}

func toLoanResponse(l *ledger.Loan) loanResponse {
	resp := loanResponse{
		ID:               l.ID,
		Name:             l.Name,
		PayDay:           l.PayDay,
		MethodID:         l.MethodID,
		AmountFirst:      l.AmountFirst,
		AmountFromSecond: l.AmountFromSecond,
		FirstYear:        l.FirstYear,
		FirstMonth:       l.FirstMonth,
		LastYear:         l.LastYear,
		LastMonth:        l.LastMonth,
	}

	if l.Method != nil {
		resp.MethodName = l.Method.Name
	}

	return resp
}

func toLoanResponseList(loans []*ledger.Loan) []loanResponse {
	resp := make([]loanResponse, len(loans))
	for i, l := range loans {
		resp[i] = toLoanResponse(l)
	}

	return resp
}

func toTemplateExpenseResponse(t *ledger.TemplateExpense) templateExpenseResponse {
	resp := templateExpenseResponse{
		ID:        t.ID,
		Name:      t.Name,
		MethodID:  t.MethodID,
		Undecided: t.Undecided,
		DateMode:  string(t.DateMode),
		PayDay:    t.PayDay,
		LimitDay:  t.LimitDay,
	}

	if t.Method != nil {
		resp.MethodName = t.Method.Name
	}

	return resp
}

func toTemplateExpenseResponseList(tpls []*ledger.TemplateExpense) []templateExpenseResponse {
	resp := make([]templateExpenseResponse, len(tpls))
	for i, t := range tpls {
		resp[i] = toTemplateExpenseResponse(t)
	}

	return resp
}

func toSuggestionResponseList(suggestions []catalog.Suggestion) []suggestionResponse {
	resp := make([]suggestionResponse, len(suggestions))
	for i, s := range suggestions {
		resp[i] = suggestionResponse{
			Template:  toTemplateExpenseResponse(s.Template),
			PayDate:   s.PayDate,
			Undecided: s.Undecided,
		}
	}

	return resp
}
