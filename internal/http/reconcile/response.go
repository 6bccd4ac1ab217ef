package reconcile

import (
	"github.com/google/uuid"

	"github.com/kakeibo-app/kakeibo/internal/balance"
)

type accountRequirementResponse struct {
	AccountID          uuid.UUID `json:"account_id"`
	BankName           string    `json:"bank_name,omitempty"`
	OwnerName          string    `json:"owner_name,omitempty"`
	Balance            int64     `json:"balance"`
	Requirement        int64     `json:"requirement"`
	IsInsufficient     bool      `json:"is_insufficient"`
	InsufficientAmount int64     `json:"insufficient_amount,omitempty"`
}

type methodRequirementResponse struct {
	MethodID           uuid.UUID `json:"method_id"`
	MethodName         string    `json:"method_name"`
	Requirement        int64     `json:"requirement"`
	IsInsufficient     bool      `json:"is_insufficient"`
	InsufficientAmount int64     `json:"insufficient_amount,omitempty"`
}

type discrepancyResponse struct {
	AccountBalanceSum int64 `json:"account_balance_sum"`
	LedgerDoneBalance int64 `json:"ledger_done_balance"`
	Diff              int64 `json:"diff"`
}

func toAccountRequirementList(reqs []balance.AccountRequirement) []accountRequirementResponse {
	resp := make([]accountRequirementResponse, len(reqs))

	for i, req := range reqs {
		resp[i] = accountRequirementResponse{
			AccountID:          req.Account.ID,
			Balance:            req.Account.Balance,
			Requirement:        req.Requirement,
			IsInsufficient:     req.IsInsufficient,
			InsufficientAmount: req.InsufficientAmount,
		}

		if req.Account.Bank != nil {
			resp[i].BankName = req.Account.Bank.Name
		}

		if req.Account.Owner != nil {
			resp[i].OwnerName = req.Account.Owner.Name
		}
	}

	return resp
}

func toMethodRequirementList(reqs []balance.MethodRequirement) []methodRequirementResponse {
	resp := make([]methodRequirementResponse, len(reqs))

	for i, req := range reqs {
		resp[i] = methodRequirementResponse{
			MethodID:           req.Method.ID,
			MethodName:         req.Method.Name,
			Requirement:        req.Requirement,
			IsInsufficient:     req.IsInsufficient,
			InsufficientAmount: req.InsufficientAmount,
		}
	}

	return resp
}

func toDiscrepancyResponse(d balance.DiscrepancyReport) discrepancyResponse {
	return discrepancyResponse{
		AccountBalanceSum: d.AccountBalanceSum,
		LedgerDoneBalance: d.LedgerDoneBalance,
		Diff:              d.Diff,
	}
}
