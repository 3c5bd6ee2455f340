package dto

import (
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one account's row in the trial balance report.
// Balance is the raw debit-normal figure; the account type is included so
// consumers can apply the credit-normal sign convention consistently.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse is the full report plus the zero-sum check value.
type TrialBalanceResponse struct {
	Rows         []TrialBalanceRowResponse `json:"rows"`
	BalanceTotal decimal.Decimal           `json:"balanceTotal"` // zero when the ledger is consistent
}

// AccountBalanceResponse is one account's aggregate over all committed lines.
type AccountBalanceResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// SummaryResponse is the type-grouped dashboard aggregate.
type SummaryResponse struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetRevenue       decimal.Decimal `json:"netRevenue"`
	NetExpenses      decimal.Decimal `json:"netExpenses"`
}

// ToTrialBalanceResponse converts report rows and computes the zero-sum total.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		Rows:         make([]TrialBalanceRowResponse, len(rows)),
		BalanceTotal: decimal.Zero,
	}
	for i, row := range rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			TotalDebit:  row.TotalDebit,
			TotalCredit: row.TotalCredit,
			Balance:     row.Balance,
		}
		resp.BalanceTotal = resp.BalanceTotal.Add(row.Balance)
	}
	return resp
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:   b.AccountID,
		AccountCode: b.AccountCode,
		AccountName: b.AccountName,
		AccountType: string(b.AccountType),
		TotalDebit:  b.TotalDebit,
		TotalCredit: b.TotalCredit,
		Balance:     b.Balance,
	}
}

// ToSummaryResponse converts a domain.AccountingSummary to its DTO.
func ToSummaryResponse(s *domain.AccountingSummary) SummaryResponse {
	return SummaryResponse{
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		NetRevenue:       s.NetRevenue,
		NetExpenses:      s.NetExpenses,
	}
}
