package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is a single account's aggregate in a trial balance report.
// Balance is the raw debit-normal figure (total debits minus total credits);
// presentation layers apply the sign convention for credit-normal types.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountBalance is one account's aggregate over all committed lines.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"` // raw, debit-normal
}

// AccountingSummary aggregates balances by account type for dashboards.
// This is the only place type-aware netting is applied: assets and expenses
// are debits minus credits, liabilities and revenue credits minus debits.
type AccountingSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetRevenue       decimal.Decimal `json:"netRevenue"`
	NetExpenses      decimal.Decimal `json:"netExpenses"`
}
