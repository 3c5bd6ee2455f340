package dto

import (
	"time"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
)

// CreateAccountRequest defines the payload for manually adding an account to
// the chart of accounts. AccountType is fixed at creation and has no update path.
type CreateAccountRequest struct {
	Code            string  `json:"code" binding:"required,max=20"`
	Name            string  `json:"name" binding:"required,max=100"`
	AccountType     string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentAccountID *string `json:"parentAccountID,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// SetupChartOfAccountsRequest names the industry template to seed from.
type SetupChartOfAccountsRequest struct {
	IndustryKey string `json:"industryKey" binding:"required"`
}

// SetParentAccountRequest assigns or clears an account's parent.
type SetParentAccountRequest struct {
	ParentAccountID *string `json:"parentAccountID"`
}

// UpsertAccountConfigRequest maps one posting role to an account code.
type UpsertAccountConfigRequest struct {
	Role        string `json:"role" binding:"required,oneof=cash accounts_receivable accounts_payable revenue expense tax_payable input_tax"`
	AccountCode string `json:"accountCode" binding:"required,max=20"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string    `json:"accountID"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	AccountType     string    `json:"accountType"`
	ParentAccountID string    `json:"parentAccountID,omitempty"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AccountConfigResponse defines the data returned for a role mapping.
type AccountConfigResponse struct {
	Role        string `json:"role"`
	AccountCode string `json:"accountCode"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// ToAccountConfigResponses converts a slice of domain account configs.
func ToAccountConfigResponses(configs []domain.AccountConfig) []AccountConfigResponse {
	responses := make([]AccountConfigResponse, len(configs))
	for i, c := range configs {
		responses[i] = AccountConfigResponse{Role: string(c.Role), AccountCode: c.AccountCode}
	}
	return responses
}
