package domain

// AccountType defines the fundamental accounting type of an account.
// It is fixed at creation; changing it would invalidate historical postings.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether a positive balance for this account type is
// expressed as net debits. Liabilities, equity and revenue are credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account is one node in a tenant's chart of accounts.
// Accounts are never deleted physically; they are deactivated so historical
// ledger lines keep a valid reference.
type Account struct {
	AccountID       string      `json:"accountID"`
	TenantID        string      `json:"tenantID"`
	Code            string      `json:"code"` // short mnemonic, unique per tenant
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID,omitempty"` // empty when root
	Description     string      `json:"description,omitempty"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// AccountRole names a slot in a tenant's posting configuration, e.g. the
// account that receives cash debits for POS sales. Posting adapters resolve
// roles to account codes through the per-tenant config, never via literals.
type AccountRole string

const (
	RoleCash               AccountRole = "cash"
	RoleAccountsReceivable AccountRole = "accounts_receivable"
	RoleAccountsPayable    AccountRole = "accounts_payable"
	RoleRevenue            AccountRole = "revenue"
	RoleExpense            AccountRole = "expense"
	RoleTaxPayable         AccountRole = "tax_payable"
	RoleInputTax           AccountRole = "input_tax"
)

// AccountConfig maps one role to an account code for a tenant.
type AccountConfig struct {
	TenantID    string      `json:"tenantID"`
	Role        AccountRole `json:"role"`
	AccountCode string      `json:"accountCode"`
	AuditFields
}
