package models

// Account is the database representation of a chart-of-accounts entry.
// ParentAccountID is empty when the account is a root.
type Account struct {
	AccountID       string `db:"account_id"`
	TenantID        string `db:"tenant_id"`
	Code            string `db:"code"`
	Name            string `db:"name"`
	AccountType     string `db:"account_type"`
	ParentAccountID string `db:"parent_account_id"` // nullable
	Description     string `db:"description"`
	IsActive        bool   `db:"is_active"`
	AuditFields
}

// AccountConfig is the database representation of one (tenant, role) mapping.
type AccountConfig struct {
	TenantID    string `db:"tenant_id"`
	Role        string `db:"role"`
	AccountCode string `db:"account_code"`
	AuditFields
}
