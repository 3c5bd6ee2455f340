package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of an entry header.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	TenantID    string    `db:"tenant_id"`
	BranchID    string    `db:"branch_id"`
	EntryDate   time.Time `db:"entry_date"`
	Description string    `db:"description"`
	Reference   string    `db:"reference"`
	SourceType  *string   `db:"source_type"` // nullable
	SourceID    *string   `db:"source_id"`   // nullable
	AuditFields
}

// LedgerLine is the database representation of one line.
// LineNo preserves insertion order for display.
type LedgerLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
	LineNo      int             `db:"line_no"`
}
