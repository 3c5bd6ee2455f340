package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source types recorded on automatically posted entries. The
// (sourceType, sourceID) pair is the idempotency key: at most one entry may
// exist per pair within a tenant.
const (
	SourceSale     = "sale"
	SourceInvoice  = "invoice"
	SourceBill     = "bill"
	SourceReversal = "reversal"
)

// JournalEntry is one balanced financial transaction. An entry is immutable
// once posted; corrections are made by posting a reversing entry.
type JournalEntry struct {
	EntryID     string       `json:"entryID"`
	TenantID    string       `json:"tenantID"`
	BranchID    string       `json:"branchID"`
	EntryDate   time.Time    `json:"entryDate"`
	Description string       `json:"description"`
	Reference   string       `json:"reference,omitempty"`
	SourceType  *string      `json:"sourceType,omitempty"`
	SourceID    *string      `json:"sourceID,omitempty"`
	Lines       []LedgerLine `json:"lines,omitempty"` // insertion order preserved
	AuditFields
}

// HasSource reports whether the entry carries a complete idempotency key.
func (e *JournalEntry) HasSource() bool {
	return e.SourceType != nil && *e.SourceType != "" && e.SourceID != nil && *e.SourceID != ""
}

// LedgerLine is one debit-or-credit movement against one account within one
// entry. Lines are created with their parent entry and never modified
// independently of it.
type LedgerLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`  // >= 0
	Credit      decimal.Decimal `json:"credit"` // >= 0
	Description string          `json:"description,omitempty"`
	LineNo      int             `json:"lineNo"`
}

// IsZero reports whether the line carries no value on either side. Such lines
// are legal but contribute nothing; validation flags them as suspicious.
func (l *LedgerLine) IsZero() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}
