package dto

import (
	"time"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLine is one debit-or-credit movement in a create request.
// Accounts are referenced by their tenant-scoped code, not by internal id.
type CreateEntryLine struct {
	AccountCode string          `json:"accountCode" binding:"required,max=20"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// CreateEntryRequest defines the payload for creating a journal entry.
// SourceType and SourceID, when both set, form the idempotency key: a second
// request with the same pair returns the original entry instead of posting twice.
type CreateEntryRequest struct {
	BranchID    string            `json:"branchID" binding:"required"`
	Date        time.Time         `json:"date" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Reference   string            `json:"reference,omitempty"`
	SourceType  *string           `json:"sourceType,omitempty"`
	SourceID    *string           `json:"sourceID,omitempty"`
	Lines       []CreateEntryLine `json:"lines" binding:"required,min=1,dive"`
}

// LedgerLineResponse defines the data returned for one ledger line.
type LedgerLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string               `json:"entryID"`
	BranchID    string               `json:"branchID"`
	Date        time.Time            `json:"date"`
	Description string               `json:"description"`
	Reference   string               `json:"reference,omitempty"`
	SourceType  *string              `json:"sourceType,omitempty"`
	SourceID    *string              `json:"sourceID,omitempty"`
	Lines       []LedgerLineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   string               `json:"createdBy"`
}

// ListEntriesParams holds pagination parameters for listing entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is a page of entries plus the cursor for the next page.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToLedgerLineResponse converts a domain.LedgerLine to its DTO.
func ToLedgerLineResponse(l *domain.LedgerLine) LedgerLineResponse {
	return LedgerLineResponse{
		LineID:      l.LineID,
		AccountID:   l.AccountID,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Description: l.Description,
	}
}

// ToEntryResponse converts a domain.JournalEntry (with lines, if loaded) to its DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		BranchID:    e.BranchID,
		Date:        e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		SourceType:  e.SourceType,
		SourceID:    e.SourceID,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LedgerLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToLedgerLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
