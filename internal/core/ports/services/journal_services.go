package services

import (
	"context"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/calyxerp/calyx_backend/internal/dto"
)

// LedgerSvcFacade is the single write path into the ledger plus its direct reads.
type LedgerSvcFacade interface {
	// CreateEntry validates, resolves accounts, checks the balance invariant
	// and persists the entry with its lines atomically. When the request
	// carries a source pair that was already posted, the existing entry is
	// returned and nothing new is written.
	CreateEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, actorID string) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
	// ReverseEntry posts a new entry with the original's debits and credits
	// swapped. Posted entries are never mutated; this is the only correction
	// path. Reversing the same entry twice returns the first reversal.
	ReverseEntry(ctx context.Context, tenantID, entryID, actorID string) (*domain.JournalEntry, error)
}

// PostingSvcFacade holds the posting adapters that turn source business events
// into balanced journal entries.
type PostingSvcFacade interface {
	PostSale(ctx context.Context, tenantID string, sale domain.SaleEvent, actorID string) (*domain.JournalEntry, error)
	PostInvoice(ctx context.Context, tenantID string, invoice domain.InvoiceEvent, actorID string) (*domain.JournalEntry, error)
	PostBill(ctx context.Context, tenantID string, bill domain.BillEvent, actorID string) (*domain.JournalEntry, error)
}
