package repositories

import (
	"context"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
)

// JournalRepositoryFacade defines the persistence operations for journal
// entries and their ledger lines. Saving an entry persists its lines in the
// same database transaction; there is no way to mutate either afterwards.
type JournalRepositoryFacade interface {
	// SaveEntry persists the entry header and all its lines atomically.
	// When the entry carries a source pair that already exists for the tenant,
	// the unique index rejects the insert and SaveEntry returns
	// apperrors.ErrDuplicateSourcePosting without persisting anything.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error)
	// FindEntryBySource returns apperrors.ErrNotFound when no entry exists for
	// the (tenant, sourceType, sourceID) triple.
	FindEntryBySource(ctx context.Context, tenantID, sourceType, sourceID string) (*domain.JournalEntry, error)
	// ListEntriesByTenant pages newest-first with an opaque cursor token.
	ListEntriesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}
