package repositories

import (
	"context"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
)

// ReportingRepositoryFacade defines the read-side aggregation queries.
// Every call recomputes from committed ledger lines; there is no cached state.
type ReportingRepositoryFacade interface {
	// GetTrialBalanceData returns one row per active account of the tenant,
	// including accounts with no postings (zero totals).
	GetTrialBalanceData(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error)
	// GetAccountBalanceData returns apperrors.ErrNotFound for an unknown or
	// cross-tenant account.
	GetAccountBalanceData(ctx context.Context, tenantID, accountID string) (*domain.AccountBalance, error)
}
