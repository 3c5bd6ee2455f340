package services

import (
	"context"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
)

// ReportingSvcFacade is the read side of the ledger. Every call recomputes
// from committed lines; results always reflect a consistent snapshot.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error)
	AccountBalance(ctx context.Context, tenantID, accountID string) (*domain.AccountBalance, error)
	Summary(ctx context.Context, tenantID string) (*domain.AccountingSummary, error)
}
