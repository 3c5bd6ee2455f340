package repositories

import (
	"context"
	"time"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
)

// AccountRepositoryFacade defines the persistence operations for chart-of-accounts
// entries. Accounts are never deleted; DeactivateAccount is the only removal path.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountByCode resolves an account by its tenant-scoped code.
	// Returns apperrors.ErrNotFound when the code is absent for the tenant.
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)
	// FindAccountsByCodes resolves several codes at once; the result map is
	// keyed by code and omits codes that did not resolve.
	FindAccountsByCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.Account, error)
	UpdateAccountParent(ctx context.Context, tenantID, accountID string, parentAccountID *string, updatedBy string, updatedAt time.Time) error
	DeactivateAccount(ctx context.Context, tenantID, accountID string, updatedBy string, updatedAt time.Time) error
}

// AccountConfigRepositoryFacade persists the per-tenant role to account-code
// mapping consumed by the posting adapters.
type AccountConfigRepositoryFacade interface {
	// UpsertAccountConfig inserts or replaces the mapping for (tenant, role).
	UpsertAccountConfig(ctx context.Context, config domain.AccountConfig) error
	// FindAccountConfig returns apperrors.ErrNotFound when the role is unmapped.
	// The role arrives as its storage string; callers convert from domain.AccountRole.
	FindAccountConfig(ctx context.Context, tenantID string, role string) (*domain.AccountConfig, error)
	ListAccountConfigs(ctx context.Context, tenantID string) ([]domain.AccountConfig, error)
}
