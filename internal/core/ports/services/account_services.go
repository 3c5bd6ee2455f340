package services

import (
	"context"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/calyxerp/calyx_backend/internal/dto"
)

// CoASvcFacade manages a tenant's chart of accounts and the posting role
// configuration built on top of it.
type CoASvcFacade interface {
	// SetupChartOfAccounts seeds accounts from the named industry template.
	// Idempotent: codes that already exist for the tenant are left untouched.
	// Returns the current state of every account named by the template.
	SetupChartOfAccounts(ctx context.Context, tenantID, industryKey, actorID string) ([]domain.Account, error)
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
	// ResolveAccountByCode returns apperrors.ErrAccountNotFound when the code
	// does not exist for the tenant; it never substitutes a placeholder.
	ResolveAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)
	// ResolveAccountsByCodes resolves all codes or fails with
	// apperrors.ErrAccountNotFound naming the first missing code.
	ResolveAccountsByCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.Account, error)
	// SetParentAccount validates the proposed parent's ancestor chain and
	// fails with apperrors.ErrCyclicHierarchy before touching storage.
	SetParentAccount(ctx context.Context, tenantID, accountID string, parentAccountID *string, actorID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, tenantID, accountID, actorID string) error

	UpsertAccountConfig(ctx context.Context, tenantID string, role domain.AccountRole, accountCode, actorID string) (*domain.AccountConfig, error)
	ListAccountConfigs(ctx context.Context, tenantID string) ([]domain.AccountConfig, error)
	// ResolveRoleAccount maps a posting role to its configured account.
	// Fails with apperrors.MissingAccountConfigError when the role is unmapped
	// or the mapped code no longer resolves.
	ResolveRoleAccount(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error)
}
