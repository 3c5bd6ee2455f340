package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portsrepo "github.com/calyxerp/calyx_backend/internal/core/ports/repositories"
	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/google/uuid"
)

// maxHierarchyDepth caps the ancestor walk when validating parent links.
// A chart of accounts deeper than this is almost certainly a data error.
const maxHierarchyDepth = 32

type CoAService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	configRepo  portsrepo.AccountConfigRepositoryFacade
}

func NewCoAService(accountRepo portsrepo.AccountRepositoryFacade, configRepo portsrepo.AccountConfigRepositoryFacade) *CoAService {
	return &CoAService{
		accountRepo: accountRepo,
		configRepo:  configRepo,
	}
}

var _ portssvc.CoASvcFacade = (*CoAService)(nil)

// SetupChartOfAccounts seeds the tenant's chart from an industry template.
// Codes that already exist are left untouched, so calling it twice is safe.
// Roles whose template account exists get a default config mapping, but an
// existing mapping is never overwritten.
func (s *CoAService) SetupChartOfAccounts(ctx context.Context, tenantID, industryKey, actorID string) ([]domain.Account, error) {
	resolvedKey, template := templateForIndustry(industryKey)
	if resolvedKey != industryKey {
		s.LogInfo(ctx, "Unknown industry key, falling back to default template",
			slog.String("requested", industryKey), slog.String("used", resolvedKey))
	}

	now := time.Now()
	result := make([]domain.Account, 0, len(template))
	for _, tpl := range template {
		existing, err := s.accountRepo.FindAccountByCode(ctx, tenantID, tpl.Code)
		if err == nil {
			result = append(result, *existing)
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check for existing account during setup", slog.String("code", tpl.Code))
			return nil, err
		}

		account := domain.Account{
			AccountID:   uuid.NewString(),
			TenantID:    tenantID,
			Code:        tpl.Code,
			Name:        tpl.Name,
			AccountType: tpl.Type,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Lost a race with a concurrent setup; use the winner.
				winner, ferr := s.accountRepo.FindAccountByCode(ctx, tenantID, tpl.Code)
				if ferr != nil {
					return nil, ferr
				}
				result = append(result, *winner)
				continue
			}
			s.LogError(ctx, err, "Failed to seed account from template", slog.String("code", tpl.Code))
			return nil, err
		}
		result = append(result, account)
	}

	if err := s.seedDefaultConfigs(ctx, tenantID, resolvedKey, actorID, now); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Chart of accounts setup completed",
		slog.String("tenant_id", tenantID),
		slog.String("industry", resolvedKey),
		slog.Int("accounts", len(result)))
	return result, nil
}

func (s *CoAService) seedDefaultConfigs(ctx context.Context, tenantID, industryKey, actorID string, now time.Time) error {
	for role, code := range defaultRoleSeeds[industryKey] {
		if _, err := s.configRepo.FindAccountConfig(ctx, tenantID, string(role)); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		config := domain.AccountConfig{
			TenantID:    tenantID,
			Role:        role,
			AccountCode: code,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
		if err := s.configRepo.UpsertAccountConfig(ctx, config); err != nil {
			s.LogError(ctx, err, "Failed to seed default account config", slog.String("role", string(role)))
			return err
		}
	}
	return nil
}

// CreateAccount adds a manually defined account to the tenant's chart.
func (s *CoAService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return nil, apperrors.ErrValidation
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrAccountNotFound
			}
			return nil, err
		}
		if parent.TenantID != tenantID || !parent.IsActive {
			return nil, apperrors.ErrAccountNotFound
		}
		parentID = parent.AccountID
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		TenantID:        tenantID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     accountType,
		ParentAccountID: parentID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves an account, hiding other tenants' accounts behind
// ErrNotFound.
func (s *CoAService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if account.TenantID != tenantID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// ResolveAccountByCode looks up an account by its tenant-scoped code.
func (s *CoAService) ResolveAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		s.LogError(ctx, err, "Failed to resolve account by code", slog.String("code", code))
		return nil, err
	}
	return account, nil
}

// ResolveAccountsByCodes resolves every code or fails naming the first missing
// one. Postings must never proceed with a partial account set.
func (s *CoAService) ResolveAccountsByCodes(ctx context.Context, tenantID string, codes []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, tenantID, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve accounts by codes")
		return nil, err
	}
	for _, code := range codes {
		if _, ok := accounts[code]; !ok {
			s.LogDebug(ctx, "Account code not found for tenant", slog.String("code", code))
			return nil, apperrors.ErrAccountNotFound
		}
	}
	return accounts, nil
}

// ListAccounts retrieves the tenant's accounts ordered by code.
func (s *CoAService) ListAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// SetParentAccount assigns or clears an account's parent after validating the
// link would not create a cycle. The walk follows ancestor ids, never object
// references, and bails out past maxHierarchyDepth.
func (s *CoAService) SetParentAccount(ctx context.Context, tenantID, accountID string, parentAccountID *string, actorID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	var newParentID string
	if parentAccountID != nil && *parentAccountID != "" {
		newParentID = *parentAccountID
		if newParentID == accountID {
			return nil, apperrors.ErrCyclicHierarchy
		}
		parent, err := s.GetAccountByID(ctx, tenantID, newParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrAccountNotFound
			}
			return nil, err
		}
		if !parent.IsActive {
			return nil, apperrors.ErrAccountNotFound
		}
		if err := s.ensureAcyclic(ctx, tenantID, accountID, parent); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	var parentArg *string
	if newParentID != "" {
		parentArg = &newParentID
	}
	if err := s.accountRepo.UpdateAccountParent(ctx, tenantID, accountID, parentArg, actorID, now); err != nil {
		s.LogError(ctx, err, "Failed to update account parent", slog.String("account_id", accountID))
		return nil, err
	}

	account.ParentAccountID = newParentID
	account.LastUpdatedAt = now
	account.LastUpdatedBy = actorID
	s.LogInfo(ctx, "Account parent updated",
		slog.String("account_id", accountID),
		slog.String("parent_account_id", newParentID))
	return account, nil
}

// ensureAcyclic walks up from the proposed parent; finding accountID among its
// ancestors means the link would close a loop.
func (s *CoAService) ensureAcyclic(ctx context.Context, tenantID, accountID string, parent *domain.Account) error {
	current := parent
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		if current.AccountID == accountID {
			return apperrors.ErrCyclicHierarchy
		}
		if current.ParentAccountID == "" {
			return nil
		}
		next, err := s.accountRepo.FindAccountByID(ctx, current.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Dangling parent link; treat the chain as ended.
				return nil
			}
			return err
		}
		if next.TenantID != tenantID {
			return nil
		}
		current = next
	}
	return apperrors.ErrCyclicHierarchy
}

// DeactivateAccount marks the account inactive. Historical lines keep their
// reference; only new postings are barred.
func (s *CoAService) DeactivateAccount(ctx context.Context, tenantID, accountID, actorID string) error {
	if _, err := s.GetAccountByID(ctx, tenantID, accountID); err != nil {
		return err
	}
	if err := s.accountRepo.DeactivateAccount(ctx, tenantID, accountID, actorID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

// UpsertAccountConfig maps a posting role to an account code. The code must
// resolve to an active account of the tenant before the mapping is stored.
func (s *CoAService) UpsertAccountConfig(ctx context.Context, tenantID string, role domain.AccountRole, accountCode, actorID string) (*domain.AccountConfig, error) {
	account, err := s.ResolveAccountByCode(ctx, tenantID, accountCode)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.ErrAccountNotFound
	}

	now := time.Now()
	config := domain.AccountConfig{
		TenantID:    tenantID,
		Role:        role,
		AccountCode: accountCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.configRepo.UpsertAccountConfig(ctx, config); err != nil {
		s.LogError(ctx, err, "Failed to upsert account config", slog.String("role", string(role)))
		return nil, err
	}

	s.LogInfo(ctx, "Account config upserted",
		slog.String("role", string(role)),
		slog.String("account_code", accountCode))
	return &config, nil
}

// ListAccountConfigs retrieves all role mappings for the tenant.
func (s *CoAService) ListAccountConfigs(ctx context.Context, tenantID string) ([]domain.AccountConfig, error) {
	configs, err := s.configRepo.ListAccountConfigs(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account configs", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if configs == nil {
		return []domain.AccountConfig{}, nil
	}
	return configs, nil
}

// ResolveRoleAccount maps a posting role to its configured account. A missing
// mapping or a mapped code that no longer resolves both surface as
// MissingAccountConfigError so postings fail loudly instead of dropping data.
func (s *CoAService) ResolveRoleAccount(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error) {
	config, err := s.configRepo.FindAccountConfig(ctx, tenantID, string(role))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewMissingAccountConfigError(string(role))
		}
		s.LogError(ctx, err, "Failed to load account config", slog.String("role", string(role)))
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, config.AccountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Configured account code no longer resolves",
				slog.String("role", string(role)),
				slog.String("account_code", config.AccountCode))
			return nil, apperrors.NewMissingAccountConfigError(string(role))
		}
		return nil, err
	}
	if !account.IsActive {
		s.LogWarn(ctx, "Configured account is inactive",
			slog.String("role", string(role)),
			slog.String("account_code", config.AccountCode))
		return nil, apperrors.NewMissingAccountConfigError(string(role))
	}
	return account, nil
}
