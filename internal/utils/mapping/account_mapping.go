package mapping

import (
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/calyxerp/calyx_backend/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:       a.AccountID,
		TenantID:        a.TenantID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		AuditFields:     ToModelAuditFields(a.AuditFields),
	}
}

// ToDomainAccount converts a model account to the domain type.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		TenantID:        m.TenantID,
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		ParentAccountID: m.ParentAccountID,
		Description:     m.Description,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccountConfig converts a domain.AccountConfig to its database model.
func ToModelAccountConfig(c domain.AccountConfig) models.AccountConfig {
	return models.AccountConfig{
		TenantID:    c.TenantID,
		Role:        string(c.Role),
		AccountCode: c.AccountCode,
		AuditFields: ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainAccountConfig converts a model account config to the domain type.
func ToDomainAccountConfig(m models.AccountConfig) domain.AccountConfig {
	return domain.AccountConfig{
		TenantID:    m.TenantID,
		Role:        domain.AccountRole(m.Role),
		AccountCode: m.AccountCode,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
