package pgsql

import (
	"context"
	"errors"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portsrepo "github.com/calyxerp/calyx_backend/internal/core/ports/repositories"
	"github.com/calyxerp/calyx_backend/internal/models"
	"github.com/calyxerp/calyx_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConfigRepository struct {
	BaseRepository
}

func newPgxConfigRepository(pool *pgxpool.Pool) portsrepo.AccountConfigRepositoryFacade {
	return &PgxConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountConfigRepositoryFacade = (*PgxConfigRepository)(nil)

// UpsertAccountConfig inserts or replaces the role mapping for a tenant.
func (r *PgxConfigRepository) UpsertAccountConfig(ctx context.Context, config domain.AccountConfig) error {
	m := mapping.ToModelAccountConfig(config)

	query := `
		INSERT INTO account_configs (
			tenant_id, role, account_code, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, role) DO UPDATE
		SET account_code = EXCLUDED.account_code,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.Role,
		m.AccountCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert account config for role "+m.Role, err)
	}
	return nil
}

// FindAccountConfig retrieves the mapping for a single role.
func (r *PgxConfigRepository) FindAccountConfig(ctx context.Context, tenantID, role string) (*domain.AccountConfig, error) {
	query := `
		SELECT tenant_id, role, account_code, created_at, created_by, last_updated_at, last_updated_by
		FROM account_configs
		WHERE tenant_id = $1 AND role = $2;
	`
	var m models.AccountConfig
	err := r.Pool.QueryRow(ctx, query, tenantID, role).Scan(
		&m.TenantID,
		&m.Role,
		&m.AccountCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account config for role "+role, err)
	}

	config := mapping.ToDomainAccountConfig(m)
	return &config, nil
}

// ListAccountConfigs retrieves all role mappings for a tenant ordered by role.
func (r *PgxConfigRepository) ListAccountConfigs(ctx context.Context, tenantID string) ([]domain.AccountConfig, error) {
	query := `
		SELECT tenant_id, role, account_code, created_at, created_by, last_updated_at, last_updated_by
		FROM account_configs
		WHERE tenant_id = $1
		ORDER BY role;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account configs for tenant "+tenantID, err)
	}
	defer rows.Close()

	configs := []domain.AccountConfig{}
	for rows.Next() {
		var m models.AccountConfig
		err := rows.Scan(
			&m.TenantID,
			&m.Role,
			&m.AccountCode,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account config row", err)
		}
		configs = append(configs, mapping.ToDomainAccountConfig(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account config rows", err)
	}

	return configs, nil
}
