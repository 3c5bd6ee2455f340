package pgsql

import (
	"context"
	"errors"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portsrepo "github.com/calyxerp/calyx_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetTrialBalanceData aggregates debit and credit totals per active account.
// Accounts with no activity still appear with zero totals, which is why the
// join runs from accounts outward.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN ledger_lines l ON l.account_id = a.account_id
		WHERE a.tenant_id = $1 AND a.is_active = TRUE
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance for tenant "+tenantID, err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.TotalDebit,
			&row.TotalCredit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		row.AccountType = domain.AccountType(accountType)
		row.Balance = row.TotalDebit.Sub(row.TotalCredit)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}

	return result, nil
}

// GetAccountBalanceData aggregates totals for a single account.
func (r *PgxReportingRepository) GetAccountBalanceData(ctx context.Context, tenantID, accountID string) (*domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN ledger_lines l ON l.account_id = a.account_id
		WHERE a.tenant_id = $1 AND a.account_id = $2
		GROUP BY a.account_id, a.code, a.name, a.account_type;
	`
	var balance domain.AccountBalance
	var accountType string
	err := r.Pool.QueryRow(ctx, query, tenantID, accountID).Scan(
		&balance.AccountID,
		&balance.AccountCode,
		&balance.AccountName,
		&accountType,
		&balance.TotalDebit,
		&balance.TotalCredit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query balance for account "+accountID, err)
	}

	balance.AccountType = domain.AccountType(accountType)
	balance.Balance = balance.TotalDebit.Sub(balance.TotalCredit)
	return &balance, nil
}
