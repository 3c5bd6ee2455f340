package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portsrepo "github.com/calyxerp/calyx_backend/internal/core/ports/repositories"
	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/utils/accounting"
)

// ReportingService recomputes every report from committed ledger lines.
// Nothing here is cached or denormalized; a report is only ever as stale as
// the last committed transaction.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// TrialBalance returns one row per active account with raw debit-normal
// balances. The rows sum to zero whenever the ledger holds only balanced
// entries, which the write path guarantees.
func (s *ReportingService) TrialBalance(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if rows == nil {
		return []domain.TrialBalanceRow{}, nil
	}
	return rows, nil
}

// AccountBalance returns the raw debit-normal balance of one account.
func (s *ReportingService) AccountBalance(ctx context.Context, tenantID, accountID string) (*domain.AccountBalance, error) {
	balance, err := s.reportingRepo.GetAccountBalanceData(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			s.LogError(ctx, err, "Failed to compute account balance", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return balance, nil
}

// Summary nets the trial balance into the four headline figures. Sign
// conversion to credit-normal presentation happens here and nowhere else.
func (s *ReportingService) Summary(ctx context.Context, tenantID string) (*domain.AccountingSummary, error) {
	rows, err := s.TrialBalance(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	summary := accounting.Summarize(rows)
	return &summary, nil
}
