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
	"github.com/calyxerp/calyx_backend/internal/platform/metrics"
	"github.com/calyxerp/calyx_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

const defaultListLimit = 20

type LedgerService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	coaSvc      portssvc.CoASvcFacade
	metrics     *metrics.Collector
}

// LedgerServiceOption configures optional collaborators of the ledger service.
type LedgerServiceOption func(*LedgerService)

// WithMetrics attaches a metrics collector. Without it, posting counters are
// simply not recorded.
func WithMetrics(collector *metrics.Collector) LedgerServiceOption {
	return func(s *LedgerService) {
		s.metrics = collector
	}
}

func NewLedgerService(journalRepo portsrepo.JournalRepositoryFacade, coaSvc portssvc.CoASvcFacade, opts ...LedgerServiceOption) *LedgerService {
	s := &LedgerService{
		journalRepo: journalRepo,
		coaSvc:      coaSvc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

func (s *LedgerService) recordRejection(reason string) {
	if s.metrics != nil {
		s.metrics.RecordPostingRejected(reason)
	}
}

// CreateEntry is the single write path into the ledger. It validates amounts,
// resolves every account code up front, enforces the balance invariant and
// persists header plus lines in one transaction. A request whose source pair
// was already posted returns the existing entry unchanged.
func (s *LedgerService) CreateEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, actorID string) (*domain.JournalEntry, error) {
	if len(req.Lines) == 0 {
		s.recordRejection(metrics.ReasonValidation)
		return nil, apperrors.ErrValidation
	}

	codes := make([]string, 0, len(req.Lines))
	seen := make(map[string]struct{}, len(req.Lines))
	for i, line := range req.Lines {
		if err := accounting.ValidateAmount(line.Debit); err != nil {
			s.recordRejection(metrics.ReasonValidation)
			return nil, err
		}
		if err := accounting.ValidateAmount(line.Credit); err != nil {
			s.recordRejection(metrics.ReasonValidation)
			return nil, err
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			s.LogWarn(ctx, "Entry line has zero debit and zero credit",
				slog.Int("line_index", i),
				slog.String("account_code", line.AccountCode))
		}
		if _, ok := seen[line.AccountCode]; !ok {
			seen[line.AccountCode] = struct{}{}
			codes = append(codes, line.AccountCode)
		}
	}

	accounts, err := s.coaSvc.ResolveAccountsByCodes(ctx, tenantID, codes)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			s.recordRejection(metrics.ReasonAccountNotFound)
		}
		return nil, err
	}
	for _, code := range codes {
		if !accounts[code].IsActive {
			s.LogWarn(ctx, "Posting against inactive account rejected", slog.String("account_code", code))
			s.recordRejection(metrics.ReasonAccountNotFound)
			return nil, apperrors.ErrAccountNotFound
		}
	}

	lines := make([]domain.LedgerLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = domain.LedgerLine{
			LineID:      uuid.NewString(),
			AccountID:   accounts[line.AccountCode].AccountID,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Description: line.Description,
			LineNo:      i + 1,
		}
	}

	totalDebit, totalCredit := accounting.EntryTotals(lines)
	if !accounting.IsBalanced(totalDebit, totalCredit) {
		s.LogInfo(ctx, "Imbalanced entry rejected",
			slog.String("total_debit", totalDebit.StringFixed(2)),
			slog.String("total_credit", totalCredit.StringFixed(2)))
		s.recordRejection(metrics.ReasonImbalanced)
		return nil, apperrors.NewImbalancedEntryError(totalDebit, totalCredit)
	}

	if req.SourceType != nil && req.SourceID != nil && *req.SourceType != "" && *req.SourceID != "" {
		existing, err := s.findEntryWithLinesBySource(ctx, tenantID, *req.SourceType, *req.SourceID)
		if err == nil {
			s.LogInfo(ctx, "Source already posted, returning existing entry",
				slog.String("source_type", *req.SourceType),
				slog.String("source_id", *req.SourceID),
				slog.String("entry_id", existing.EntryID))
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		TenantID:    tenantID,
		BranchID:    req.BranchID,
		EntryDate:   req.Date,
		Description: req.Description,
		Reference:   req.Reference,
		SourceType:  req.SourceType,
		SourceID:    req.SourceID,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	for i := range entry.Lines {
		entry.Lines[i].EntryID = entry.EntryID
	}

	persistStart := time.Now()
	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateSourcePosting) && entry.HasSource() {
			// Lost the insert race; the winner's entry is the answer.
			return s.findEntryWithLinesBySource(ctx, tenantID, *entry.SourceType, *entry.SourceID)
		}
		s.LogError(ctx, err, "Failed to persist journal entry", slog.String("entry_id", entry.EntryID))
		s.recordRejection(metrics.ReasonInternal)
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordEntryPosted(time.Since(persistStart))
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.Int("lines", len(entry.Lines)),
		slog.String("total", totalDebit.StringFixed(2)))
	return &entry, nil
}

func (s *LedgerService) findEntryWithLinesBySource(ctx context.Context, tenantID, sourceType, sourceID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryBySource(ctx, tenantID, sourceType, sourceID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entry.EntryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// GetEntryByID retrieves an entry with its lines. Entries of other tenants are
// indistinguishable from missing ones.
func (s *LedgerService) GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.TenantID != tenantID {
		return nil, apperrors.ErrNotFound
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lines for entry", slog.String("entry_id", entryID))
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a page of entry headers newest first.
func (s *LedgerService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByTenant(ctx, tenantID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("tenant_id", tenantID))
		return nil, err
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// ReverseEntry posts the correcting entry for entryID: same accounts, debits
// and credits swapped. Posted entries are immutable, so this is the only
// correction path. The reversal carries (source_type="reversal",
// source_id=<original entry id>), making a second reversal attempt return the
// first one instead of double-correcting.
func (s *LedgerService) ReverseEntry(ctx context.Context, tenantID, entryID, actorID string) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.CreateEntryLine, len(original.Lines))
	for i, line := range original.Lines {
		lines[i] = dto.CreateEntryLine{
			AccountCode: "", // filled below from the account id
			Debit:       line.Credit,
			Credit:      line.Debit,
			Description: line.Description,
		}
	}

	// CreateEntry resolves by code, so map each line's account id back to its
	// current code first.
	for i, line := range original.Lines {
		account, err := s.coaSvc.GetAccountByID(ctx, tenantID, line.AccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve account for reversal",
				slog.String("account_id", line.AccountID))
			return nil, err
		}
		lines[i].AccountCode = account.Code
	}

	sourceType := domain.SourceReversal
	req := dto.CreateEntryRequest{
		BranchID:    original.BranchID,
		Date:        time.Now(),
		Description: "Reversal of " + original.EntryID,
		Reference:   original.Reference,
		SourceType:  &sourceType,
		SourceID:    &original.EntryID,
		Lines:       lines,
	}

	reversal, err := s.CreateEntry(ctx, tenantID, req, actorID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Entry reversed",
		slog.String("original_entry_id", original.EntryID),
		slog.String("reversal_entry_id", reversal.EntryID))
	return reversal, nil
}
