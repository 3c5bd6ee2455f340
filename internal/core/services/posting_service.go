package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/calyxerp/calyx_backend/internal/platform/metrics"
	"github.com/calyxerp/calyx_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PostingService turns source business events into balanced journal entries.
// It owns the debit/credit shape of each event type; the ledger service owns
// validation and persistence.
type PostingService struct {
	BaseService
	ledgerSvc portssvc.LedgerSvcFacade
	coaSvc    portssvc.CoASvcFacade
	metrics   *metrics.Collector
}

// PostingServiceOption configures optional collaborators of the posting service.
type PostingServiceOption func(*PostingService)

// WithPostingMetrics attaches a metrics collector for rejection counters.
func WithPostingMetrics(collector *metrics.Collector) PostingServiceOption {
	return func(s *PostingService) {
		s.metrics = collector
	}
}

func NewPostingService(ledgerSvc portssvc.LedgerSvcFacade, coaSvc portssvc.CoASvcFacade, opts ...PostingServiceOption) *PostingService {
	s := &PostingService{
		ledgerSvc: ledgerSvc,
		coaSvc:    coaSvc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PostingSvcFacade = (*PostingService)(nil)

func (s *PostingService) resolveRole(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error) {
	account, err := s.coaSvc.ResolveRoleAccount(ctx, tenantID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingAccountConfig) {
			s.LogWarn(ctx, "Posting blocked by missing account configuration",
				slog.String("tenant_id", tenantID),
				slog.String("role", string(role)))
			if s.metrics != nil {
				s.metrics.RecordPostingRejected(metrics.ReasonMissingConfig)
			}
		}
		return nil, err
	}
	return account, nil
}

// post runs the shared tail of every adapter: defensive balance check, then a
// CreateEntry carrying the source pair so replays return the original posting.
func (s *PostingService) post(ctx context.Context, tenantID, branchID, sourceType, sourceID, description string, date time.Time, lines []dto.CreateEntryLine, actorID string) (*domain.JournalEntry, error) {
	var totalDebit, totalCredit decimal.Decimal
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	if !accounting.IsBalanced(totalDebit, totalCredit) {
		// An adapter producing imbalanced lines is a bug, not bad input.
		err := apperrors.NewImbalancedEntryError(totalDebit, totalCredit)
		s.LogError(ctx, err, "Posting adapter produced imbalanced lines",
			slog.String("source_type", sourceType),
			slog.String("source_id", sourceID))
		return nil, err
	}

	req := dto.CreateEntryRequest{
		BranchID:    branchID,
		Date:        date,
		Description: description,
		Reference:   sourceID,
		SourceType:  &sourceType,
		SourceID:    &sourceID,
		Lines:       lines,
	}
	return s.ledgerSvc.CreateEntry(ctx, tenantID, req, actorID)
}

// PostSale posts a point-of-sale receipt: cash in for the total, revenue for
// the subtotal, tax liability for the tax when any was collected.
func (s *PostingService) PostSale(ctx context.Context, tenantID string, sale domain.SaleEvent, actorID string) (*domain.JournalEntry, error) {
	cash, err := s.resolveRole(ctx, tenantID, domain.RoleCash)
	if err != nil {
		return nil, err
	}
	revenue, err := s.resolveRole(ctx, tenantID, domain.RoleRevenue)
	if err != nil {
		return nil, err
	}

	lines := []dto.CreateEntryLine{
		{AccountCode: cash.Code, Debit: sale.Total, Description: "Cash received"},
		{AccountCode: revenue.Code, Credit: sale.Subtotal, Description: "Sales revenue"},
	}
	if sale.Tax.IsPositive() {
		taxPayable, err := s.resolveRole(ctx, tenantID, domain.RoleTaxPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dto.CreateEntryLine{
			AccountCode: taxPayable.Code, Credit: sale.Tax, Description: "Sales tax collected",
		})
	}

	date := sale.OccurredAt
	if date.IsZero() {
		date = time.Now()
	}
	description := fmt.Sprintf("POS sale %s", sale.ReceiptNumber)
	return s.post(ctx, tenantID, sale.BranchID, domain.SourceSale, sale.SaleID, description, date, lines, actorID)
}

// PostInvoice posts an issued customer invoice: receivable for the total,
// revenue for the subtotal, tax liability for the tax when any was charged.
func (s *PostingService) PostInvoice(ctx context.Context, tenantID string, invoice domain.InvoiceEvent, actorID string) (*domain.JournalEntry, error) {
	receivable, err := s.resolveRole(ctx, tenantID, domain.RoleAccountsReceivable)
	if err != nil {
		return nil, err
	}
	revenue, err := s.resolveRole(ctx, tenantID, domain.RoleRevenue)
	if err != nil {
		return nil, err
	}

	lines := []dto.CreateEntryLine{
		{AccountCode: receivable.Code, Debit: invoice.Total, Description: "Invoice receivable"},
		{AccountCode: revenue.Code, Credit: invoice.Subtotal, Description: "Invoice revenue"},
	}
	if invoice.TaxTotal.IsPositive() {
		taxPayable, err := s.resolveRole(ctx, tenantID, domain.RoleTaxPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dto.CreateEntryLine{
			AccountCode: taxPayable.Code, Credit: invoice.TaxTotal, Description: "Invoice tax",
		})
	}

	date := invoice.Date
	if date.IsZero() {
		date = time.Now()
	}
	description := fmt.Sprintf("Invoice %s issued", invoice.InvoiceNumber)
	return s.post(ctx, tenantID, invoice.BranchID, domain.SourceInvoice, invoice.InvoiceID, description, date, lines, actorID)
}

// PostBill posts a received vendor bill: expense for the subtotal, recoverable
// input tax when any was paid, payable for the total.
func (s *PostingService) PostBill(ctx context.Context, tenantID string, bill domain.BillEvent, actorID string) (*domain.JournalEntry, error) {
	expense, err := s.resolveRole(ctx, tenantID, domain.RoleExpense)
	if err != nil {
		return nil, err
	}
	payable, err := s.resolveRole(ctx, tenantID, domain.RoleAccountsPayable)
	if err != nil {
		return nil, err
	}

	lines := []dto.CreateEntryLine{
		{AccountCode: expense.Code, Debit: bill.Subtotal, Description: "Vendor bill expense"},
	}
	if bill.TaxAmount.IsPositive() {
		inputTax, err := s.resolveRole(ctx, tenantID, domain.RoleInputTax)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dto.CreateEntryLine{
			AccountCode: inputTax.Code, Debit: bill.TaxAmount, Description: "Recoverable input tax",
		})
	}
	lines = append(lines, dto.CreateEntryLine{
		AccountCode: payable.Code, Credit: bill.Total, Description: "Payable to " + bill.VendorName,
	})

	date := bill.Date
	if date.IsZero() {
		date = time.Now()
	}
	description := fmt.Sprintf("Bill %s from %s", bill.BillNumber, bill.VendorName)
	return s.post(ctx, tenantID, bill.BranchID, domain.SourceBill, bill.BillID, description, date, lines, actorID)
}
