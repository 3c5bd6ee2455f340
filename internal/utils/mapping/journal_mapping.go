package mapping

import (
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/calyxerp/calyx_backend/internal/models"
)

// ToModelJournalEntry converts a domain.JournalEntry header to its database model.
// Lines are mapped separately; the header row never embeds them.
func ToModelJournalEntry(e domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     e.EntryID,
		TenantID:    e.TenantID,
		BranchID:    e.BranchID,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		SourceType:  e.SourceType,
		SourceID:    e.SourceID,
		AuditFields: ToModelAuditFields(e.AuditFields),
	}
}

// ToDomainJournalEntry converts a model entry header to the domain type.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		TenantID:    m.TenantID,
		BranchID:    m.BranchID,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Reference:   m.Reference,
		SourceType:  m.SourceType,
		SourceID:    m.SourceID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerLine converts a domain.LedgerLine to its database model.
func ToModelLedgerLine(l domain.LedgerLine) models.LedgerLine {
	return models.LedgerLine{
		LineID:      l.LineID,
		EntryID:     l.EntryID,
		AccountID:   l.AccountID,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Description: l.Description,
		LineNo:      l.LineNo,
	}
}

// ToDomainLedgerLine converts a model line to the domain type.
func ToDomainLedgerLine(m models.LedgerLine) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Description: m.Description,
		LineNo:      m.LineNo,
	}
}

// ToDomainLedgerLineSlice converts a slice of model lines.
func ToDomainLedgerLineSlice(lines []models.LedgerLine) []domain.LedgerLine {
	result := make([]domain.LedgerLine, len(lines))
	for i, l := range lines {
		result[i] = ToDomainLedgerLine(l)
	}
	return result
}
