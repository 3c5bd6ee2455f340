package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portsrepo "github.com/calyxerp/calyx_backend/internal/core/ports/repositories"
	"github.com/calyxerp/calyx_backend/internal/models"
	"github.com/calyxerp/calyx_backend/internal/utils/mapping"
	"github.com/calyxerp/calyx_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `
	entry_id, tenant_id, branch_id, entry_date, description, reference,
	source_type, source_id, created_at, created_by, last_updated_at, last_updated_by
`

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.BranchID,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.SourceType,
		&m.SourceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEntry persists a journal entry header and all of its lines in a single
// transaction. Either everything lands or nothing does. A violation of the
// (tenant_id, source_type, source_id) unique index maps to
// apperrors.ErrDuplicateSourcePosting so the service can fetch the winner.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	header := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction for entry save", err)
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO journal_entries (
			entry_id, tenant_id, branch_id, entry_date, description, reference,
			source_type, source_id, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, headerQuery,
		header.EntryID,
		header.TenantID,
		header.BranchID,
		header.EntryDate,
		header.Description,
		header.Reference,
		header.SourceType,
		header.SourceID,
		header.CreatedAt,
		header.CreatedBy,
		header.LastUpdatedAt,
		header.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicateSourcePosting
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+header.EntryID, err)
	}

	lineQuery := `
		INSERT INTO ledger_lines (
			line_id, entry_id, account_id, debit, credit, description, line_no
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		m := mapping.ToModelLedgerLine(line)
		batch.Queue(lineQuery,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.Description,
			m.LineNo,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, fmt.Sprintf("failed to insert line %d of entry %s", i, header.EntryID), err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close line batch for entry "+header.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit entry "+header.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves an entry header. Lines are loaded separately.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(*m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry in insertion order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, debit, credit, description, line_no
		FROM ledger_lines
		WHERE entry_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.LedgerLine{}
	for rows.Next() {
		var m models.LedgerLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&m.LineNo,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line row", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger line rows", err)
	}

	return mapping.ToDomainLedgerLineSlice(lines), nil
}

// FindEntryBySource retrieves the entry posted for a given source document,
// if one exists.
func (r *PgxJournalRepository) FindEntryBySource(ctx context.Context, tenantID, sourceType, sourceID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND source_type = $2 AND source_id = $3;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, tenantID, sourceType, sourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by source "+sourceType+"/"+sourceID, err)
	}

	entry := mapping.ToDomainJournalEntry(*m)
	return &entry, nil
}

// ListEntriesByTenant retrieves entry headers newest first, using a keyset
// cursor over (entry_date, created_at, entry_id). The entry id tiebreaker keeps
// the cursor total when bulk imports share both timestamps. It fetches limit+1
// rows to decide whether another page exists.
func (r *PgxJournalRepository) ListEntriesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{tenantID, limit + 1}
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1`

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, entryID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (entry_date, created_at, entry_id) < ($3, $4, $5)`
		args = append(args, entryDate, createdAt, entryID)
	}

	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for tenant "+tenantID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		token = &t
	}

	return entries, token, nil
}
