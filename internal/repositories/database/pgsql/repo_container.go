package pgsql

import (
	portsrepo "github.com/calyxerp/calyx_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql-backed repositories onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(pool),
		ConfigRepo:    newPgxConfigRepository(pool),
		JournalRepo:   newPgxJournalRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
