package services

import (
	portsrepo "github.com/calyxerp/calyx_backend/internal/core/ports/repositories"
	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/platform/metrics"
)

// NewServiceContainer wires the core services onto the repository provider.
// The metrics collector may be nil when metrics are disabled.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, collector *metrics.Collector) *portssvc.ServiceContainer {
	coaSvc := NewCoAService(repos.AccountRepo, repos.ConfigRepo)

	var ledgerOpts []LedgerServiceOption
	var postingOpts []PostingServiceOption
	if collector != nil {
		ledgerOpts = append(ledgerOpts, WithMetrics(collector))
		postingOpts = append(postingOpts, WithPostingMetrics(collector))
	}

	ledgerSvc := NewLedgerService(repos.JournalRepo, coaSvc, ledgerOpts...)
	postingSvc := NewPostingService(ledgerSvc, coaSvc, postingOpts...)
	reportingSvc := NewReportingService(repos.ReportingRepo)

	return &portssvc.ServiceContainer{
		CoA:       coaSvc,
		Ledger:    ledgerSvc,
		Posting:   postingSvc,
		Reporting: reportingSvc,
	}
}
