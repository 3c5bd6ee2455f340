package services

// ServiceContainer aggregates the core services handed to the HTTP layer.
type ServiceContainer struct {
	CoA       CoASvcFacade
	Ledger    LedgerSvcFacade
	Posting   PostingSvcFacade
	Reporting ReportingSvcFacade
}
