package repositories

// RepositoryProvider aggregates the concrete repositories handed to the
// service layer. Constructed once at startup by the pgsql package.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	ConfigRepo    AccountConfigRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
