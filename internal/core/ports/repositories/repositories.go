package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	FiscalPeriodRepo FiscalPeriodReader
	JournalRepo      JournalRepositoryFacade
	AdjustmentRepo   AdjustmentRepositoryFacade
	StagingRepo      StagingRepositoryFacade
	MappingRuleRepo  MappingRuleReader
	ArchiveRepo      ArchiveRepositoryFacade
	VerificationRepo VerificationReader
	OutboxRepo       OutboxRepository
}
