package services

import (
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	base := BaseService{StepTimeout: cfg.RequestTimeout}

	// Every producer posts through the same validator and projector.
	validator := NewJournalValidator(repos.AccountRepo, cfg.DefaultCurrency)
	preparer := NewJournalPreparer(base, validator, NewLedgerProjector(), repos.FiscalPeriodRepo)

	container := &portssvc.ServiceContainer{}
	container.Journal = NewJournalService(repos.JournalRepo, preparer)
	container.OpeningBalance = NewOpeningBalanceService(
		repos.AccountRepo,
		repos.JournalRepo,
		preparer,
		WithOpeningBalanceCurrency(cfg.DefaultCurrency),
	)
	container.Reconciliation = NewReconciliationService(repos.AccountRepo, repos.JournalRepo, repos.AdjustmentRepo, preparer)
	container.Staging = NewStagingService(
		repos,
		preparer,
		WithArchivePageSize(cfg.ArchivePageSize),
		WithStagingCurrency(cfg.DefaultCurrency),
	)
	container.Archive = NewArchiveService(repos.ArchiveRepo)
	container.Verification = NewVerificationService(repos.VerificationRepo, repos.StagingRepo, repos.ArchiveRepo)

	return container
}
