package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	fiscalPeriodRepo := newPgxFiscalPeriodRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	adjustmentRepo := newPgxAdjustmentRepository(dbPool, accountRepo)
	stagingRepo := newPgxStagingRepository(dbPool, accountRepo)
	mappingRuleRepo := newPgxMappingRuleRepository(dbPool)
	archiveRepo := newPgxArchiveRepository(dbPool)
	verificationRepo := newVerificationRepository(dbPool)
	outboxRepo := newPgxOutboxRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		FiscalPeriodRepo: fiscalPeriodRepo,
		JournalRepo:      journalRepo,
		AdjustmentRepo:   adjustmentRepo,
		StagingRepo:      stagingRepo,
		MappingRuleRepo:  mappingRuleRepo,
		ArchiveRepo:      archiveRepo,
		VerificationRepo: verificationRepo,
		OutboxRepo:       outboxRepo,
	}
}
