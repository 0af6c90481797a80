package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// MockFiscalPeriodRepository is a mock type for the FiscalPeriodReader interface
type MockFiscalPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalPeriodReader = (*MockFiscalPeriodRepository)(nil)

func (m *MockFiscalPeriodRepository) FindFiscalPeriodByID(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, tenantID, fiscalPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, tenantID, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, tenantID string, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, tenantID, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalRepository) FindOpeningBalanceEntry(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, fiscalPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLedgerEntriesByJournalIDs(ctx context.Context, tenantID string, journalIDs []string) (map[string][]domain.GeneralLedgerEntry, error) {
	args := m.Called(ctx, tenantID, journalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.GeneralLedgerEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalWithLedger(ctx context.Context, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error) {
	args := m.Called(ctx, entry, ledger, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerEntry), args.Error(1)
}

// MockAdjustmentRepository is a mock type for the AdjustmentRepositoryFacade interface
type MockAdjustmentRepository struct {
	mock.Mock
}

var _ portsrepo.AdjustmentRepositoryFacade = (*MockAdjustmentRepository)(nil)

func (m *MockAdjustmentRepository) FindAdjustmentByID(ctx context.Context, tenantID, adjustmentID string) (*domain.ReconciliationAdjustment, error) {
	args := m.Called(ctx, tenantID, adjustmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) ListAdjustmentsBySession(ctx context.Context, tenantID, sessionID string) ([]domain.ReconciliationAdjustment, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) SaveAdjustments(ctx context.Context, adjustments []domain.ReconciliationAdjustment) error {
	args := m.Called(ctx, adjustments)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) PostAdjustmentJournal(ctx context.Context, tenantID, adjustmentID string, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error) {
	args := m.Called(ctx, tenantID, adjustmentID, entry, ledger, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerEntry), args.Error(1)
}

func (m *MockAdjustmentRepository) ReverseAdjustment(ctx context.Context, tenantID, adjustmentID, reason string, reversedAt time.Time, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error) {
	args := m.Called(ctx, tenantID, adjustmentID, reason, reversedAt, entry, ledger, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerEntry), args.Error(1)
}

// MockStagingRepository is a mock type for the StagingRepositoryFacade interface
type MockStagingRepository struct {
	mock.Mock
}

var _ portsrepo.StagingRepositoryFacade = (*MockStagingRepository)(nil)

func (m *MockStagingRepository) FindSessionByID(ctx context.Context, tenantID, sessionID string) (*domain.BankImportSession, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankImportSession), args.Error(1)
}

func (m *MockStagingRepository) FindStagedEntries(ctx context.Context, tenantID, sessionID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockStagingRepository) CreateSession(ctx context.Context, session domain.BankImportSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockStagingRepository) SaveStagedEntries(ctx context.Context, tenantID, sessionID string, entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry, delta domain.StagingSnapshot, transactionCount int) (*domain.BankImportSession, error) {
	args := m.Called(ctx, tenantID, sessionID, entries, ledger, delta, transactionCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankImportSession), args.Error(1)
}

func (m *MockStagingRepository) PostStagedSession(ctx context.Context, tenantID, sessionID, postedBy string, postedAt time.Time, entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) (*domain.BankImportSession, error) {
	args := m.Called(ctx, tenantID, sessionID, postedBy, postedAt, entries, ledger, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankImportSession), args.Error(1)
}

// MockMappingRuleRepository is a mock type for the MappingRuleReader interface
type MockMappingRuleRepository struct {
	mock.Mock
}

var _ portsrepo.MappingRuleReader = (*MockMappingRuleRepository)(nil)

func (m *MockMappingRuleRepository) ListActiveMappingRules(ctx context.Context, tenantID string) ([]domain.MappingRule, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingRule), args.Error(1)
}

// MockArchiveRepository is a mock type for the ArchiveRepositoryFacade interface
type MockArchiveRepository struct {
	mock.Mock
}

var _ portsrepo.ArchiveRepositoryFacade = (*MockArchiveRepository)(nil)

func (m *MockArchiveRepository) ListArchivedSessions(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ArchivedSession, *string, error) {
	args := m.Called(ctx, tenantID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.ArchivedSession), next, args.Error(2)
}

func (m *MockArchiveRepository) FindArchivedSession(ctx context.Context, tenantID, sessionID string) (*domain.ArchivedSession, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedSession), args.Error(1)
}

func (m *MockArchiveRepository) ListArchivedJournalEntries(ctx context.Context, tenantID, sessionID string) ([]domain.ArchivedJournalEntry, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedJournalEntry), args.Error(1)
}

func (m *MockArchiveRepository) ListArchivedGLEntries(ctx context.Context, tenantID, sessionID string) ([]domain.ArchivedGLEntry, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedGLEntry), args.Error(1)
}

func (m *MockArchiveRepository) SumArchivedTotals(ctx context.Context, tenantID, sessionID string) (domain.LedgerTotals, error) {
	args := m.Called(ctx, tenantID, sessionID)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

func (m *MockArchiveRepository) CopySessionToArchive(ctx context.Context, tenantID, sessionID, archivedBy string, archivedAt time.Time) error {
	args := m.Called(ctx, tenantID, sessionID, archivedBy, archivedAt)
	return args.Error(0)
}

func (m *MockArchiveRepository) DeleteLiveSessionPage(ctx context.Context, tenantID, sessionID string, pageSize int) (int, error) {
	args := m.Called(ctx, tenantID, sessionID, pageSize)
	return args.Int(0), args.Error(1)
}

func (m *MockArchiveRepository) MarkSessionArchived(ctx context.Context, tenantID, sessionID, archivedBy string, archivedAt time.Time, totals domain.LedgerTotals, events ...domain.OutboxEvent) error {
	args := m.Called(ctx, tenantID, sessionID, archivedBy, archivedAt, totals, events)
	return args.Error(0)
}

// MockVerificationRepository is a mock type for the VerificationReader interface
type MockVerificationRepository struct {
	mock.Mock
}

var _ portsrepo.VerificationReader = (*MockVerificationRepository)(nil)

func (m *MockVerificationRepository) TrialBalanceByAccountCode(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockVerificationRepository) FindOrphanedLedgerEntries(ctx context.Context, tenantID string, limit int) ([]domain.GeneralLedgerEntry, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerEntry), args.Error(1)
}

func (m *MockVerificationRepository) FindDuplicatedLedgerLines(ctx context.Context, tenantID string, limit int) ([]string, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVerificationRepository) FindLinesWithoutLedger(ctx context.Context, tenantID string, limit int) ([]domain.JournalLine, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockVerificationRepository) FindUnbalancedJournals(ctx context.Context, tenantID string, limit int) ([]domain.JournalTotals, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalTotals), args.Error(1)
}

func (m *MockVerificationRepository) SumSessionLedgerTotals(ctx context.Context, tenantID, sessionID string) (domain.LedgerTotals, error) {
	args := m.Called(ctx, tenantID, sessionID)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

// MockMapper is a mock type for the BankTransactionMapper interface
type MockMapper struct {
	mock.Mock
}

var _ portssvc.BankTransactionMapper = (*MockMapper)(nil)

func (m *MockMapper) MapTransactions(ctx context.Context, tenantID string, session domain.BankImportSession, txns []domain.BankTransaction) ([]domain.MappedTransaction, []domain.UnmappedTransaction, error) {
	args := m.Called(ctx, tenantID, session, txns)
	var mapped []domain.MappedTransaction
	var unmapped []domain.UnmappedTransaction
	if args.Get(0) != nil {
		mapped = args.Get(0).([]domain.MappedTransaction)
	}
	if args.Get(1) != nil {
		unmapped = args.Get(1).([]domain.UnmappedTransaction)
	}
	return mapped, unmapped, args.Error(2)
}
