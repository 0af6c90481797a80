package handlers_test

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) PostJournal(ctx context.Context, tenantID, userID string, req dto.PostJournalRequest) (*domain.JournalWithLedger, error) {
	args := m.Called(ctx, tenantID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalWithLedger), args.Error(1)
}

func (m *MockJournalService) GetJournalWithLedger(ctx context.Context, tenantID, journalID string) (*domain.JournalWithLedger, error) {
	args := m.Called(ctx, tenantID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalWithLedger), args.Error(1)
}

func (m *MockJournalService) ListJournalsWithLedger(ctx context.Context, tenantID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock OpeningBalanceService ---
type MockOpeningBalanceService struct {
	mock.Mock
}

func (m *MockOpeningBalanceService) CreateOpeningBalance(ctx context.Context, tenantID, userID string, req dto.CreateOpeningBalanceRequest) (*domain.JournalWithLedger, error) {
	args := m.Called(ctx, tenantID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalWithLedger), args.Error(1)
}

func (m *MockOpeningBalanceService) GetOpeningBalance(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.JournalWithLedger, error) {
	args := m.Called(ctx, tenantID, fiscalPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalWithLedger), args.Error(1)
}

var _ portssvc.OpeningBalanceSvc = (*MockOpeningBalanceService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) RecordAdjustment(ctx context.Context, tenantID, userID, sessionID string, req dto.RecordAdjustmentRequest) (*domain.ReconciliationAdjustment, error) {
	args := m.Called(ctx, tenantID, userID, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationAdjustment), args.Error(1)
}

func (m *MockReconciliationService) BulkRecordAdjustments(ctx context.Context, tenantID, userID, sessionID string, req dto.BulkRecordAdjustmentsRequest) ([]domain.ReconciliationAdjustment, error) {
	args := m.Called(ctx, tenantID, userID, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationAdjustment), args.Error(1)
}

func (m *MockReconciliationService) PostAdjustment(ctx context.Context, tenantID, userID, adjustmentID string) (*domain.ReconciliationAdjustment, error) {
	args := m.Called(ctx, tenantID, userID, adjustmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationAdjustment), args.Error(1)
}

func (m *MockReconciliationService) ReverseAdjustment(ctx context.Context, tenantID, userID, adjustmentID, reason string) (*domain.ReconciliationAdjustment, error) {
	args := m.Called(ctx, tenantID, userID, adjustmentID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationAdjustment), args.Error(1)
}

func (m *MockReconciliationService) ListAdjustmentHistory(ctx context.Context, tenantID, sessionID string) ([]domain.ReconciliationAdjustment, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationAdjustment), args.Error(1)
}

func (m *MockReconciliationService) ValidateAdjustmentBalance(ctx context.Context, tenantID, sessionID string, expectedDifference decimal.Decimal) (*domain.AdjustmentBalanceCheck, error) {
	args := m.Called(ctx, tenantID, sessionID, expectedDifference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustmentBalanceCheck), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Mock StagingService ---
type MockStagingService struct {
	mock.Mock
}

func (m *MockStagingService) CreateSession(ctx context.Context, tenantID, userID string, req dto.CreateBankImportRequest) (*domain.BankImportSession, error) {
	args := m.Called(ctx, tenantID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankImportSession), args.Error(1)
}

func (m *MockStagingService) GetSession(ctx context.Context, tenantID, sessionID string) (*domain.BankImportSession, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankImportSession), args.Error(1)
}

func (m *MockStagingService) StageTransactions(ctx context.Context, tenantID, userID, sessionID string, txns []domain.BankTransaction) (*domain.StageResult, error) {
	args := m.Called(ctx, tenantID, userID, sessionID, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StageResult), args.Error(1)
}

func (m *MockStagingService) PostSession(ctx context.Context, tenantID, userID, sessionID string) (*domain.BankImportSession, error) {
	args := m.Called(ctx, tenantID, userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankImportSession), args.Error(1)
}

func (m *MockStagingService) ArchiveSession(ctx context.Context, tenantID, userID, sessionID string) (*domain.ArchivedSession, error) {
	args := m.Called(ctx, tenantID, userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedSession), args.Error(1)
}

var _ portssvc.StagingSvc = (*MockStagingService)(nil)

// --- Mock ArchiveService ---
type MockArchiveService struct {
	mock.Mock
}

func (m *MockArchiveService) ListArchivedSessions(ctx context.Context, tenantID string, params dto.ListArchivedSessionsParams) (*dto.ListArchivedSessionsResponse, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListArchivedSessionsResponse), args.Error(1)
}

func (m *MockArchiveService) GetArchivedSessionDetail(ctx context.Context, tenantID, sessionID string) (*domain.ArchivedSessionDetail, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedSessionDetail), args.Error(1)
}

var _ portssvc.ArchiveReaderSvc = (*MockArchiveService)(nil)

// --- Mock VerificationService ---
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) TrialBalance(ctx context.Context, tenantID string) (*domain.TrialBalance, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockVerificationService) VerifyTenant(ctx context.Context, tenantID string) (*domain.VerificationReport, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationReport), args.Error(1)
}

func (m *MockVerificationService) VerifySession(ctx context.Context, tenantID, sessionID string) (*domain.VerificationReport, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationReport), args.Error(1)
}

var _ portssvc.VerificationSvc = (*MockVerificationService)(nil)
