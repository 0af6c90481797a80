package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// AdjustmentWriterSvc produces adjustment journals and their reversals
type AdjustmentWriterSvc interface {
	// RecordAdjustment stores the adjustment intent. No journal is written.
	RecordAdjustment(ctx context.Context, tenantID, userID, sessionID string, req dto.RecordAdjustmentRequest) (*domain.ReconciliationAdjustment, error)

	// BulkRecordAdjustments stores several adjustment intents in one transaction.
	// Adjustments flagged Post are posted afterwards, one at a time.
	BulkRecordAdjustments(ctx context.Context, tenantID, userID, sessionID string, req dto.BulkRecordAdjustmentsRequest) ([]domain.ReconciliationAdjustment, error)

	// PostAdjustment posts the two-line adjustment journal and links it to the adjustment.
	PostAdjustment(ctx context.Context, tenantID, userID, adjustmentID string) (*domain.ReconciliationAdjustment, error)

	// ReverseAdjustment posts the mirror journal of a posted adjustment. An adjustment
	// can be reversed once; later attempts fail with apperrors.DuplicateError.
	ReverseAdjustment(ctx context.Context, tenantID, userID, adjustmentID, reason string) (*domain.ReconciliationAdjustment, error)
}

// AdjustmentReaderSvc defines read operations for adjustments
type AdjustmentReaderSvc interface {
	ListAdjustmentHistory(ctx context.Context, tenantID, sessionID string) ([]domain.ReconciliationAdjustment, error)

	// ValidateAdjustmentBalance checks that the session's adjustments explain the expected difference.
	ValidateAdjustmentBalance(ctx context.Context, tenantID, sessionID string, expectedDifference decimal.Decimal) (*domain.AdjustmentBalanceCheck, error)
}

// ReconciliationSvcFacade combines adjustment reads and writes
type ReconciliationSvcFacade interface {
	AdjustmentWriterSvc
	AdjustmentReaderSvc
}
