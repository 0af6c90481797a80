package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// AdjustmentReader defines read operations for reconciliation adjustments
type AdjustmentReader interface {
	FindAdjustmentByID(ctx context.Context, tenantID, adjustmentID string) (*domain.ReconciliationAdjustment, error)

	// ListAdjustmentsBySession returns adjustments newest first.
	ListAdjustmentsBySession(ctx context.Context, tenantID, sessionID string) ([]domain.ReconciliationAdjustment, error)
}

// AdjustmentWriter defines write operations for reconciliation adjustments
type AdjustmentWriter interface {
	// SaveAdjustments inserts all adjustments in one transaction.
	SaveAdjustments(ctx context.Context, adjustments []domain.ReconciliationAdjustment) error

	// PostAdjustmentJournal writes the adjustment journal and its ledger rows and sets
	// posted_journal_id, all in one transaction. It returns apperrors.ErrConflict when
	// the adjustment already has a posted journal.
	PostAdjustmentJournal(ctx context.Context, tenantID, adjustmentID string, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error)

	// ReverseAdjustment claims the adjustment's reversal slot with a conditional
	// update on reversal_journal_id IS NULL and writes the reversal journal in the
	// same transaction. A lost claim is reported as apperrors.ErrDuplicate.
	ReverseAdjustment(ctx context.Context, tenantID, adjustmentID, reason string, reversedAt time.Time, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error)
}

// AdjustmentRepositoryFacade combines adjustment reads and writes
type AdjustmentRepositoryFacade interface {
	AdjustmentReader
	AdjustmentWriter
}
