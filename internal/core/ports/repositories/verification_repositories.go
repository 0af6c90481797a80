package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// VerificationReader provides the read-only aggregates the consistency checks need
type VerificationReader interface {
	// TrialBalanceByAccountCode sums live ledger rows of a tenant per account code.
	TrialBalanceByAccountCode(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error)

	// FindOrphanedLedgerEntries returns ledger rows whose (journal_entry_id, journal_line_id) resolves to no line.
	FindOrphanedLedgerEntries(ctx context.Context, tenantID string, limit int) ([]domain.GeneralLedgerEntry, error)

	// FindDuplicatedLedgerLines returns line ids projected by more than one ledger row.
	FindDuplicatedLedgerLines(ctx context.Context, tenantID string, limit int) ([]string, error)

	// FindLinesWithoutLedger returns posted journal lines with no ledger row.
	FindLinesWithoutLedger(ctx context.Context, tenantID string, limit int) ([]domain.JournalLine, error)

	// FindUnbalancedJournals returns posted entries whose lines differ by at least the tolerance.
	FindUnbalancedJournals(ctx context.Context, tenantID string, limit int) ([]domain.JournalTotals, error)

	// SumSessionLedgerTotals aggregates the live ledger rows produced by an import session.
	SumSessionLedgerTotals(ctx context.Context, tenantID, sessionID string) (domain.LedgerTotals, error)
}
