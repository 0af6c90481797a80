package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal entry with its lines.
	FindJournalByID(ctx context.Context, tenantID, journalID string) (*domain.JournalEntry, error)

	// ListJournals retrieves a page of journal entries (with lines) using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListJournals(ctx context.Context, tenantID string, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// FindOpeningBalanceEntry returns the opening balance entry of a fiscal period, or apperrors.ErrNotFound.
	FindOpeningBalanceEntry(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.JournalEntry, error)
}

// LedgerReader defines read operations for general ledger rows
type LedgerReader interface {
	// FindLedgerEntriesByJournalIDs retrieves ledger rows grouped by journal entry id.
	FindLedgerEntriesByJournalIDs(ctx context.Context, tenantID string, journalIDs []string) (map[string][]domain.GeneralLedgerEntry, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalWithLedger persists the entry, its lines, its ledger rows and the
	// given outbox events in one database transaction. Running balances are
	// computed under lock and returned on the ledger rows.
	// A unique violation (e.g. a second opening balance) is reported as apperrors.ErrDuplicate.
	SaveJournalWithLedger(ctx context.Context, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	LedgerReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
