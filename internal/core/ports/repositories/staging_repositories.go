package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// StagingReader defines read operations for bank import sessions and their staged candidates
type StagingReader interface {
	FindSessionByID(ctx context.Context, tenantID, sessionID string) (*domain.BankImportSession, error)

	// FindStagedEntries returns the session's candidates that are not yet posted, with lines.
	FindStagedEntries(ctx context.Context, tenantID, sessionID string) ([]domain.JournalEntry, error)
}

// StagingWriter defines write operations for the staging area
type StagingWriter interface {
	CreateSession(ctx context.Context, session domain.BankImportSession) error

	// SaveStagedEntries writes candidates and their staging ledger rows, then adds
	// delta and transactionCount to the session counters. The session must still be
	// staged, otherwise apperrors.ErrConflict. The updated session is returned.
	SaveStagedEntries(ctx context.Context, tenantID, sessionID string, entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry, delta domain.StagingSnapshot, transactionCount int) (*domain.BankImportSession, error)

	// PostStagedSession moves the session from staged to posted, writes the
	// production journal entries and ledger rows, and marks the staging rows posted,
	// all in one transaction. apperrors.ErrConflict means the session was no longer staged.
	PostStagedSession(ctx context.Context, tenantID, sessionID, postedBy string, postedAt time.Time, entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) (*domain.BankImportSession, error)
}

// StagingRepositoryFacade combines staging reads and writes
type StagingRepositoryFacade interface {
	StagingReader
	StagingWriter
}

// MappingRuleReader is the storage behind the default bank transaction mapper
type MappingRuleReader interface {
	// ListActiveMappingRules returns active rules ordered by ascending priority.
	ListActiveMappingRules(ctx context.Context, tenantID string) ([]domain.MappingRule, error)
}
