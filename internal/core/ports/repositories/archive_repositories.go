package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// ArchiveReader is the read-only query surface over archived sessions
type ArchiveReader interface {
	// ListArchivedSessions returns archived sessions newest first, with token-based pagination.
	ListArchivedSessions(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ArchivedSession, *string, error)
	FindArchivedSession(ctx context.Context, tenantID, sessionID string) (*domain.ArchivedSession, error)
	ListArchivedJournalEntries(ctx context.Context, tenantID, sessionID string) ([]domain.ArchivedJournalEntry, error)

	// ListArchivedGLEntries returns rows ordered by transaction date ascending.
	ListArchivedGLEntries(ctx context.Context, tenantID, sessionID string) ([]domain.ArchivedGLEntry, error)

	// SumArchivedTotals aggregates the archived ledger rows of a session.
	SumArchivedTotals(ctx context.Context, tenantID, sessionID string) (domain.LedgerTotals, error)
}

// ArchiveWriter defines the archival steps. Each method is atomic on its own;
// the overall drain is not.
type ArchiveWriter interface {
	// CopySessionToArchive copies the session, its journal entries, lines and ledger
	// rows into the archive tables. Rows already archived are left untouched.
	CopySessionToArchive(ctx context.Context, tenantID, sessionID, archivedBy string, archivedAt time.Time) error

	// DeleteLiveSessionPage deletes up to pageSize live journal entries of the session
	// together with their lines and ledger rows, and returns how many entries it removed.
	DeleteLiveSessionPage(ctx context.Context, tenantID, sessionID string, pageSize int) (int, error)

	// MarkSessionArchived moves the session from posted to archived.
	// apperrors.ErrConflict means the session was not posted.
	MarkSessionArchived(ctx context.Context, tenantID, sessionID, archivedBy string, archivedAt time.Time, totals domain.LedgerTotals, events ...domain.OutboxEvent) error
}

// ArchiveRepositoryFacade combines archive reads and writes
type ArchiveRepositoryFacade interface {
	ArchiveReader
	ArchiveWriter
}
