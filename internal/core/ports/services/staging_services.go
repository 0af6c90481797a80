package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// BankTransactionMapper maps raw bank transactions to candidate journal lines.
// It is a collaborator of the staging pipeline, not part of it.
type BankTransactionMapper interface {
	MapTransactions(ctx context.Context, tenantID string, session domain.BankImportSession, txns []domain.BankTransaction) ([]domain.MappedTransaction, []domain.UnmappedTransaction, error)
}

// StagingSvc drives a bank import session through staged, posted and archived
type StagingSvc interface {
	CreateSession(ctx context.Context, tenantID, userID string, req dto.CreateBankImportRequest) (*domain.BankImportSession, error)
	GetSession(ctx context.Context, tenantID, sessionID string) (*domain.BankImportSession, error)

	// StageTransactions maps and stages transactions while the session is staged.
	StageTransactions(ctx context.Context, tenantID, userID, sessionID string, txns []domain.BankTransaction) (*domain.StageResult, error)

	// PostSession posts every staged candidate. Posting an already posted session is a no-op.
	PostSession(ctx context.Context, tenantID, userID, sessionID string) (*domain.BankImportSession, error)

	// ArchiveSession copies a posted session to the archive and prunes the live rows.
	ArchiveSession(ctx context.Context, tenantID, userID, sessionID string) (*domain.ArchivedSession, error)
}

// ArchiveReaderSvc is the "archived session summary + detail" query surface
type ArchiveReaderSvc interface {
	ListArchivedSessions(ctx context.Context, tenantID string, params dto.ListArchivedSessionsParams) (*dto.ListArchivedSessionsResponse, error)
	GetArchivedSessionDetail(ctx context.Context, tenantID, sessionID string) (*domain.ArchivedSessionDetail, error)
}
