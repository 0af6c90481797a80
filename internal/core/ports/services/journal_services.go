package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// JournalReaderSvc is the "journal entries with ledger detail" query surface
type JournalReaderSvc interface {
	// GetJournalWithLedger retrieves a journal entry, its lines and its ledger rows.
	GetJournalWithLedger(ctx context.Context, tenantID, journalID string) (*domain.JournalWithLedger, error)

	// ListJournalsWithLedger retrieves a page of journal entries with their ledger rows.
	ListJournalsWithLedger(ctx context.Context, tenantID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for directly submitted journals
type JournalWriterSvc interface {
	// PostJournal validates, projects and atomically posts a manual, receivable,
	// payable or general journal entry.
	PostJournal(ctx context.Context, tenantID, userID string, req dto.PostJournalRequest) (*domain.JournalWithLedger, error)
}

// JournalSvcFacade combines journal reads and writes
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
