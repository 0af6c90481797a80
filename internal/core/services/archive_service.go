package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

const defaultArchiveListLimit = 50

type archiveService struct {
	BaseService
	archiveRepo portsrepo.ArchiveReader
}

// NewArchiveService creates the archived session query service.
func NewArchiveService(archiveRepo portsrepo.ArchiveReader) portssvc.ArchiveReaderSvc {
	return &archiveService{archiveRepo: archiveRepo}
}

var _ portssvc.ArchiveReaderSvc = (*archiveService)(nil)

func (s *archiveService) ListArchivedSessions(ctx context.Context, tenantID string, params dto.ListArchivedSessionsParams) (*dto.ListArchivedSessionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultArchiveListLimit
	}
	sessions, nextToken, err := s.archiveRepo.ListArchivedSessions(ctx, tenantID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list archived sessions", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.ArchivedSession{}
	}
	return &dto.ListArchivedSessionsResponse{Sessions: sessions, NextToken: nextToken}, nil
}

func (s *archiveService) GetArchivedSessionDetail(ctx context.Context, tenantID, sessionID string) (*domain.ArchivedSessionDetail, error) {
	session, err := s.archiveRepo.FindArchivedSession(ctx, tenantID, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			nf := apperrors.NewNotFoundError(tenantID, "archived session", sessionID)
			nf.SessionID = sessionID
			return nil, nf
		}
		return nil, err
	}
	entries, err := s.archiveRepo.ListArchivedJournalEntries(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	glEntries, err := s.archiveRepo.ListArchivedGLEntries(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	return &domain.ArchivedSessionDetail{Session: *session, Entries: entries, GLEntries: glEntries}, nil
}
