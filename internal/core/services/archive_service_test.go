package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveService_ListDefaultsLimit(t *testing.T) {
	repo := new(MockArchiveRepository)
	repo.On("ListArchivedSessions", mock.Anything, testTenantID, 50, (*string)(nil)).Return(nil, nil, nil)

	resp, err := services.NewArchiveService(repo).ListArchivedSessions(context.Background(), testTenantID, dto.ListArchivedSessionsParams{})

	require.NoError(t, err)
	assert.NotNil(t, resp.Sessions)
	assert.Empty(t, resp.Sessions)
	assert.Nil(t, resp.NextToken)
}

func TestArchiveService_ListPassesToken(t *testing.T) {
	repo := new(MockArchiveRepository)
	token, next := "page-2", "page-3"
	repo.On("ListArchivedSessions", mock.Anything, testTenantID, 10, &token).
		Return([]domain.ArchivedSession{{BankImportSession: domain.BankImportSession{ID: "s1"}}}, &next, nil)

	resp, err := services.NewArchiveService(repo).ListArchivedSessions(context.Background(), testTenantID, dto.ListArchivedSessionsParams{Limit: 10, NextToken: &token})

	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "page-3", *resp.NextToken)
}

func TestArchiveService_GetDetail(t *testing.T) {
	repo := new(MockArchiveRepository)
	session := &domain.ArchivedSession{BankImportSession: domain.BankImportSession{ID: testSessionID}}
	repo.On("FindArchivedSession", mock.Anything, testTenantID, testSessionID).Return(session, nil)
	repo.On("ListArchivedJournalEntries", mock.Anything, testTenantID, testSessionID).
		Return([]domain.ArchivedJournalEntry{{JournalEntry: domain.JournalEntry{ID: "je-1"}, SessionID: testSessionID}}, nil)
	repo.On("ListArchivedGLEntries", mock.Anything, testTenantID, testSessionID).
		Return([]domain.ArchivedGLEntry{{SessionID: testSessionID}, {SessionID: testSessionID}}, nil)
	repo.On("FindArchivedSession", mock.Anything, testTenantID, "missing").Return(nil, apperrors.ErrNotFound)
	svc := services.NewArchiveService(repo)

	detail, err := svc.GetArchivedSessionDetail(context.Background(), testTenantID, testSessionID)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, detail.Session.ID)
	assert.Len(t, detail.Entries, 1)
	assert.Len(t, detail.GLEntries, 2)

	_, err = svc.GetArchivedSessionDetail(context.Background(), testTenantID, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
