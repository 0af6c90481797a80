package dto

import "github.com/SscSPs/ledger_engine/internal/core/domain"

// ListArchivedSessionsParams defines query parameters for archive browsing.
type ListArchivedSessionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListArchivedSessionsResponse wraps a page of archived sessions.
type ListArchivedSessionsResponse struct {
	Sessions  []domain.ArchivedSession `json:"sessions"`
	NextToken *string                  `json:"nextToken,omitempty"`
}
