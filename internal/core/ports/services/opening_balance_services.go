package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// OpeningBalanceSvc produces the one-shot opening balance entry of a fiscal period
type OpeningBalanceSvc interface {
	// CreateOpeningBalance posts the balancing opening entry. A second call for the
	// same fiscal period fails with apperrors.DuplicateError.
	CreateOpeningBalance(ctx context.Context, tenantID, userID string, req dto.CreateOpeningBalanceRequest) (*domain.JournalWithLedger, error)

	// GetOpeningBalance returns the existing opening balance entry of a fiscal period.
	GetOpeningBalance(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.JournalWithLedger, error)
}
