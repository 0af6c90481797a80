package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// VerificationSvc is the read-only ledger auditor
type VerificationSvc interface {
	// TrialBalance groups a tenant's ledger rows by account code.
	TrialBalance(ctx context.Context, tenantID string) (*domain.TrialBalance, error)

	// VerifyTenant runs every tenant-wide check. When anything is found the report
	// is returned together with an apperrors.IntegrityError.
	VerifyTenant(ctx context.Context, tenantID string) (*domain.VerificationReport, error)

	// VerifySession compares a session's staging snapshot with its ledger totals.
	VerifySession(ctx context.Context, tenantID, sessionID string) (*domain.VerificationReport, error)
}
