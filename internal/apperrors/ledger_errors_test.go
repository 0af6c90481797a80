package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestLedgerErrors_UnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", apperrors.NewValidationError("t1", apperrors.RuleUnbalanced, "off by %s", "1.00"), apperrors.ErrValidation},
		{"duplicate", &apperrors.DuplicateError{TenantID: "t1", Key: "k", Remediation: "delete it"}, apperrors.ErrDuplicate},
		{"not found", apperrors.NewNotFoundError("t1", "session", "s1"), apperrors.ErrNotFound},
		{"integrity", &apperrors.IntegrityError{TenantID: "t1", Diagnosis: apperrors.DiagnosisOrphanedLedgerRow}, apperrors.ErrIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service layer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestPublicMessage_HidesInternalDetail(t *testing.T) {
	ie := &apperrors.IntegrityError{
		TenantID:  "t1",
		SessionID: "s1",
		Diagnosis: apperrors.DiagnosisProbableDuplicatePosting,
		Detail:    "select sum(debit) from general_ledger_entries returned 2000",
	}
	msg := apperrors.PublicMessage(fmt.Errorf("verify: %w", ie))
	assert.Contains(t, msg, "probable duplicate posting")
	assert.NotContains(t, msg, "general_ledger_entries")

	assert.Equal(t, "Internal server error", apperrors.PublicMessage(errors.New("pq: connection reset")))
	assert.Equal(t, "Please delete the existing entry first.", apperrors.PublicMessage(&apperrors.DuplicateError{Remediation: "Please delete the existing entry first."}))
}

func TestIsProbableDuplicate(t *testing.T) {
	assert.True(t, apperrors.IsProbableDuplicate(&apperrors.IntegrityError{Diagnosis: apperrors.DiagnosisProbableDuplicatePosting}))
	assert.False(t, apperrors.IsProbableDuplicate(&apperrors.IntegrityError{Diagnosis: apperrors.DiagnosisTotalsMismatch}))
	assert.False(t, apperrors.IsProbableDuplicate(apperrors.ErrIntegrity))
}

func TestLogAttrs_CarriesTenantAndSession(t *testing.T) {
	err := &apperrors.ValidationError{TenantID: "t1", SessionID: "s1", Rule: apperrors.RuleSessionState, Detail: "x"}
	attrs := apperrors.LogAttrs(err)
	assert.Len(t, attrs, 3)
}
