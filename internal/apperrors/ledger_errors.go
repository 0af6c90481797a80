package apperrors

import (
	"errors"
	"fmt"
	"log/slog"
)

// Validation rules reported by ValidationError.Rule.
const (
	RuleMinLines           = "min_lines"
	RuleUnbalanced         = "unbalanced"
	RuleUnknownAccount     = "unknown_account"
	RuleMalformedLine      = "malformed_line"
	RuleUnknownSource      = "unknown_source"
	RuleSourcePayload      = "source_payload"
	RuleFiscalPeriodClosed = "fiscal_period_closed"
	RuleSessionState       = "session_state"
	RuleMalformedInput     = "malformed_input"
	RuleAdjustmentBalance  = "adjustment_balance"
)

// Diagnoses reported by IntegrityError.Diagnosis.
const (
	DiagnosisPostedImmutable          = "posted entry is immutable"
	DiagnosisTrialBalanceMismatch     = "trial balance mismatch"
	DiagnosisOrphanedLedgerRow        = "orphaned general ledger row"
	DiagnosisMissingLedgerRow         = "journal line without general ledger row"
	DiagnosisUnbalancedJournal        = "posted journal does not balance"
	DiagnosisProbableDuplicatePosting = "probable duplicate posting"
	DiagnosisTotalsMismatch           = "ledger totals do not match expected baseline"
	DiagnosisArchiveTotalsMismatch    = "archive totals do not match live totals"
)

// ValidationError rejects input before anything is written.
type ValidationError struct {
	TenantID  string
	SessionID string
	Rule      string
	Detail    string
}

// NewValidationError builds a ValidationError for the given rule.
func NewValidationError(tenantID, rule, format string, args ...any) *ValidationError {
	return &ValidationError{TenantID: tenantID, Rule: rule, Detail: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%s): %s", ErrValidation.Error(), e.Rule, e.Detail)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DuplicateError reports a unique key that already has a row.
// Remediation tells the caller what to do instead of overwriting.
type DuplicateError struct {
	TenantID    string
	SessionID   string
	Key         string
	Remediation string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s (%s): %s", ErrDuplicate.Error(), e.Key, e.Remediation)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// NotFoundError names the missing resource.
type NotFoundError struct {
	TenantID  string
	SessionID string
	Resource  string
	ID        string
}

// NewNotFoundError builds a NotFoundError.
func NewNotFoundError(tenantID, resource, id string) *NotFoundError {
	return &NotFoundError{TenantID: tenantID, Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IntegrityError is raised by consistency checks. It is never auto-corrected.
type IntegrityError struct {
	TenantID  string
	SessionID string
	Diagnosis string
	Detail    string
}

func (e *IntegrityError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrIntegrity.Error(), e.Diagnosis)
	}
	return fmt.Sprintf("%s: %s: %s", ErrIntegrity.Error(), e.Diagnosis, e.Detail)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }

// IsProbableDuplicate reports whether err carries the duplicate posting diagnosis.
func IsProbableDuplicate(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie) && ie.Diagnosis == DiagnosisProbableDuplicatePosting
}

// PublicMessage returns the sanitized, user-facing summary of err.
func PublicMessage(err error) string {
	var (
		ve *ValidationError
		de *DuplicateError
		ne *NotFoundError
		ie *IntegrityError
	)
	switch {
	case errors.As(err, &ve):
		return "Rejected: " + ve.Detail
	case errors.As(err, &de):
		return de.Remediation
	case errors.As(err, &ne):
		return ne.Resource + " not found"
	case errors.As(err, &ie):
		return "Ledger consistency check failed: " + ie.Diagnosis + ". An operator must review before any correction."
	case errors.Is(err, ErrValidation):
		return "Invalid request"
	case errors.Is(err, ErrNotFound):
		return "Resource not found"
	case errors.Is(err, ErrStaleStaging):
		return "Transactions were staged while the session was being posted. Nothing was posted; retry the post."
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return "The resource was changed by another request. Reload and try again."
	default:
		return "Internal server error"
	}
}

// LogAttrs extracts the tenant and session context carried by err.
func LogAttrs(err error) []any {
	tenantID, sessionID := "", ""
	var (
		ve *ValidationError
		de *DuplicateError
		ne *NotFoundError
		ie *IntegrityError
	)
	switch {
	case errors.As(err, &ve):
		tenantID, sessionID = ve.TenantID, ve.SessionID
	case errors.As(err, &de):
		tenantID, sessionID = de.TenantID, de.SessionID
	case errors.As(err, &ne):
		tenantID, sessionID = ne.TenantID, ne.SessionID
	case errors.As(err, &ie):
		tenantID, sessionID = ie.TenantID, ie.SessionID
	}
	attrs := []any{slog.String("error", err.Error())}
	if tenantID != "" {
		attrs = append(attrs, slog.String("tenant_id", tenantID))
	}
	if sessionID != "" {
		attrs = append(attrs, slog.String("session_id", sessionID))
	}
	return attrs
}
