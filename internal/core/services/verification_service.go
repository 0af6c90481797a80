package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/shopspring/decimal"
)

const defaultFindingLimit = 100

// ratioPrecision is how close a totals ratio must be to a whole number to count as one.
var ratioPrecision = decimal.New(1, -4)

// verificationService is the read-only ledger auditor. It reports problems and
// never corrects them.
type verificationService struct {
	BaseService
	verificationRepo portsrepo.VerificationReader
	stagingRepo      portsrepo.StagingReader
	archiveRepo      portsrepo.ArchiveReader
	findingLimit     int
}

// VerificationServiceOption is a functional option for configuring the verification service
type VerificationServiceOption func(*verificationService)

// WithFindingLimit caps how many rows each check reports.
func WithFindingLimit(n int) VerificationServiceOption {
	return func(s *verificationService) {
		if n > 0 {
			s.findingLimit = n
		}
	}
}

// NewVerificationService creates a new verification service.
func NewVerificationService(verificationRepo portsrepo.VerificationReader, stagingRepo portsrepo.StagingReader, archiveRepo portsrepo.ArchiveReader, options ...VerificationServiceOption) portssvc.VerificationSvc {
	svc := &verificationService{
		verificationRepo: verificationRepo,
		stagingRepo:      stagingRepo,
		archiveRepo:      archiveRepo,
		findingLimit:     defaultFindingLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VerificationSvc = (*verificationService)(nil)

func (s *verificationService) TrialBalance(ctx context.Context, tenantID string) (*domain.TrialBalance, error) {
	rows, err := s.verificationRepo.TrialBalanceByAccountCode(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance", slog.String("tenant_id", tenantID))
		return nil, err
	}
	tb := domain.NewTrialBalance(rows)
	return &tb, nil
}

// VerifyTenant runs the tenant-wide checks. Findings are ordered most severe first.
func (s *verificationService) VerifyTenant(ctx context.Context, tenantID string) (result *domain.VerificationReport, err error) {
	ctx, span := s.StartSpan(ctx, "verification.tenant", tenantID)
	defer func() { s.EndSpan(span, err) }()

	report := &domain.VerificationReport{TenantID: tenantID, CheckedAt: s.Now(), Findings: []domain.Finding{}}

	duplicated, err := s.verificationRepo.FindDuplicatedLedgerLines(ctx, tenantID, s.findingLimit)
	if err != nil {
		return nil, err
	}
	for _, lineID := range duplicated {
		report.Findings = append(report.Findings, domain.Finding{
			Diagnosis: apperrors.DiagnosisProbableDuplicatePosting,
			Reference: lineID,
			Detail:    fmt.Sprintf("journal line %s is projected by more than one ledger row", lineID),
		})
	}

	orphans, err := s.verificationRepo.FindOrphanedLedgerEntries(ctx, tenantID, s.findingLimit)
	if err != nil {
		return nil, err
	}
	for _, row := range orphans {
		report.Findings = append(report.Findings, domain.Finding{
			Diagnosis: apperrors.DiagnosisOrphanedLedgerRow,
			Reference: row.ID,
			Detail:    fmt.Sprintf("ledger row %s points at journal %s line %s which does not exist", row.ID, row.JournalEntryID, row.JournalLineID),
		})
	}

	missing, err := s.verificationRepo.FindLinesWithoutLedger(ctx, tenantID, s.findingLimit)
	if err != nil {
		return nil, err
	}
	for _, line := range missing {
		report.Findings = append(report.Findings, domain.Finding{
			Diagnosis: apperrors.DiagnosisMissingLedgerRow,
			Reference: line.LineID,
			Detail:    fmt.Sprintf("line %d of journal %s has no ledger row", line.LineNumber, line.JournalEntryID),
		})
	}

	unbalanced, err := s.verificationRepo.FindUnbalancedJournals(ctx, tenantID, s.findingLimit)
	if err != nil {
		return nil, err
	}
	for _, jt := range unbalanced {
		report.Findings = append(report.Findings, domain.Finding{
			Diagnosis: apperrors.DiagnosisUnbalancedJournal,
			Reference: jt.JournalEntryID,
			Detail:    fmt.Sprintf("debits %s, credits %s", jt.Debits.StringFixed(2), jt.Credits.StringFixed(2)),
		})
	}

	tb, err := s.TrialBalance(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	report.TrialBalance = tb
	if !tb.IsBalanced {
		report.Findings = append(report.Findings, domain.Finding{
			Diagnosis: apperrors.DiagnosisTrialBalanceMismatch,
			Detail:    fmt.Sprintf("debits %s, credits %s", tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2)),
		})
	}

	if report.Healthy() {
		s.LogInfo(ctx, "Ledger verification passed", slog.String("tenant_id", tenantID))
		return report, nil
	}
	first := report.Findings[0]
	ie := &apperrors.IntegrityError{
		TenantID:  tenantID,
		Diagnosis: first.Diagnosis,
		Detail:    fmt.Sprintf("%d finding(s); first: %s", len(report.Findings), first.Detail),
	}
	s.LogError(ctx, ie, "Ledger verification found problems", slog.Int("findings", len(report.Findings)))
	return report, ie
}

// VerifySession compares a session's staging snapshot with the ledger rows it produced.
func (s *verificationService) VerifySession(ctx context.Context, tenantID, sessionID string) (result *domain.VerificationReport, err error) {
	ctx, span := s.StartSpan(ctx, "verification.session", tenantID)
	defer func() { s.EndSpan(span, err) }()

	session, err := s.stagingRepo.FindSessionByID(ctx, tenantID, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			nf := apperrors.NewNotFoundError(tenantID, "bank import session", sessionID)
			nf.SessionID = sessionID
			return nil, nf
		}
		return nil, err
	}

	var actual domain.LedgerTotals
	switch session.Status {
	case domain.SessionStaged:
		return nil, &apperrors.ValidationError{
			TenantID:  tenantID,
			SessionID: sessionID,
			Rule:      apperrors.RuleSessionState,
			Detail:    "the session has not been posted, there are no ledger rows to verify",
		}
	case domain.SessionPosted:
		actual, err = s.verificationRepo.SumSessionLedgerTotals(ctx, tenantID, sessionID)
	case domain.SessionArchived:
		actual, err = s.archiveRepo.SumArchivedTotals(ctx, tenantID, sessionID)
	default:
		return nil, fmt.Errorf("unknown session status %q", session.Status)
	}
	if err != nil {
		return nil, err
	}

	comparison := DiagnoseTotals(snapshotTotals(session.Staging), actual)
	report := &domain.VerificationReport{
		TenantID:   tenantID,
		SessionID:  sessionID,
		CheckedAt:  s.Now(),
		Comparison: &comparison,
		Findings:   []domain.Finding{},
	}
	if comparison.Diagnosis == "" {
		return report, nil
	}

	detail := describeComparison(comparison, session.Currency)
	report.Findings = append(report.Findings, domain.Finding{Diagnosis: comparison.Diagnosis, Reference: sessionID, Detail: detail})
	ie := &apperrors.IntegrityError{TenantID: tenantID, SessionID: sessionID, Diagnosis: comparison.Diagnosis, Detail: detail}
	s.LogError(ctx, ie, "Session ledger totals disagree with staging snapshot")
	return report, ie
}

// DiagnoseTotals compares actual ledger totals with an expected baseline. When
// actual debits are a whole multiple (2 or more) of the expected debits the
// mismatch is diagnosed as a probable duplicate posting.
func DiagnoseTotals(expected, actual domain.LedgerTotals) domain.TotalsComparison {
	cmp := domain.TotalsComparison{Expected: expected, Actual: actual}
	if expected.Equal(actual) {
		return cmp
	}
	cmp.Diagnosis = apperrors.DiagnosisTotalsMismatch
	if !expected.Debits.IsPositive() {
		return cmp
	}

	ratio := actual.Debits.DivRound(expected.Debits, 8)
	cmp.Ratio = &ratio
	whole := ratio.Round(0)
	if whole.GreaterThanOrEqual(decimal.NewFromInt(2)) && ratio.Sub(whole).Abs().LessThan(ratioPrecision) {
		cmp.Diagnosis = apperrors.DiagnosisProbableDuplicatePosting
	}
	return cmp
}

func describeComparison(cmp domain.TotalsComparison, currency string) string {
	detail := fmt.Sprintf("expected debits %s / credits %s over %d rows, found debits %s / credits %s over %d rows",
		utils.FormatAmount(cmp.Expected.Debits, currency), utils.FormatAmount(cmp.Expected.Credits, currency), cmp.Expected.RowCount,
		utils.FormatAmount(cmp.Actual.Debits, currency), utils.FormatAmount(cmp.Actual.Credits, currency), cmp.Actual.RowCount)
	if cmp.Ratio != nil {
		detail += fmt.Sprintf(" (ratio %s)", cmp.Ratio.StringFixed(2))
	}
	return detail
}
