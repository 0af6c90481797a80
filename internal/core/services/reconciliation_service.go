package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const (
	adjustmentJournalCode = "RECONCILIATION_ADJ"
	reversalJournalCode   = "RECONCILIATION_REV"
)

// reconciliationService records reconciliation adjustments, posts their
// journals and reverses them without touching the original entries.
type reconciliationService struct {
	BaseService
	accountRepo    portsrepo.AccountReader
	journalRepo    portsrepo.JournalReader
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	preparer       *JournalPreparer
}

// ReconciliationServiceOption is a functional option for configuring the reconciliation service
type ReconciliationServiceOption func(*reconciliationService)

// WithReconciliationStepTimeout bounds each transactional step.
func WithReconciliationStepTimeout(d time.Duration) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.StepTimeout = d
	}
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, adjustmentRepo portsrepo.AdjustmentRepositoryFacade, preparer *JournalPreparer, options ...ReconciliationServiceOption) portssvc.ReconciliationSvcFacade {
	svc := &reconciliationService{
		BaseService:    preparer.BaseService,
		accountRepo:    accountRepo,
		journalRepo:    journalRepo,
		adjustmentRepo: adjustmentRepo,
		preparer:       preparer,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

func (s *reconciliationService) RecordAdjustment(ctx context.Context, tenantID, userID, sessionID string, req dto.RecordAdjustmentRequest) (*domain.ReconciliationAdjustment, error) {
	adjustments, err := s.BulkRecordAdjustments(ctx, tenantID, userID, sessionID, dto.BulkRecordAdjustmentsRequest{
		Adjustments: []dto.RecordAdjustmentRequest{req},
	})
	if err != nil {
		return nil, err
	}
	return &adjustments[0], nil
}

// BulkRecordAdjustments saves every adjustment in one transaction. Adjustments
// flagged Post are then posted one by one, so a failing post leaves the earlier
// ones posted and the rest recorded but unposted.
func (s *reconciliationService) BulkRecordAdjustments(ctx context.Context, tenantID, userID, sessionID string, bulk dto.BulkRecordAdjustmentsRequest) (result []domain.ReconciliationAdjustment, err error) {
	reqs := bulk.Adjustments
	ctx, span := s.StartSpan(ctx, "reconciliation.record", tenantID, attribute.String("ledger.session_id", sessionID), attribute.Int("ledger.count", len(reqs)))
	defer func() { s.EndSpan(span, err) }()

	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "no adjustments supplied")
	}

	now := s.Now()
	adjustments := make([]domain.ReconciliationAdjustment, 0, len(reqs))
	for i, req := range reqs {
		adj, err := s.newAdjustment(ctx, tenantID, userID, sessionID, req, now)
		if err != nil {
			var ve *apperrors.ValidationError
			if errors.As(err, &ve) {
				ve.SessionID = sessionID
				if len(reqs) > 1 {
					ve.Detail = fmt.Sprintf("adjustment %d: %s", i+1, ve.Detail)
				}
			}
			return nil, err
		}
		adjustments = append(adjustments, *adj)
	}

	if bulk.ExpectedDifference != nil {
		if err := s.checkProjectedBalance(ctx, tenantID, sessionID, *bulk.ExpectedDifference, adjustments); err != nil {
			return nil, err
		}
	}

	stepCtx, cancel := s.StepContext(ctx)
	defer cancel()
	if err := s.adjustmentRepo.SaveAdjustments(stepCtx, adjustments); err != nil {
		s.LogError(ctx, err, "Failed to record adjustments", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}
	s.LogInfo(ctx, "Adjustments recorded",
		slog.String("tenant_id", tenantID),
		slog.String("session_id", sessionID),
		slog.Int("count", len(adjustments)))

	for i, req := range reqs {
		if !req.Post {
			continue
		}
		posted, err := s.PostAdjustment(ctx, tenantID, userID, adjustments[i].ID)
		if err != nil {
			return nil, err
		}
		adjustments[i] = *posted
	}
	return adjustments, nil
}

// checkProjectedBalance refuses a batch that, added to the adjustments already
// in effect, would not settle expectedDifference.
func (s *reconciliationService) checkProjectedBalance(ctx context.Context, tenantID, sessionID string, expectedDifference decimal.Decimal, proposed []domain.ReconciliationAdjustment) error {
	check, err := s.ValidateAdjustmentBalance(ctx, tenantID, sessionID, expectedDifference)
	if err != nil {
		return err
	}
	left := check.Remaining
	for _, adj := range proposed {
		left = left.Sub(adj.Amount)
	}
	if domain.WithinTolerance(left, decimal.Zero) {
		return nil
	}
	ve := apperrors.NewValidationError(tenantID, apperrors.RuleAdjustmentBalance, "adjustments would leave a difference of %s", left.StringFixed(2))
	ve.SessionID = sessionID
	return ve
}

func (s *reconciliationService) newAdjustment(ctx context.Context, tenantID, userID, sessionID string, req dto.RecordAdjustmentRequest, now time.Time) (*domain.ReconciliationAdjustment, error) {
	adjType := domain.AdjustmentType(strings.ToLower(req.AdjustmentType))
	if !adjType.Valid() {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "unknown adjustment type %q", req.AdjustmentType)
	}
	if req.Amount.IsZero() {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "adjustment amount must not be zero")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "adjustment description is required")
	}
	if req.BankAccountID == req.LedgerAccountID {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "bank and ledger account must differ")
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, []string{req.BankAccountID, req.LedgerAccountID})
	if err != nil {
		return nil, err
	}
	if _, ok := accounts[req.BankAccountID]; !ok {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownAccount, "bank account %s not found", req.BankAccountID)
	}
	ledgerAccount, ok := accounts[req.LedgerAccountID]
	if !ok {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownAccount, "ledger account %s not found", req.LedgerAccountID)
	}

	txDate := now
	if req.TransactionDate != nil {
		txDate = req.TransactionDate.UTC()
	}
	return &domain.ReconciliationAdjustment{
		ID:                uuid.NewString(),
		TenantID:          tenantID,
		SessionID:         sessionID,
		Description:       strings.TrimSpace(req.Description),
		Amount:            req.Amount,
		AdjustmentType:    adjType,
		BankAccountID:     req.BankAccountID,
		LedgerAccountID:   ledgerAccount.AccountID,
		LedgerAccountCode: ledgerAccount.Code,
		FiscalPeriodID:    domain.ResolveFiscalPeriodID(req.FiscalPeriodID, txDate),
		TransactionDate:   txDate,
		Metadata:          req.Metadata,
		CreatedBy:         userID,
		CreatedAt:         now,
	}, nil
}

// adjustmentLines returns the two legs of an adjustment journal. For a positive
// amount a fee debits the ledger account and credits the bank; every other type
// debits the bank and credits the ledger account. A negative amount swaps sides.
func adjustmentLines(adj domain.ReconciliationAdjustment) []domain.JournalLine {
	amount := adj.Amount.Abs()
	debitAccount, creditAccount := adj.BankAccountID, adj.LedgerAccountID
	switch adj.AdjustmentType {
	case domain.AdjustmentFee:
		debitAccount, creditAccount = adj.LedgerAccountID, adj.BankAccountID
	case domain.AdjustmentInterest, domain.AdjustmentTiming, domain.AdjustmentOther:
	}
	if adj.Amount.IsNegative() {
		debitAccount, creditAccount = creditAccount, debitAccount
	}
	return []domain.JournalLine{
		lineOf(debitAccount, adj.Description, amount, decimal.Zero, ""),
		lineOf(creditAccount, adj.Description, decimal.Zero, amount, ""),
	}
}

func (s *reconciliationService) findAdjustment(ctx context.Context, tenantID, adjustmentID string) (*domain.ReconciliationAdjustment, error) {
	adj, err := s.adjustmentRepo.FindAdjustmentByID(ctx, tenantID, adjustmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(tenantID, "adjustment", adjustmentID)
		}
		return nil, err
	}
	return adj, nil
}

func (s *reconciliationService) PostAdjustment(ctx context.Context, tenantID, userID, adjustmentID string) (result *domain.ReconciliationAdjustment, err error) {
	ctx, span := s.StartSpan(ctx, "reconciliation.post_adjustment", tenantID, attribute.String("ledger.adjustment_id", adjustmentID))
	defer func() { s.EndSpan(span, err) }()

	adj, err := s.findAdjustment(ctx, tenantID, adjustmentID)
	if err != nil {
		return nil, err
	}
	if adj.IsPosted() {
		return adj, nil
	}

	now := s.Now()
	draft := domain.JournalEntry{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		FiscalPeriodID:  adj.FiscalPeriodID,
		JournalCode:     adjustmentJournalCode,
		Reference:       "ADJ-" + adj.ID,
		Description:     "Reconciliation adjustment: " + adj.Description,
		Status:          domain.StatusDraft,
		Source:          domain.SourceAdjustment,
		TransactionDate: adj.TransactionDate,
		Metadata: map[string]string{
			domain.MetaAdjustmentID:     adj.ID,
			domain.MetaAdjustmentType:   string(adj.AdjustmentType),
			domain.MetaOriginalAmount:   adj.Amount.String(),
			domain.MetaReconciliationID: adj.SessionID,
			domain.MetaBankAccountID:    adj.BankAccountID,
		},
		Lines:       adjustmentLines(*adj),
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}

	entry, ledger, err := s.preparer.prepare(ctx, tenantID, draft)
	if err != nil {
		s.LogError(ctx, err, "Adjustment journal rejected", slog.String("tenant_id", tenantID), slog.String("adjustment_id", adj.ID))
		return nil, err
	}
	event, err := s.NewOutboxEvent(tenantID, domain.EventJournalPosted, entry.ID, newJournalPostedEvent(*entry))
	if err != nil {
		return nil, err
	}

	stepCtx, cancel := s.StepContext(ctx)
	defer cancel()
	if _, err := s.adjustmentRepo.PostAdjustmentJournal(stepCtx, tenantID, adj.ID, *entry, ledger, event); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Another request posted it first.
			return s.findAdjustment(ctx, tenantID, adj.ID)
		}
		s.LogError(ctx, err, "Failed to post adjustment journal", slog.String("tenant_id", tenantID), slog.String("adjustment_id", adj.ID))
		return nil, err
	}

	adj.PostedJournalID = &entry.ID
	s.LogInfo(ctx, "Adjustment posted",
		slog.String("tenant_id", tenantID),
		slog.String("adjustment_id", adj.ID),
		slog.String("journal_id", entry.ID))
	return adj, nil
}

func (s *reconciliationService) duplicateReversal(adj domain.ReconciliationAdjustment) error {
	return &apperrors.DuplicateError{
		TenantID:    adj.TenantID,
		SessionID:   adj.SessionID,
		Key:         fmt.Sprintf("adjustment:%s:reversal", adj.ID),
		Remediation: "This adjustment has already been reversed. Record a new adjustment instead of reversing it again.",
	}
}

func (s *reconciliationService) ReverseAdjustment(ctx context.Context, tenantID, userID, adjustmentID, reason string) (result *domain.ReconciliationAdjustment, err error) {
	ctx, span := s.StartSpan(ctx, "reconciliation.reverse_adjustment", tenantID, attribute.String("ledger.adjustment_id", adjustmentID))
	defer func() { s.EndSpan(span, err) }()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "a reversal reason is required")
	}
	adj, err := s.findAdjustment(ctx, tenantID, adjustmentID)
	if err != nil {
		return nil, err
	}
	if !adj.IsPosted() {
		ve := apperrors.NewValidationError(tenantID, apperrors.RuleSessionState, "adjustment %s has not been posted", adj.ID)
		ve.SessionID = adj.SessionID
		return nil, ve
	}
	if adj.IsReversed() {
		return nil, s.duplicateReversal(*adj)
	}

	original, err := s.journalRepo.FindJournalByID(ctx, tenantID, *adj.PostedJournalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.IntegrityError{
				TenantID:  tenantID,
				SessionID: adj.SessionID,
				Diagnosis: apperrors.DiagnosisMissingLedgerRow,
				Detail:    fmt.Sprintf("adjustment %s points at missing journal %s", adj.ID, *adj.PostedJournalID),
			}
		}
		return nil, err
	}

	now := s.Now()
	draft := reversalOf(*original, reason, now)
	draft.Metadata[domain.MetaAdjustmentID] = adj.ID
	draft.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}

	entry, ledger, err := s.preparer.prepare(ctx, tenantID, draft)
	if err != nil {
		s.LogError(ctx, err, "Reversal journal rejected", slog.String("tenant_id", tenantID), slog.String("adjustment_id", adj.ID))
		return nil, err
	}
	posted, err := s.NewOutboxEvent(tenantID, domain.EventJournalPosted, entry.ID, newJournalPostedEvent(*entry))
	if err != nil {
		return nil, err
	}
	reversed, err := s.NewOutboxEvent(tenantID, domain.EventAdjustmentReversed, adj.ID, adjustmentReversedEvent{
		AdjustmentID:      adj.ID,
		OriginalJournalID: original.ID,
		ReversalJournalID: entry.ID,
		Reason:            reason,
	})
	if err != nil {
		return nil, err
	}

	stepCtx, cancel := s.StepContext(ctx)
	defer cancel()
	if _, err := s.adjustmentRepo.ReverseAdjustment(stepCtx, tenantID, adj.ID, reason, now, *entry, ledger, posted, reversed); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			err = s.duplicateReversal(*adj)
		}
		s.LogError(ctx, err, "Failed to reverse adjustment", slog.String("tenant_id", tenantID), slog.String("adjustment_id", adj.ID))
		return nil, err
	}

	adj.ReversalJournalID = &entry.ID
	adj.ReversalReason = reason
	adj.ReversedAt = &now
	s.LogInfo(ctx, "Adjustment reversed",
		slog.String("tenant_id", tenantID),
		slog.String("adjustment_id", adj.ID),
		slog.String("original_journal_id", original.ID),
		slog.String("reversal_journal_id", entry.ID))
	return adj, nil
}

// reversalOf mirrors original with every line's sides swapped. The original is not modified.
func reversalOf(original domain.JournalEntry, reason string, at time.Time) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(original.Lines))
	for i, l := range original.Lines {
		swapped := l.Swapped()
		swapped.LineID = ""
		swapped.JournalEntryID = ""
		swapped.Description = "Reversal: " + l.Description
		lines[i] = swapped
	}
	originalID := original.ID
	return domain.JournalEntry{
		ID:              uuid.NewString(),
		TenantID:        original.TenantID,
		FiscalPeriodID:  original.FiscalPeriodID,
		JournalCode:     reversalJournalCode,
		Reference:       "REV-" + original.Reference,
		Description:     fmt.Sprintf("Reversal of %s - Reason: %s", original.Description, reason),
		Status:          domain.StatusDraft,
		Source:          domain.SourceReversal,
		TransactionDate: at,
		ReversalOf:      &originalID,
		Metadata: map[string]string{
			domain.MetaOriginalJournalID: original.ID,
			domain.MetaReversalReason:    reason,
		},
		Lines: lines,
	}
}

func (s *reconciliationService) ListAdjustmentHistory(ctx context.Context, tenantID, sessionID string) ([]domain.ReconciliationAdjustment, error) {
	adjustments, err := s.adjustmentRepo.ListAdjustmentsBySession(ctx, tenantID, sessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustments", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}
	return adjustments, nil
}

// ValidateAdjustmentBalance sums the session's adjustments that are still in
// effect (reversed ones net to zero) and compares them with expectedDifference.
func (s *reconciliationService) ValidateAdjustmentBalance(ctx context.Context, tenantID, sessionID string, expectedDifference decimal.Decimal) (*domain.AdjustmentBalanceCheck, error) {
	adjustments, err := s.ListAdjustmentHistory(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, adj := range adjustments {
		if adj.IsReversed() {
			continue
		}
		total = total.Add(adj.Amount)
	}
	remaining := expectedDifference.Sub(total)
	return &domain.AdjustmentBalanceCheck{
		SessionID:          sessionID,
		ExpectedDifference: expectedDifference,
		AdjustmentTotal:    total,
		Remaining:          remaining,
		IsBalanced:         domain.WithinTolerance(expectedDifference, total),
	}, nil
}
