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
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const (
	bankImportJournalCode  = "BANK_IMPORT"
	defaultArchivePageSize = 500
)

// stagingService drives bank import sessions from staged to posted to archived.
type stagingService struct {
	BaseService
	accountRepo      portsrepo.AccountReader
	stagingRepo      portsrepo.StagingRepositoryFacade
	archiveRepo      portsrepo.ArchiveRepositoryFacade
	verificationRepo portsrepo.VerificationReader
	mapper           portssvc.BankTransactionMapper
	preparer         *JournalPreparer
	defaultCurrency  string
	archivePageSize  int
}

// StagingServiceOption is a functional option for configuring the staging service
type StagingServiceOption func(*stagingService)

// WithArchivePageSize sets how many journal entries one archival delete page removes.
func WithArchivePageSize(n int) StagingServiceOption {
	return func(s *stagingService) {
		if n > 0 {
			s.archivePageSize = n
		}
	}
}

// WithStagingCurrency sets the currency of sessions created without one.
func WithStagingCurrency(code string) StagingServiceOption {
	return func(s *stagingService) {
		s.defaultCurrency = strings.ToUpper(code)
	}
}

// WithStagingStepTimeout bounds each transactional step, including every archive page.
func WithStagingStepTimeout(d time.Duration) StagingServiceOption {
	return func(s *stagingService) {
		s.StepTimeout = d
	}
}

// WithBankTransactionMapper replaces the rule-based mapper.
func WithBankTransactionMapper(mapper portssvc.BankTransactionMapper) StagingServiceOption {
	return func(s *stagingService) {
		s.mapper = mapper
	}
}

// NewStagingService creates a new staging service.
func NewStagingService(repos portsrepo.RepositoryProvider, preparer *JournalPreparer, options ...StagingServiceOption) portssvc.StagingSvc {
	svc := &stagingService{
		BaseService:      preparer.BaseService,
		accountRepo:      repos.AccountRepo,
		stagingRepo:      repos.StagingRepo,
		archiveRepo:      repos.ArchiveRepo,
		verificationRepo: repos.VerificationRepo,
		preparer:         preparer,
		defaultCurrency:  "ZAR",
		archivePageSize:  defaultArchivePageSize,
	}
	if repos.MappingRuleRepo != nil {
		svc.mapper = NewRuleMapper(repos.MappingRuleRepo)
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StagingSvc = (*stagingService)(nil)

func (s *stagingService) CreateSession(ctx context.Context, tenantID, userID string, req dto.CreateBankImportRequest) (*domain.BankImportSession, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, req.BankAccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownAccount, "bank account %s not found", req.BankAccountID)
		}
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}
	fiscalPeriodID := req.FiscalPeriodID
	if fiscalPeriodID == "" {
		fiscalPeriodID = domain.FiscalPeriodCurrent
	}
	now := s.Now()
	session := domain.BankImportSession{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		BankAccountID:  req.BankAccountID,
		FiscalPeriodID: fiscalPeriodID,
		Currency:       currency,
		Status:         domain.SessionStaged,
		Staging: domain.StagingSnapshot{
			TotalDebits:  decimal.Zero,
			TotalCredits: decimal.Zero,
			IsBalanced:   true,
			StagedAt:     now,
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
	if err := s.stagingRepo.CreateSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to create bank import session", slog.String("tenant_id", tenantID))
		return nil, err
	}
	s.LogInfo(ctx, "Bank import session created", slog.String("tenant_id", tenantID), slog.String("session_id", session.ID))
	return &session, nil
}

func (s *stagingService) GetSession(ctx context.Context, tenantID, sessionID string) (*domain.BankImportSession, error) {
	session, err := s.stagingRepo.FindSessionByID(ctx, tenantID, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			nf := apperrors.NewNotFoundError(tenantID, "bank import session", sessionID)
			nf.SessionID = sessionID
			return nil, nf
		}
		return nil, err
	}
	return session, nil
}

func sessionStateError(session domain.BankImportSession, want domain.SessionStatus, action string) error {
	return &apperrors.ValidationError{
		TenantID:  session.TenantID,
		SessionID: session.ID,
		Rule:      apperrors.RuleSessionState,
		Detail:    fmt.Sprintf("cannot %s a session that is %s (must be %s)", action, session.Status, want),
	}
}

func (s *stagingService) StageTransactions(ctx context.Context, tenantID, userID, sessionID string, txns []domain.BankTransaction) (result *domain.StageResult, err error) {
	ctx, span := s.StartSpan(ctx, "staging.stage", tenantID, attribute.String("ledger.session_id", sessionID), attribute.Int("ledger.count", len(txns)))
	defer func() { s.EndSpan(span, err) }()

	session, err := s.GetSession(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionStaged {
		return nil, sessionStateError(*session, domain.SessionStaged, "stage transactions into")
	}
	if s.mapper == nil {
		return nil, apperrors.NewAppError(500, "no bank transaction mapper configured", nil)
	}

	var unmapped []domain.UnmappedTransaction
	valid := make([]domain.BankTransaction, 0, len(txns))
	seen := make(map[string]struct{}, len(txns))
	for _, txn := range txns {
		switch {
		case txn.TransactionID == "":
			unmapped = append(unmapped, domain.UnmappedTransaction{Transaction: txn, Reason: "transaction id is required"})
		case txn.Amount.IsZero():
			unmapped = append(unmapped, domain.UnmappedTransaction{Transaction: txn, Reason: "transaction amount is zero"})
		default:
			if _, dup := seen[txn.TransactionID]; dup {
				unmapped = append(unmapped, domain.UnmappedTransaction{Transaction: txn, Reason: "transaction appears twice in the batch"})
				continue
			}
			seen[txn.TransactionID] = struct{}{}
			valid = append(valid, txn)
		}
	}

	mapped, notMapped, err := s.mapper.MapTransactions(ctx, tenantID, *session, valid)
	if err != nil {
		s.LogError(ctx, err, "Bank transaction mapping failed", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}
	unmapped = append(unmapped, notMapped...)

	now := s.Now()
	delta := domain.StagingSnapshot{TotalDebits: decimal.Zero, TotalCredits: decimal.Zero, StagedAt: now}
	entries := make([]domain.JournalEntry, 0, len(mapped))
	var ledger []domain.GeneralLedgerEntry
	for _, m := range mapped {
		draft := s.candidateEntry(*session, m, userID, now)
		entry, err := s.preparer.validator.Validate(ctx, tenantID, draft)
		if err != nil {
			unmapped = append(unmapped, domain.UnmappedTransaction{Transaction: m.Transaction, Reason: apperrors.PublicMessage(err)})
			continue
		}
		rows, err := s.preparer.projector.Project(*entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
		ledger = append(ledger, rows...)
		delta = delta.Include(*entry, len(rows), now)
	}

	if len(txns) == 0 {
		return &domain.StageResult{Session: *session, StagedCount: 0, Unmapped: unmapped}, nil
	}

	// transactionCount counts every transaction received, staged or not.
	stepCtx, cancel := s.StepContext(ctx)
	defer cancel()
	updated, err := s.stagingRepo.SaveStagedEntries(stepCtx, tenantID, sessionID, entries, ledger, delta, len(txns))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			err = sessionStateError(*session, domain.SessionStaged, "stage transactions into")
		case errors.Is(err, apperrors.ErrDuplicate):
			err = &apperrors.DuplicateError{
				TenantID:    tenantID,
				SessionID:   sessionID,
				Key:         "bank_transaction_id",
				Remediation: "One or more transactions are already staged in this session. Remove them from the batch and retry.",
			}
		}
		s.LogError(ctx, err, "Failed to stage transactions", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transactions staged",
		slog.String("tenant_id", tenantID),
		slog.String("session_id", sessionID),
		slog.Int("staged", len(entries)),
		slog.Int("unmapped", len(unmapped)),
		slog.Bool("balanced", updated.Staging.IsBalanced))
	return &domain.StageResult{Session: *updated, StagedCount: len(entries), Unmapped: unmapped}, nil
}

func (s *stagingService) candidateEntry(session domain.BankImportSession, m domain.MappedTransaction, userID string, now time.Time) domain.JournalEntry {
	txn := m.Transaction
	currency := strings.ToUpper(txn.Currency)
	if currency == "" {
		currency = session.Currency
	}
	reference := txn.Reference
	if reference == "" {
		reference = "BANK-" + txn.TransactionID
	}
	lines := make([]domain.JournalLine, len(m.Lines))
	for i, c := range m.Lines {
		lines[i] = lineOf(c.AccountID, c.Description, c.Debit, c.Credit, currency)
	}
	sessionID := session.ID
	return domain.JournalEntry{
		ID:              uuid.NewString(),
		TenantID:        session.TenantID,
		FiscalPeriodID:  domain.ResolveFiscalPeriodID(session.FiscalPeriodID, txn.Date),
		JournalCode:     bankImportJournalCode,
		Reference:       reference,
		Description:     txn.Description,
		Status:          domain.StatusPending,
		Source:          domain.SourceBank,
		TransactionDate: txn.Date,
		ImportSessionID: &sessionID,
		Metadata: map[string]string{
			domain.MetaImportSessionID:   session.ID,
			domain.MetaBankTransactionID: txn.TransactionID,
			domain.MetaBankAccountID:     session.BankAccountID,
			domain.MetaMappingRuleID:     m.RuleID,
		},
		Lines:       lines,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
}

// PostSession commits every staged candidate in one transaction. A session that
// is already posted or archived is returned unchanged.
func (s *stagingService) PostSession(ctx context.Context, tenantID, userID, sessionID string) (result *domain.BankImportSession, err error) {
	ctx, span := s.StartSpan(ctx, "staging.post", tenantID, attribute.String("ledger.session_id", sessionID))
	defer func() { s.EndSpan(span, err) }()

	session, err := s.GetSession(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case domain.SessionPosted, domain.SessionArchived:
		s.LogInfo(ctx, "Session already posted, nothing to do", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return session, nil
	case domain.SessionStaged:
	default:
		return nil, sessionStateError(*session, domain.SessionStaged, "post")
	}

	snap := session.Staging
	if !domain.WithinTolerance(snap.TotalDebits, snap.TotalCredits) {
		return nil, &apperrors.ValidationError{
			TenantID:  tenantID,
			SessionID: sessionID,
			Rule:      apperrors.RuleUnbalanced,
			Detail: fmt.Sprintf("staged debits %s do not equal staged credits %s",
				utils.FormatAmount(snap.TotalDebits, session.Currency), utils.FormatAmount(snap.TotalCredits, session.Currency)),
		}
	}

	staged, err := s.stagingRepo.FindStagedEntries(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	if len(staged) == 0 {
		return nil, &apperrors.ValidationError{TenantID: tenantID, SessionID: sessionID, Rule: apperrors.RuleSessionState, Detail: "the session has nothing staged"}
	}

	entries, ledger, err := s.preparer.prepareAll(ctx, tenantID, staged)
	if err != nil {
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			ve.SessionID = sessionID
		}
		s.LogError(ctx, err, "Staged candidate failed validation", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}

	production := productionTotals(entries, ledger)
	comparison := DiagnoseTotals(snapshotTotals(snap), production)
	if comparison.Diagnosis != "" {
		ie := &apperrors.IntegrityError{
			TenantID:  tenantID,
			SessionID: sessionID,
			Diagnosis: comparison.Diagnosis,
			Detail:    describeComparison(comparison, session.Currency),
		}
		s.LogError(ctx, ie, "Staged rows disagree with the staging snapshot")
		return nil, ie
	}

	event, err := s.NewOutboxEvent(tenantID, domain.EventSessionPosted, sessionID, sessionPostedEvent{
		SessionID:         sessionID,
		BankAccountID:     session.BankAccountID,
		JournalEntryCount: len(entries),
		GLEntryCount:      len(ledger),
		TotalDebits:       production.Debits,
		TotalCredits:      production.Credits,
	})
	if err != nil {
		return nil, err
	}

	stepCtx, cancel := s.StepContext(ctx)
	defer cancel()
	posted, err := s.stagingRepo.PostStagedSession(stepCtx, tenantID, sessionID, userID, s.Now(), entries, ledger, event)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrStaleStaging) {
			current, gerr := s.GetSession(ctx, tenantID, sessionID)
			if gerr != nil {
				return nil, gerr
			}
			if current.Status != domain.SessionStaged {
				s.LogInfo(ctx, "Session posted concurrently, returning current state", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
				return current, nil
			}
		}
		s.LogError(ctx, err, "Failed to post session", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Session posted",
		slog.String("tenant_id", tenantID),
		slog.String("session_id", sessionID),
		slog.Int("journal_entries", len(entries)),
		slog.Int("ledger_rows", len(ledger)))
	return posted, nil
}

func snapshotTotals(snap domain.StagingSnapshot) domain.LedgerTotals {
	return domain.LedgerTotals{Debits: snap.TotalDebits, Credits: snap.TotalCredits, RowCount: snap.GLEntryCount}
}

func productionTotals(entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry) domain.LedgerTotals {
	totals := domain.LedgerTotals{Debits: decimal.Zero, Credits: decimal.Zero, RowCount: len(ledger)}
	for _, e := range entries {
		d, c := e.Totals()
		totals.Debits = totals.Debits.Add(d)
		totals.Credits = totals.Credits.Add(c)
	}
	return totals
}

// ArchiveSession copies a posted session into the archive, proves the copy
// matches the live rows, then drains the live rows page by page.
// Cancellation between pages leaves a valid partial drain; a later call resumes it.
func (s *stagingService) ArchiveSession(ctx context.Context, tenantID, userID, sessionID string) (result *domain.ArchivedSession, err error) {
	ctx, span := s.StartSpan(ctx, "staging.archive", tenantID, attribute.String("ledger.session_id", sessionID))
	defer func() { s.EndSpan(span, err) }()

	session, err := s.GetSession(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case domain.SessionArchived:
		return s.archiveRepo.FindArchivedSession(ctx, tenantID, sessionID)
	case domain.SessionPosted:
	default:
		return nil, sessionStateError(*session, domain.SessionPosted, "archive")
	}

	live, err := s.verificationRepo.SumSessionLedgerTotals(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}

	archivedAt := s.Now()
	if err := s.step(ctx, func(ctx context.Context) error {
		return s.archiveRepo.CopySessionToArchive(ctx, tenantID, sessionID, userID, archivedAt)
	}); err != nil {
		s.LogError(ctx, err, "Failed to copy session to archive", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}

	archived, err := s.archiveRepo.SumArchivedTotals(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkArchiveTotals(*session, live, archived); err != nil {
		s.LogError(ctx, err, "Archive copy does not match live rows, nothing deleted")
		return nil, err
	}

	deleted := 0
	for {
		if err := ctx.Err(); err != nil {
			s.LogWarn(ctx, "Archive drain interrupted between pages",
				slog.String("tenant_id", tenantID),
				slog.String("session_id", sessionID),
				slog.Int("deleted", deleted))
			return nil, err
		}
		var n int
		if err := s.step(ctx, func(ctx context.Context) error {
			var derr error
			n, derr = s.archiveRepo.DeleteLiveSessionPage(ctx, tenantID, sessionID, s.archivePageSize)
			return derr
		}); err != nil {
			s.LogError(ctx, err, "Failed to delete archived page", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
			return nil, err
		}
		if n == 0 {
			break
		}
		deleted += n
		s.LogDebug(ctx, "Archive page deleted", slog.String("session_id", sessionID), slog.Int("deleted", deleted))
	}

	event, err := s.NewOutboxEvent(tenantID, domain.EventSessionArchived, sessionID, sessionArchivedEvent{SessionID: sessionID, Totals: archived})
	if err != nil {
		return nil, err
	}
	if err := s.step(ctx, func(ctx context.Context) error {
		return s.archiveRepo.MarkSessionArchived(ctx, tenantID, sessionID, userID, archivedAt, archived, event)
	}); err != nil && !errors.Is(err, apperrors.ErrConflict) {
		s.LogError(ctx, err, "Failed to mark session archived", slog.String("tenant_id", tenantID), slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Session archived",
		slog.String("tenant_id", tenantID),
		slog.String("session_id", sessionID),
		slog.Int("journal_entries_deleted", deleted),
		slog.Int("ledger_rows", archived.RowCount))
	return s.archiveRepo.FindArchivedSession(ctx, tenantID, sessionID)
}

// checkArchiveTotals compares the archive with the live rows. When an earlier
// drain was interrupted the live side is partial, so the archive is compared
// with what was posted instead.
func (s *stagingService) checkArchiveTotals(session domain.BankImportSession, live, archived domain.LedgerTotals) error {
	expected := live
	if live.RowCount < archived.RowCount && session.Production != nil {
		expected = domain.LedgerTotals{
			Debits:   session.Production.TotalDebits,
			Credits:  session.Production.TotalCredits,
			RowCount: session.Production.GLEntryCount,
		}
	}
	if archived.Equal(expected) {
		return nil
	}
	return &apperrors.IntegrityError{
		TenantID:  session.TenantID,
		SessionID: session.ID,
		Diagnosis: apperrors.DiagnosisArchiveTotalsMismatch,
		Detail:    describeComparison(domain.TotalsComparison{Expected: expected, Actual: archived}, session.Currency),
	}
}

func (s *stagingService) step(ctx context.Context, fn func(context.Context) error) error {
	stepCtx, cancel := s.StepContext(ctx)
	defer cancel()
	return fn(stepCtx)
}
