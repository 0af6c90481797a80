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
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultJournalCode  = "GENERAL"
	defaultJournalLimit = 20
)

// JournalPreparer runs every posting producer's shared steps: validation,
// the fiscal period gate and projection. It never writes.
type JournalPreparer struct {
	BaseService
	validator     *JournalValidator
	projector     *LedgerProjector
	fiscalPeriods portsrepo.FiscalPeriodReader
}

// NewJournalPreparer creates the shared posting steps.
func NewJournalPreparer(base BaseService, validator *JournalValidator, projector *LedgerProjector, fiscalPeriods portsrepo.FiscalPeriodReader) *JournalPreparer {
	return &JournalPreparer{BaseService: base, validator: validator, projector: projector, fiscalPeriods: fiscalPeriods}
}

// prepare validates and projects one draft. The returned entry is marked posted.
func (p *JournalPreparer) prepare(ctx context.Context, tenantID string, draft domain.JournalEntry) (*domain.JournalEntry, []domain.GeneralLedgerEntry, error) {
	entries, ledger, err := p.prepareAll(ctx, tenantID, []domain.JournalEntry{draft})
	if err != nil {
		return nil, nil, err
	}
	return &entries[0], ledger, nil
}

// prepareAll validates and projects drafts in one pass, checking each distinct
// fiscal period once. Any failure rejects the whole batch.
func (p *JournalPreparer) prepareAll(ctx context.Context, tenantID string, drafts []domain.JournalEntry) ([]domain.JournalEntry, []domain.GeneralLedgerEntry, error) {
	checked := make(map[string]struct{})
	entries := make([]domain.JournalEntry, 0, len(drafts))
	var ledger []domain.GeneralLedgerEntry
	postingDate := p.Now()

	for _, draft := range drafts {
		entry, err := p.validator.Validate(ctx, tenantID, draft)
		if err != nil {
			return nil, nil, err
		}
		if _, ok := checked[entry.FiscalPeriodID]; !ok && entry.FiscalPeriodID != "" {
			if err := p.checkFiscalPeriod(ctx, tenantID, entry.FiscalPeriodID); err != nil {
				return nil, nil, err
			}
			checked[entry.FiscalPeriodID] = struct{}{}
		}

		entry.PostingDate = postingDate
		rows, err := p.projector.Project(*entry)
		if err != nil {
			return nil, nil, err
		}
		entry.Status = domain.StatusPosted
		entries = append(entries, *entry)
		ledger = append(ledger, rows...)
	}
	return entries, ledger, nil
}

func (p *JournalPreparer) checkFiscalPeriod(ctx context.Context, tenantID, fiscalPeriodID string) error {
	period, err := p.fiscalPeriods.FindFiscalPeriodByID(ctx, tenantID, fiscalPeriodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			p.LogWarn(ctx, "Fiscal period not found, posting without period check",
				slog.String("tenant_id", tenantID),
				slog.String("fiscal_period_id", fiscalPeriodID))
			return nil
		}
		return err
	}
	if !period.IsOpen() {
		return apperrors.NewValidationError(tenantID, apperrors.RuleFiscalPeriodClosed,
			"fiscal period %s is %s; only open periods accept postings", period.Name, period.Status)
	}
	return nil
}

// journalService posts directly submitted journals and serves the
// "journal entries with ledger detail" query surface.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	preparer    *JournalPreparer
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalStepTimeout bounds each transactional step of the journal service.
func WithJournalStepTimeout(d time.Duration) JournalServiceOption {
	return func(s *journalService) {
		s.StepTimeout = d
	}
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, preparer *JournalPreparer, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{journalRepo: journalRepo, preparer: preparer, BaseService: preparer.BaseService}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) PostJournal(ctx context.Context, tenantID, userID string, req dto.PostJournalRequest) (result *domain.JournalWithLedger, err error) {
	ctx, span := s.StartSpan(ctx, "journal.post", tenantID, attribute.String("ledger.source", req.Source))
	defer func() { s.EndSpan(span, err) }()

	source, err := domain.ParseSource(req.Source)
	if err != nil {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownSource, "%s", err.Error())
	}
	if source.EngineOwned() {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownSource,
			"%s entries are produced by ledger workflows and cannot be submitted directly", source)
	}

	now := s.Now()
	id := uuid.NewString()
	draft := domain.JournalEntry{
		ID:              id,
		TenantID:        tenantID,
		FiscalPeriodID:  domain.ResolveFiscalPeriodID(req.FiscalPeriodID, req.TransactionDate),
		JournalCode:     req.JournalCode,
		Reference:       req.Reference,
		Description:     strings.TrimSpace(req.Description),
		Status:          domain.StatusDraft,
		Source:          source,
		TransactionDate: req.TransactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if draft.JournalCode == "" {
		draft.JournalCode = defaultJournalCode
	}
	if draft.Reference == "" {
		draft.Reference = fmt.Sprintf("JE-%s", id[:8])
	}
	for _, l := range req.Lines {
		line := lineOf(l.AccountID, l.Description, l.Debit, l.Credit, l.Currency)
		line.Dimensions = domain.Dimensions{CustomerID: l.CustomerID, InvoiceID: l.InvoiceID, VendorID: l.VendorID}
		draft.Lines = append(draft.Lines, line)
	}

	entry, ledger, err := s.preparer.prepare(ctx, tenantID, draft)
	if err != nil {
		s.LogError(ctx, err, "Journal rejected", slog.String("tenant_id", tenantID), slog.String("journal_id", id))
		return nil, err
	}
	event, err := s.NewOutboxEvent(tenantID, domain.EventJournalPosted, entry.ID, newJournalPostedEvent(*entry))
	if err != nil {
		return nil, err
	}

	stepCtx, cancel := s.StepContext(ctx)
	defer cancel()
	saved, err := s.journalRepo.SaveJournalWithLedger(stepCtx, *entry, ledger, event)
	if err != nil {
		s.LogError(ctx, err, "Failed to post journal", slog.String("tenant_id", tenantID), slog.String("journal_id", id))
		return nil, err
	}

	s.LogInfo(ctx, "Journal posted",
		slog.String("tenant_id", tenantID),
		slog.String("journal_id", entry.ID),
		slog.String("source", string(entry.Source)),
		slog.Int("ledger_rows", len(saved)))
	return &domain.JournalWithLedger{Entry: *entry, Ledger: saved}, nil
}

func (s *journalService) GetJournalWithLedger(ctx context.Context, tenantID, journalID string) (*domain.JournalWithLedger, error) {
	entry, err := s.journalRepo.FindJournalByID(ctx, tenantID, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(tenantID, "journal entry", journalID)
		}
		return nil, err
	}
	ledger, err := s.journalRepo.FindLedgerEntriesByJournalIDs(ctx, tenantID, []string{entry.ID})
	if err != nil {
		return nil, err
	}
	return &domain.JournalWithLedger{Entry: *entry, Ledger: ledger[entry.ID]}, nil
}

func (s *journalService) ListJournalsWithLedger(ctx context.Context, tenantID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalLimit
	}
	filter := domain.JournalFilter{FiscalPeriodID: params.FiscalPeriodID, ImportSessionID: params.SessionID}
	if params.Source != "" {
		source, err := domain.ParseSource(params.Source)
		if err != nil {
			return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownSource, "%s", err.Error())
		}
		filter.Source = source
	}

	entries, nextToken, err := s.journalRepo.ListJournals(ctx, tenantID, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", slog.String("tenant_id", tenantID))
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	ledger, err := s.journalRepo.FindLedgerEntriesByJournalIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]domain.JournalWithLedger, len(entries))
	for i, e := range entries {
		items[i] = domain.JournalWithLedger{Entry: e, Ledger: ledger[e.ID]}
	}
	return &dto.ListJournalsResponse{Journals: dto.ToJournalResponses(items), NextToken: nextToken}, nil
}
