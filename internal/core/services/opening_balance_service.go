package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	openingBalanceJournalCode = "OB"
	openingBalanceRemediation = "Opening balance already exists for this fiscal period. Please delete the existing entry first."
)

type openingBalanceService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	journalRepo     portsrepo.JournalRepositoryFacade
	preparer        *JournalPreparer
	defaultCurrency string
}

// OpeningBalanceServiceOption is a functional option for configuring the opening balance service
type OpeningBalanceServiceOption func(*openingBalanceService)

// WithOpeningBalanceCurrency sets the currency used when a request names none.
func WithOpeningBalanceCurrency(code string) OpeningBalanceServiceOption {
	return func(s *openingBalanceService) {
		s.defaultCurrency = strings.ToUpper(code)
	}
}

// NewOpeningBalanceService creates a new opening balance service.
func NewOpeningBalanceService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalRepositoryFacade, preparer *JournalPreparer, options ...OpeningBalanceServiceOption) portssvc.OpeningBalanceSvc {
	svc := &openingBalanceService{
		BaseService:     preparer.BaseService,
		accountRepo:     accountRepo,
		journalRepo:     journalRepo,
		preparer:        preparer,
		defaultCurrency: "ZAR",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OpeningBalanceSvc = (*openingBalanceService)(nil)

func (s *openingBalanceService) duplicate(tenantID, fiscalPeriodID string) error {
	return &apperrors.DuplicateError{
		TenantID:    tenantID,
		Key:         fmt.Sprintf("opening_balance:%s", fiscalPeriodID),
		Remediation: openingBalanceRemediation,
	}
}

func (s *openingBalanceService) CreateOpeningBalance(ctx context.Context, tenantID, userID string, req dto.CreateOpeningBalanceRequest) (result *domain.JournalWithLedger, err error) {
	ctx, span := s.StartSpan(ctx, "opening_balance.create", tenantID, attribute.String("ledger.fiscal_period_id", req.FiscalPeriodID))
	defer func() { s.EndSpan(span, err) }()

	if len(req.Balances) == 0 {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "at least one account balance is required")
	}
	if req.FiscalPeriodID == "" || req.RetainedEarningsAccountID == "" {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "fiscal period and retained earnings account are required")
	}

	ids := []string{req.RetainedEarningsAccountID}
	seen := make(map[string]struct{}, len(req.Balances))
	for _, b := range req.Balances {
		if _, dup := seen[b.AccountID]; dup {
			return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "account %s is listed more than once", b.AccountID)
		}
		seen[b.AccountID] = struct{}{}
		ids = append(ids, b.AccountID)
	}

	// Fast path only. The partial unique index decides concurrent attempts.
	if _, err := s.journalRepo.FindOpeningBalanceEntry(ctx, tenantID, req.FiscalPeriodID); err == nil {
		return nil, s.duplicate(tenantID, req.FiscalPeriodID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	retained, ok := accounts[req.RetainedEarningsAccountID]
	if !ok {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownAccount, "retained earnings account %s not found", req.RetainedEarningsAccountID)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	lines := make([]domain.JournalLine, 0, len(req.Balances)+1)
	for _, b := range req.Balances {
		if b.Amount.IsZero() {
			continue
		}
		acc, ok := accounts[b.AccountID]
		if !ok {
			return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownAccount, "account %s not found", b.AccountID)
		}
		if b.AccountType != "" && !strings.EqualFold(b.AccountType, string(acc.AccountType)) {
			return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput,
				"account %s is %s, not %s", acc.Code, acc.AccountType, b.AccountType)
		}
		debit, credit, err := accounting.SplitSignedBalance(acc.AccountType, b.Amount)
		if err != nil {
			return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedLine, "%s", err.Error())
		}
		lines = append(lines, lineOf(acc.AccountID, "Opening balance - "+acc.Name, debit, credit, currency))
	}
	if len(lines) == 0 {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMalformedInput, "every opening balance is zero")
	}

	totalDebit, totalCredit := accounting.SumLines(lines)
	if difference := totalDebit.Sub(totalCredit); !difference.IsZero() {
		debit, credit := accounting.BalancingAmounts(difference)
		lines = append(lines, lineOf(retained.AccountID, "Balancing entry for opening balances", debit, credit, currency))
	}

	now := s.Now()
	draft := domain.JournalEntry{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		FiscalPeriodID:  req.FiscalPeriodID,
		JournalCode:     openingBalanceJournalCode,
		Reference:       "OB-" + req.FiscalPeriodID,
		Description:     "Opening balances as of " + req.AsOfDate.Format("2006-01-02"),
		Status:          domain.StatusDraft,
		Source:          domain.SourceOpeningBalance,
		TransactionDate: req.AsOfDate,
		Metadata:        map[string]string{domain.MetaRetainedEarnings: retained.AccountID},
		Lines:           lines,
		AuditFields:     domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}

	entry, ledger, err := s.preparer.prepare(ctx, tenantID, draft)
	if err != nil {
		s.LogError(ctx, err, "Opening balance rejected", slog.String("tenant_id", tenantID), slog.String("fiscal_period_id", req.FiscalPeriodID))
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
		if errors.Is(err, apperrors.ErrDuplicate) {
			err = s.duplicate(tenantID, req.FiscalPeriodID)
		}
		s.LogError(ctx, err, "Failed to save opening balance", slog.String("tenant_id", tenantID), slog.String("fiscal_period_id", req.FiscalPeriodID))
		return nil, err
	}

	debits, _ := entry.Totals()
	s.LogInfo(ctx, "Opening balance posted",
		slog.String("tenant_id", tenantID),
		slog.String("journal_id", entry.ID),
		slog.String("fiscal_period_id", entry.FiscalPeriodID),
		slog.String("total", debits.StringFixed(2)))
	return &domain.JournalWithLedger{Entry: *entry, Ledger: saved}, nil
}

func (s *openingBalanceService) GetOpeningBalance(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.JournalWithLedger, error) {
	entry, err := s.journalRepo.FindOpeningBalanceEntry(ctx, tenantID, fiscalPeriodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(tenantID, "opening balance", fiscalPeriodID)
		}
		return nil, err
	}
	ledger, err := s.journalRepo.FindLedgerEntriesByJournalIDs(ctx, tenantID, []string{entry.ID})
	if err != nil {
		return nil, err
	}
	return &domain.JournalWithLedger{Entry: *entry, Ledger: ledger[entry.ID]}, nil
}

