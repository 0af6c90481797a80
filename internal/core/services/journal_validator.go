package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalValidator builds a ready-to-post entry from a draft or rejects it.
// Nothing is written here; every producer calls it before its atomic write.
type JournalValidator struct {
	accounts        portsrepo.AccountReader
	defaultCurrency string
}

// NewJournalValidator creates a validator resolving accounts through accounts.
func NewJournalValidator(accounts portsrepo.AccountReader, defaultCurrency string) *JournalValidator {
	if defaultCurrency == "" {
		defaultCurrency = "ZAR"
	}
	return &JournalValidator{accounts: accounts, defaultCurrency: strings.ToUpper(defaultCurrency)}
}

// Validate checks the draft and returns a copy with ids, line numbers,
// currencies and account details filled in.
func (v *JournalValidator) Validate(ctx context.Context, tenantID string, draft domain.JournalEntry) (*domain.JournalEntry, error) {
	if draft.IsPosted() {
		return nil, &apperrors.IntegrityError{
			TenantID:  tenantID,
			Diagnosis: apperrors.DiagnosisPostedImmutable,
			Detail:    fmt.Sprintf("journal entry %s is already posted", draft.ID),
		}
	}
	if err := v.checkSource(tenantID, draft); err != nil {
		return nil, err
	}
	if len(draft.Lines) < 2 {
		return nil, apperrors.NewValidationError(tenantID, apperrors.RuleMinLines,
			"a journal entry needs at least two lines, got %d", len(draft.Lines))
	}

	entry := draft
	entry.TenantID = tenantID
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.StatusDraft
	}

	lines := make([]domain.JournalLine, len(draft.Lines))
	for i, l := range draft.Lines {
		if err := checkLine(tenantID, i+1, l); err != nil {
			return nil, err
		}
		if l.LineID == "" {
			l.LineID = uuid.NewString()
		}
		l.JournalEntryID = entry.ID
		l.LineNumber = i + 1
		l.Currency = strings.ToUpper(l.Currency)
		if l.Currency == "" {
			l.Currency = v.defaultCurrency
		}
		lines[i] = l
	}

	accounts, err := v.accounts.FindAccountsByIDs(ctx, tenantID, entry.AccountIDs())
	if err != nil {
		return nil, err
	}
	for i := range lines {
		acc, ok := accounts[lines[i].AccountID]
		if !ok || !acc.IsActive {
			return nil, apperrors.NewValidationError(tenantID, apperrors.RuleUnknownAccount,
				"line %d references account %s which is unknown or inactive", lines[i].LineNumber, lines[i].AccountID)
		}
		lines[i].AccountCode = acc.Code
		lines[i].AccountName = acc.Name
		lines[i].AccountType = acc.AccountType
	}
	entry.Lines = lines

	if err := v.CheckBalance(tenantID, lines); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CheckBalance fails with an unbalanced ValidationError unless Σdebit == Σcredit within tolerance.
func (v *JournalValidator) CheckBalance(tenantID string, lines []domain.JournalLine) error {
	debit, credit := domain.JournalEntry{Lines: lines}.Totals()
	if domain.WithinTolerance(debit, credit) {
		return nil
	}
	currency := v.defaultCurrency
	if len(lines) > 0 && lines[0].Currency != "" {
		currency = lines[0].Currency
	}
	return apperrors.NewValidationError(tenantID, apperrors.RuleUnbalanced,
		"debits %s do not equal credits %s",
		utils.FormatAmount(debit, currency), utils.FormatAmount(credit, currency))
}

func (v *JournalValidator) checkSource(tenantID string, draft domain.JournalEntry) error {
	switch draft.Source {
	case domain.SourceManual, domain.SourceAccountsReceivable, domain.SourceAccountsPayable, domain.SourceGeneral:
		return nil
	case domain.SourceBank:
		if draft.ImportSessionID == nil || *draft.ImportSessionID == "" {
			return apperrors.NewValidationError(tenantID, apperrors.RuleSourcePayload, "bank entries must reference an import session")
		}
		return nil
	case domain.SourceOpeningBalance:
		if draft.FiscalPeriodID == "" {
			return apperrors.NewValidationError(tenantID, apperrors.RuleSourcePayload, "opening balance entries must name a fiscal period")
		}
		return nil
	case domain.SourceAdjustment:
		if draft.Metadata[domain.MetaAdjustmentID] == "" {
			return apperrors.NewValidationError(tenantID, apperrors.RuleSourcePayload, "adjustment entries must reference their adjustment")
		}
		return nil
	case domain.SourceReversal:
		if draft.ReversalOf == nil || *draft.ReversalOf == "" {
			return apperrors.NewValidationError(tenantID, apperrors.RuleSourcePayload, "reversal entries must reference the reversed entry")
		}
		return nil
	}
	return apperrors.NewValidationError(tenantID, apperrors.RuleUnknownSource, "unknown journal source %q", draft.Source)
}

func checkLine(tenantID string, number int, l domain.JournalLine) error {
	if l.AccountID == "" {
		return apperrors.NewValidationError(tenantID, apperrors.RuleMalformedLine, "line %d has no account", number)
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return apperrors.NewValidationError(tenantID, apperrors.RuleMalformedLine, "line %d has a negative amount", number)
	}
	if l.Debit.IsZero() == l.Credit.IsZero() {
		return apperrors.NewValidationError(tenantID, apperrors.RuleMalformedLine,
			"line %d must carry exactly one non-zero side", number)
	}
	return nil
}

// lineOf builds a one-sided line for an account.
func lineOf(accountID, description string, debit, credit decimal.Decimal, currency string) domain.JournalLine {
	return domain.JournalLine{
		AccountID:   accountID,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Currency:    currency,
	}
}
