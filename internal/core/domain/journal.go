package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// WithinTolerance reports whether |a - b| is strictly below BalanceTolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(BalanceTolerance)
}

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	StatusDraft   JournalStatus = "draft"
	StatusPending JournalStatus = "pending"
	StatusPosted  JournalStatus = "posted"
)

// Source tags the producer of a journal entry. The set is closed.
type Source string

const (
	SourceManual             Source = "manual"
	SourceAccountsReceivable Source = "accounts_receivable"
	SourceAccountsPayable    Source = "accounts_payable"
	SourceBank               Source = "bank"
	SourceGeneral            Source = "general"
	SourceOpeningBalance     Source = "opening_balance"
	SourceAdjustment         Source = "adjustment"
	SourceReversal           Source = "reversal"
)

// AllSources lists every source in declaration order.
func AllSources() []Source {
	return []Source{
		SourceManual,
		SourceAccountsReceivable,
		SourceAccountsPayable,
		SourceBank,
		SourceGeneral,
		SourceOpeningBalance,
		SourceAdjustment,
		SourceReversal,
	}
}

// ParseSource converts a raw tag into a Source.
func ParseSource(raw string) (Source, error) {
	s := Source(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown journal source %q", raw)
	}
	return s, nil
}

// Valid reports whether s belongs to the closed source set.
func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourceAccountsReceivable, SourceAccountsPayable, SourceBank,
		SourceGeneral, SourceOpeningBalance, SourceAdjustment, SourceReversal:
		return true
	}
	return false
}

// EngineOwned reports whether entries with this source may only be produced by
// the ledger's own workflows and never submitted directly.
func (s Source) EngineOwned() bool {
	switch s {
	case SourceBank, SourceOpeningBalance, SourceAdjustment, SourceReversal:
		return true
	case SourceManual, SourceAccountsReceivable, SourceAccountsPayable, SourceGeneral:
		return false
	}
	return false
}

// Metadata keys written on engine produced entries.
const (
	MetaImportSessionID   = "import_session_id"
	MetaBankTransactionID = "bank_transaction_id"
	MetaBankAccountID     = "bank_account_id"
	MetaMappingRuleID     = "mapping_rule_id"
	MetaAdjustmentID      = "adjustment_id"
	MetaAdjustmentType    = "adjustment_type"
	MetaOriginalAmount    = "original_amount"
	MetaReconciliationID  = "reconciliation_session_id"
	MetaOriginalJournalID = "original_journal_id"
	MetaReversalReason    = "reversal_reason"
	MetaRetainedEarnings  = "retained_earnings_account_id"
)

// Dimensions are optional analysis tags carried from a line to its ledger row.
type Dimensions struct {
	CustomerID string `json:"customerID,omitempty"`
	InvoiceID  string `json:"invoiceID,omitempty"`
	VendorID   string `json:"vendorID,omitempty"`
}

// JournalLine is one debit or credit leg of a JournalEntry.
type JournalLine struct {
	LineID         string          `json:"lineID"`
	JournalEntryID string          `json:"journalEntryID"`
	LineNumber     int             `json:"lineNumber"`
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountType    AccountType     `json:"accountType"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Currency       string          `json:"currency"`
	Dimensions     Dimensions      `json:"dimensions"`
}

// IsDebit reports whether the line carries its amount on the debit side.
func (l JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount returns the non-zero side of the line.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// Swapped returns a copy of the line with debit and credit exchanged.
func (l JournalLine) Swapped() JournalLine {
	l.Debit, l.Credit = l.Credit, l.Debit
	return l
}

// JournalEntry is an atomic, balanced financial fact composed of lines.
type JournalEntry struct {
	ID              string            `json:"id"`
	TenantID        string            `json:"tenantID"`
	FiscalPeriodID  string            `json:"fiscalPeriodID"`
	JournalCode     string            `json:"journalCode"`
	Reference       string            `json:"reference"`
	Description     string            `json:"description"`
	Status          JournalStatus     `json:"status"`
	Source          Source            `json:"source"`
	TransactionDate time.Time         `json:"transactionDate"`
	PostingDate     time.Time         `json:"postingDate"`
	ImportSessionID *string           `json:"importSessionID,omitempty"`
	ReversalOf      *string           `json:"reversalOf,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	Lines           []JournalLine     `json:"lines"`
	AuditFields
}

// Totals sums the debit and credit sides of the entry.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// IsBalanced reports whether the entry's debits equal its credits within tolerance.
func (e JournalEntry) IsBalanced() bool {
	d, c := e.Totals()
	return WithinTolerance(d, c)
}

// IsPosted reports whether the entry has been committed to the ledger.
func (e JournalEntry) IsPosted() bool {
	return e.Status == StatusPosted
}

// AccountIDs returns the distinct account ids referenced by the lines, in line order.
func (e JournalEntry) AccountIDs() []string {
	seen := make(map[string]struct{}, len(e.Lines))
	ids := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}
