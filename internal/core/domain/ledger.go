package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerEntry is the immutable per-account projection of one JournalLine.
// (JournalEntryID, JournalLineID) must resolve to exactly one line.
type GeneralLedgerEntry struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenantID"`
	FiscalPeriodID  string          `json:"fiscalPeriodID"`
	JournalEntryID  string          `json:"journalEntryID"`
	JournalLineID   string          `json:"journalLineID"`
	AccountID       string          `json:"accountID"`
	AccountCode     string          `json:"accountCode"`
	AccountName     string          `json:"accountName"`
	Description     string          `json:"description"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	SignedAmount    decimal.Decimal `json:"signedAmount"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	Currency        string          `json:"currency"`
	Source          Source          `json:"source"`
	Reference       string          `json:"reference"`
	TransactionDate time.Time       `json:"transactionDate"`
	PostingDate     time.Time       `json:"postingDate"`
	Dimensions      Dimensions      `json:"dimensions"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// JournalWithLedger pairs an entry with its ledger rows for read-only consumers.
type JournalWithLedger struct {
	Entry  JournalEntry         `json:"entry"`
	Ledger []GeneralLedgerEntry `json:"ledger"`
}

// LedgerTotals is a debit/credit aggregate over a set of ledger rows.
type LedgerTotals struct {
	Debits   decimal.Decimal `json:"debits"`
	Credits  decimal.Decimal `json:"credits"`
	RowCount int             `json:"rowCount"`
}

// Equal reports whether two aggregates agree on counts and on both sides within tolerance.
func (t LedgerTotals) Equal(o LedgerTotals) bool {
	return t.RowCount == o.RowCount &&
		WithinTolerance(t.Debits, o.Debits) &&
		WithinTolerance(t.Credits, o.Credits)
}

// JournalFilter narrows journal listings. Zero values mean no filter.
type JournalFilter struct {
	Source          Source
	FiscalPeriodID  string
	ImportSessionID string
}

// JournalTotals is the debit/credit sum of one journal entry's lines.
type JournalTotals struct {
	JournalEntryID string          `json:"journalEntryID"`
	Debits         decimal.Decimal `json:"debits"`
	Credits        decimal.Decimal `json:"credits"`
}
