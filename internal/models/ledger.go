package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerEntry is a row of general_ledger_entries.
type GeneralLedgerEntry struct {
	Seq             int64           `db:"seq"`
	ID              string          `db:"id"`
	TenantID        string          `db:"tenant_id"`
	FiscalPeriodID  string          `db:"fiscal_period_id"`
	JournalEntryID  string          `db:"journal_entry_id"`
	JournalLineID   string          `db:"journal_line_id"`
	AccountID       string          `db:"account_id"`
	AccountCode     string          `db:"account_code"`
	AccountName     string          `db:"account_name"`
	Description     string          `db:"description"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
	SignedAmount    decimal.Decimal `db:"signed_amount"`
	RunningBalance  decimal.Decimal `db:"running_balance"`
	Currency        string          `db:"currency"`
	Source          string          `db:"source"`
	Reference       string          `db:"reference"`
	TransactionDate time.Time       `db:"transaction_date"`
	PostingDate     time.Time       `db:"posting_date"`
	CustomerID      string          `db:"customer_id"`
	InvoiceID       string          `db:"invoice_id"`
	VendorID        string          `db:"vendor_id"`
	ImportSessionID *string         `db:"import_session_id"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
