package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of journal_entries. The staging and archive copies
// of that table share these columns.
type JournalEntry struct {
	ID              string            `db:"id"`
	TenantID        string            `db:"tenant_id"`
	FiscalPeriodID  string            `db:"fiscal_period_id"`
	JournalCode     string            `db:"journal_code"`
	Reference       string            `db:"reference"`
	Description     string            `db:"description"`
	Status          string            `db:"status"`
	Source          string            `db:"source"`
	TransactionDate time.Time         `db:"transaction_date"`
	PostingDate     *time.Time        `db:"posting_date"` // Nullable until posted
	ImportSessionID *string           `db:"import_session_id"`
	ReversalOf      *string           `db:"reversal_of"`
	Metadata        map[string]string `db:"metadata"` // JSONB
	AuditFields
}

// JournalLine is a row of journal_lines.
type JournalLine struct {
	ID             string          `db:"id"`
	JournalEntryID string          `db:"journal_entry_id"`
	TenantID       string          `db:"tenant_id"`
	LineNumber     int             `db:"line_number"`
	AccountID      string          `db:"account_id"`
	AccountCode    string          `db:"account_code"` // Joined from accounts
	AccountName    string          `db:"account_name"` // Joined from accounts
	AccountType    AccountType     `db:"account_type"` // Joined from accounts
	Description    string          `db:"description"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	Currency       string          `db:"currency"`
	CustomerID     string          `db:"customer_id"`
	InvoiceID      string          `db:"invoice_id"`
	VendorID       string          `db:"vendor_id"`
}
