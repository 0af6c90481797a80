package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationAdjustment is a row of reconciliation_adjustments.
type ReconciliationAdjustment struct {
	ID                string            `db:"id"`
	TenantID          string            `db:"tenant_id"`
	SessionID         string            `db:"session_id"`
	Description       string            `db:"description"`
	Amount            decimal.Decimal   `db:"amount"`
	AdjustmentType    string            `db:"adjustment_type"`
	BankAccountID     string            `db:"bank_account_id"`
	LedgerAccountID   string            `db:"ledger_account_id"`
	LedgerAccountCode string            `db:"ledger_account_code"`
	FiscalPeriodID    string            `db:"fiscal_period_id"`
	TransactionDate   time.Time         `db:"transaction_date"`
	PostedJournalID   *string           `db:"posted_journal_id"`
	ReversalJournalID *string           `db:"reversal_journal_id"`
	ReversalReason    *string           `db:"reversal_reason"`
	ReversedAt        *time.Time        `db:"reversed_at"`
	Metadata          map[string]string `db:"metadata"`
	CreatedBy         string            `db:"created_by"`
	CreatedAt         time.Time         `db:"created_at"`
}
