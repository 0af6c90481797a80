package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankImportSession is a row of bank_import_sessions. The staging snapshot and
// the production summary are flattened into columns.
type BankImportSession struct {
	ID               string          `db:"id"`
	TenantID         string          `db:"tenant_id"`
	BankAccountID    string          `db:"bank_account_id"`
	FiscalPeriodID   string          `db:"fiscal_period_id"`
	Currency         string          `db:"currency"`
	Status           string          `db:"status"`
	TransactionCount int             `db:"transaction_count"`
	PostedCount      int             `db:"posted_count"`
	StagedJournals   int             `db:"staged_journal_count"`
	StagedGLRows     int             `db:"staged_gl_count"`
	StagedDebits     decimal.Decimal `db:"staged_debits"`
	StagedCredits    decimal.Decimal `db:"staged_credits"`
	StagedBalanced   bool            `db:"staged_is_balanced"`
	StagedAt         time.Time       `db:"staged_at"`

	// Nullable until the session is posted.
	ProductionJournals *int             `db:"production_journal_count"`
	ProductionGLRows   *int             `db:"production_gl_count"`
	ProductionDebits   *decimal.Decimal `db:"production_debits"`
	ProductionCredits  *decimal.Decimal `db:"production_credits"`
	PostedAt           *time.Time       `db:"posted_at"`
	PostedBy           *string          `db:"posted_by"`
	ArchivedAt         *time.Time       `db:"archived_at"`
	ArchivedBy         *string          `db:"archived_by"`
	AuditFields
}

// MappingRule is a row of mapping_rules.
type MappingRule struct {
	ID          string `db:"id"`
	TenantID    string `db:"tenant_id"`
	Name        string `db:"name"`
	Pattern     string `db:"pattern"`
	PatternType string `db:"pattern_type"`
	AccountID   string `db:"account_id"`
	Priority    int    `db:"priority"`
	IsActive    bool   `db:"is_active"`
}
