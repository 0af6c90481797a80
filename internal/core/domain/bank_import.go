package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus is the one-way state of a bank import session.
type SessionStatus string

const (
	SessionStaged   SessionStatus = "staged"
	SessionPosted   SessionStatus = "posted"
	SessionArchived SessionStatus = "archived"
)

// CanTransitionTo reports whether next directly follows s.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch s {
	case SessionStaged:
		return next == SessionPosted
	case SessionPosted:
		return next == SessionArchived
	case SessionArchived:
		return false
	}
	return false
}

// StagingSnapshot is the running aggregate of everything staged in a session.
type StagingSnapshot struct {
	JournalEntryCount int             `json:"journalEntryCount"`
	GLEntryCount      int             `json:"glEntryCount"`
	TotalDebits       decimal.Decimal `json:"totalDebits"`
	TotalCredits      decimal.Decimal `json:"totalCredits"`
	IsBalanced        bool            `json:"isBalanced"`
	StagedAt          time.Time       `json:"stagedAt"`
}

// Include folds one staged entry and its ledger row count into the snapshot.
func (s StagingSnapshot) Include(entry JournalEntry, glRows int, at time.Time) StagingSnapshot {
	d, c := entry.Totals()
	s.JournalEntryCount++
	s.GLEntryCount += glRows
	s.TotalDebits = s.TotalDebits.Add(d)
	s.TotalCredits = s.TotalCredits.Add(c)
	s.IsBalanced = WithinTolerance(s.TotalDebits, s.TotalCredits)
	s.StagedAt = at
	return s
}

// Difference returns TotalDebits - TotalCredits.
func (s StagingSnapshot) Difference() decimal.Decimal {
	return s.TotalDebits.Sub(s.TotalCredits)
}

// PostingSummary records what was committed when a session was posted.
type PostingSummary struct {
	JournalEntryCount int             `json:"journalEntryCount"`
	GLEntryCount      int             `json:"glEntryCount"`
	TotalDebits       decimal.Decimal `json:"totalDebits"`
	TotalCredits      decimal.Decimal `json:"totalCredits"`
	PostedAt          time.Time       `json:"postedAt"`
}

// BankImportSession groups the bank transactions of one import.
type BankImportSession struct {
	ID               string          `json:"id"`
	TenantID         string          `json:"tenantID"`
	BankAccountID    string          `json:"bankAccountID"`
	FiscalPeriodID   string          `json:"fiscalPeriodID"`
	Currency         string          `json:"currency"`
	Status           SessionStatus   `json:"status"`
	TransactionCount int             `json:"transactionCount"`
	PostedCount      int             `json:"postedCount"`
	Staging          StagingSnapshot `json:"staging"`
	Production       *PostingSummary `json:"production,omitempty"`
	PostedAt         *time.Time      `json:"postedAt,omitempty"`
	PostedBy         string          `json:"postedBy,omitempty"`
	ArchivedAt       *time.Time      `json:"archivedAt,omitempty"`
	ArchivedBy       string          `json:"archivedBy,omitempty"`
	AuditFields
}

// BankTransaction is one raw line of a bank statement.
// A positive Amount is money into the bank account.
type BankTransaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// PatternType selects how a MappingRule matches a transaction description.
type PatternType string

const (
	PatternContains   PatternType = "contains"
	PatternStartsWith PatternType = "starts_with"
	PatternEndsWith   PatternType = "ends_with"
	PatternRegex      PatternType = "regex"
)

// MappingRule routes matching bank transactions to a contra ledger account.
type MappingRule struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenantID"`
	Name        string      `json:"name"`
	Pattern     string      `json:"pattern"`
	PatternType PatternType `json:"patternType"`
	AccountID   string      `json:"accountID"`
	Priority    int         `json:"priority"`
	IsActive    bool        `json:"isActive"`
}

// CandidateLine is the account and direction a mapping produced for one leg.
type CandidateLine struct {
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// MappedTransaction is the output of mapping a bank transaction.
type MappedTransaction struct {
	Transaction BankTransaction
	RuleID      string
	Lines       []CandidateLine
}

// UnmappedTransaction is a bank transaction no rule could place.
type UnmappedTransaction struct {
	Transaction BankTransaction `json:"transaction"`
	Reason      string          `json:"reason"`
}

// StageResult is returned after a batch of transactions is staged.
type StageResult struct {
	Session     BankImportSession     `json:"session"`
	StagedCount int                   `json:"stagedCount"`
	Unmapped    []UnmappedTransaction `json:"unmapped"`
}
