package services

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

type journalPostedEvent struct {
	JournalEntryID string          `json:"journalEntryID"`
	Reference      string          `json:"reference"`
	Source         domain.Source   `json:"source"`
	FiscalPeriodID string          `json:"fiscalPeriodID"`
	TotalDebits    decimal.Decimal `json:"totalDebits"`
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	LineCount      int             `json:"lineCount"`
}

type sessionPostedEvent struct {
	SessionID         string          `json:"sessionID"`
	BankAccountID     string          `json:"bankAccountID"`
	JournalEntryCount int             `json:"journalEntryCount"`
	GLEntryCount      int             `json:"glEntryCount"`
	TotalDebits       decimal.Decimal `json:"totalDebits"`
	TotalCredits      decimal.Decimal `json:"totalCredits"`
}

type sessionArchivedEvent struct {
	SessionID string              `json:"sessionID"`
	Totals    domain.LedgerTotals `json:"totals"`
}

type adjustmentReversedEvent struct {
	AdjustmentID      string `json:"adjustmentID"`
	OriginalJournalID string `json:"originalJournalID"`
	ReversalJournalID string `json:"reversalJournalID"`
	Reason            string `json:"reason"`
}

func newJournalPostedEvent(entry domain.JournalEntry) journalPostedEvent {
	debits, credits := entry.Totals()
	return journalPostedEvent{
		JournalEntryID: entry.ID,
		Reference:      entry.Reference,
		Source:         entry.Source,
		FiscalPeriodID: entry.FiscalPeriodID,
		TotalDebits:    debits,
		TotalCredits:   credits,
		LineCount:      len(entry.Lines),
	}
}
