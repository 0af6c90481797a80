package services

import (
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/google/uuid"
)

// LedgerProjector expands a validated entry into one ledger row per line.
type LedgerProjector struct{}

// NewLedgerProjector creates a LedgerProjector.
func NewLedgerProjector() *LedgerProjector {
	return &LedgerProjector{}
}

// Project returns exactly len(entry.Lines) rows. Running balances are left at
// zero; the repository fills them under lock when it writes the rows.
func (p *LedgerProjector) Project(entry domain.JournalEntry) ([]domain.GeneralLedgerEntry, error) {
	if entry.IsPosted() {
		return nil, fmt.Errorf("journal entry %s is already posted and cannot be projected again", entry.ID)
	}
	if entry.ID == "" {
		return nil, fmt.Errorf("journal entry has no id")
	}

	rows := make([]domain.GeneralLedgerEntry, 0, len(entry.Lines))
	seen := make(map[string]struct{}, len(entry.Lines))
	for _, line := range entry.Lines {
		if line.LineID == "" {
			return nil, fmt.Errorf("line %d of journal entry %s has no id", line.LineNumber, entry.ID)
		}
		if _, dup := seen[line.LineID]; dup {
			return nil, fmt.Errorf("line %s appears twice in journal entry %s", line.LineID, entry.ID)
		}
		seen[line.LineID] = struct{}{}

		signed, err := accounting.SignedAmount(line)
		if err != nil {
			return nil, err
		}
		description := line.Description
		if description == "" {
			description = entry.Description
		}
		rows = append(rows, domain.GeneralLedgerEntry{
			ID:              uuid.NewString(),
			TenantID:        entry.TenantID,
			FiscalPeriodID:  entry.FiscalPeriodID,
			JournalEntryID:  entry.ID,
			JournalLineID:   line.LineID,
			AccountID:       line.AccountID,
			AccountCode:     line.AccountCode,
			AccountName:     line.AccountName,
			Description:     description,
			Debit:           line.Debit,
			Credit:          line.Credit,
			SignedAmount:    signed,
			Currency:        line.Currency,
			Source:          entry.Source,
			Reference:       entry.Reference,
			TransactionDate: entry.TransactionDate,
			PostingDate:     entry.PostingDate,
			Dimensions:      line.Dimensions,
			CreatedAt:       entry.CreatedAt,
			CreatedBy:       entry.CreatedBy,
		})
	}
	return rows, nil
}
