package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelLedgerEntry converts a domain GeneralLedgerEntry to a model row.
// importSessionID is nil for entries that did not come from a bank import.
func ToModelLedgerEntry(d domain.GeneralLedgerEntry, importSessionID *string) models.GeneralLedgerEntry {
	return models.GeneralLedgerEntry{
		ID:              d.ID,
		TenantID:        d.TenantID,
		FiscalPeriodID:  d.FiscalPeriodID,
		JournalEntryID:  d.JournalEntryID,
		JournalLineID:   d.JournalLineID,
		AccountID:       d.AccountID,
		AccountCode:     d.AccountCode,
		AccountName:     d.AccountName,
		Description:     d.Description,
		Debit:           d.Debit,
		Credit:          d.Credit,
		SignedAmount:    d.SignedAmount,
		RunningBalance:  d.RunningBalance,
		Currency:        d.Currency,
		Source:          string(d.Source),
		Reference:       d.Reference,
		TransactionDate: d.TransactionDate,
		PostingDate:     d.PostingDate,
		CustomerID:      d.Dimensions.CustomerID,
		InvoiceID:       d.Dimensions.InvoiceID,
		VendorID:        d.Dimensions.VendorID,
		ImportSessionID: importSessionID,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model row to a domain GeneralLedgerEntry
func ToDomainLedgerEntry(m models.GeneralLedgerEntry) domain.GeneralLedgerEntry {
	return domain.GeneralLedgerEntry{
		ID:              m.ID,
		TenantID:        m.TenantID,
		FiscalPeriodID:  m.FiscalPeriodID,
		JournalEntryID:  m.JournalEntryID,
		JournalLineID:   m.JournalLineID,
		AccountID:       m.AccountID,
		AccountCode:     m.AccountCode,
		AccountName:     m.AccountName,
		Description:     m.Description,
		Debit:           m.Debit,
		Credit:          m.Credit,
		SignedAmount:    m.SignedAmount,
		RunningBalance:  m.RunningBalance,
		Currency:        m.Currency,
		Source:          domain.Source(m.Source),
		Reference:       m.Reference,
		TransactionDate: m.TransactionDate,
		PostingDate:     m.PostingDate,
		Dimensions: domain.Dimensions{
			CustomerID: m.CustomerID,
			InvoiceID:  m.InvoiceID,
			VendorID:   m.VendorID,
		},
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}
