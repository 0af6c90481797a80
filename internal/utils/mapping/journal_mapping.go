package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		ID:              d.ID,
		TenantID:        d.TenantID,
		FiscalPeriodID:  d.FiscalPeriodID,
		JournalCode:     d.JournalCode,
		Reference:       d.Reference,
		Description:     d.Description,
		Status:          string(d.Status),
		Source:          string(d.Source),
		TransactionDate: d.TransactionDate,
		ImportSessionID: d.ImportSessionID,
		ReversalOf:      d.ReversalOf,
		Metadata:        d.Metadata,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if !d.PostingDate.IsZero() {
		posting := d.PostingDate
		m.PostingDate = &posting
	}
	if m.Metadata == nil {
		m.Metadata = map[string]string{}
	}
	return m
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	d := domain.JournalEntry{
		ID:              m.ID,
		TenantID:        m.TenantID,
		FiscalPeriodID:  m.FiscalPeriodID,
		JournalCode:     m.JournalCode,
		Reference:       m.Reference,
		Description:     m.Description,
		Status:          domain.JournalStatus(m.Status),
		Source:          domain.Source(m.Source),
		TransactionDate: m.TransactionDate,
		ImportSessionID: m.ImportSessionID,
		ReversalOf:      m.ReversalOf,
		Metadata:        m.Metadata,
		Lines:           ToDomainJournalLines(lines),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.PostingDate != nil {
		d.PostingDate = *m.PostingDate
	}
	return d
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(tenantID string, d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		ID:             d.LineID,
		JournalEntryID: d.JournalEntryID,
		TenantID:       tenantID,
		LineNumber:     d.LineNumber,
		AccountID:      d.AccountID,
		AccountCode:    d.AccountCode,
		AccountName:    d.AccountName,
		AccountType:    models.AccountType(d.AccountType),
		Description:    d.Description,
		Debit:          d.Debit,
		Credit:         d.Credit,
		Currency:       d.Currency,
		CustomerID:     d.Dimensions.CustomerID,
		InvoiceID:      d.Dimensions.InvoiceID,
		VendorID:       d.Dimensions.VendorID,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.ID,
		JournalEntryID: m.JournalEntryID,
		LineNumber:     m.LineNumber,
		AccountID:      m.AccountID,
		AccountCode:    m.AccountCode,
		AccountName:    m.AccountName,
		AccountType:    domain.AccountType(m.AccountType),
		Description:    m.Description,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Currency:       m.Currency,
		Dimensions: domain.Dimensions{
			CustomerID: m.CustomerID,
			InvoiceID:  m.InvoiceID,
			VendorID:   m.VendorID,
		},
	}
}

// ToDomainJournalLines converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLines(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
