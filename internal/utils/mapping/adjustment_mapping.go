package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelAdjustment converts a domain ReconciliationAdjustment to a model row.
func ToModelAdjustment(d domain.ReconciliationAdjustment) models.ReconciliationAdjustment {
	m := models.ReconciliationAdjustment{
		ID:                d.ID,
		TenantID:          d.TenantID,
		SessionID:         d.SessionID,
		Description:       d.Description,
		Amount:            d.Amount,
		AdjustmentType:    string(d.AdjustmentType),
		BankAccountID:     d.BankAccountID,
		LedgerAccountID:   d.LedgerAccountID,
		LedgerAccountCode: d.LedgerAccountCode,
		FiscalPeriodID:    d.FiscalPeriodID,
		TransactionDate:   d.TransactionDate,
		PostedJournalID:   d.PostedJournalID,
		ReversalJournalID: d.ReversalJournalID,
		ReversedAt:        d.ReversedAt,
		Metadata:          d.Metadata,
		CreatedBy:         d.CreatedBy,
		CreatedAt:         d.CreatedAt,
	}
	if d.ReversalReason != "" {
		m.ReversalReason = &d.ReversalReason
	}
	if m.Metadata == nil {
		m.Metadata = map[string]string{}
	}
	return m
}

// ToDomainAdjustment converts a model row to a domain ReconciliationAdjustment.
func ToDomainAdjustment(m models.ReconciliationAdjustment) domain.ReconciliationAdjustment {
	d := domain.ReconciliationAdjustment{
		ID:                m.ID,
		TenantID:          m.TenantID,
		SessionID:         m.SessionID,
		Description:       m.Description,
		Amount:            m.Amount,
		AdjustmentType:    domain.AdjustmentType(m.AdjustmentType),
		BankAccountID:     m.BankAccountID,
		LedgerAccountID:   m.LedgerAccountID,
		LedgerAccountCode: m.LedgerAccountCode,
		FiscalPeriodID:    m.FiscalPeriodID,
		TransactionDate:   m.TransactionDate,
		PostedJournalID:   m.PostedJournalID,
		ReversalJournalID: m.ReversalJournalID,
		ReversedAt:        m.ReversedAt,
		Metadata:          m.Metadata,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
	if m.ReversalReason != nil {
		d.ReversalReason = *m.ReversalReason
	}
	return d
}
