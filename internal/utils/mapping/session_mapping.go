package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelSession converts a domain BankImportSession to a model row.
func ToModelSession(d domain.BankImportSession) models.BankImportSession {
	m := models.BankImportSession{
		ID:               d.ID,
		TenantID:         d.TenantID,
		BankAccountID:    d.BankAccountID,
		FiscalPeriodID:   d.FiscalPeriodID,
		Currency:         d.Currency,
		Status:           string(d.Status),
		TransactionCount: d.TransactionCount,
		PostedCount:      d.PostedCount,
		StagedJournals:   d.Staging.JournalEntryCount,
		StagedGLRows:     d.Staging.GLEntryCount,
		StagedDebits:     d.Staging.TotalDebits,
		StagedCredits:    d.Staging.TotalCredits,
		StagedBalanced:   d.Staging.IsBalanced,
		StagedAt:         d.Staging.StagedAt,
		PostedAt:         d.PostedAt,
		ArchivedAt:       d.ArchivedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.Production != nil {
		p := *d.Production
		m.ProductionJournals = &p.JournalEntryCount
		m.ProductionGLRows = &p.GLEntryCount
		m.ProductionDebits = &p.TotalDebits
		m.ProductionCredits = &p.TotalCredits
	}
	if d.PostedBy != "" {
		m.PostedBy = &d.PostedBy
	}
	if d.ArchivedBy != "" {
		m.ArchivedBy = &d.ArchivedBy
	}
	return m
}

// ToDomainSession converts a model row to a domain BankImportSession.
func ToDomainSession(m models.BankImportSession) domain.BankImportSession {
	d := domain.BankImportSession{
		ID:               m.ID,
		TenantID:         m.TenantID,
		BankAccountID:    m.BankAccountID,
		FiscalPeriodID:   m.FiscalPeriodID,
		Currency:         m.Currency,
		Status:           domain.SessionStatus(m.Status),
		TransactionCount: m.TransactionCount,
		PostedCount:      m.PostedCount,
		Staging: domain.StagingSnapshot{
			JournalEntryCount: m.StagedJournals,
			GLEntryCount:      m.StagedGLRows,
			TotalDebits:       m.StagedDebits,
			TotalCredits:      m.StagedCredits,
			IsBalanced:        m.StagedBalanced,
			StagedAt:          m.StagedAt,
		},
		PostedAt:    m.PostedAt,
		ArchivedAt:  m.ArchivedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ProductionJournals != nil && m.ProductionGLRows != nil && m.ProductionDebits != nil && m.ProductionCredits != nil {
		p := &domain.PostingSummary{
			JournalEntryCount: *m.ProductionJournals,
			GLEntryCount:      *m.ProductionGLRows,
			TotalDebits:       *m.ProductionDebits,
			TotalCredits:      *m.ProductionCredits,
		}
		if m.PostedAt != nil {
			p.PostedAt = *m.PostedAt
		}
		d.Production = p
	}
	if m.PostedBy != nil {
		d.PostedBy = *m.PostedBy
	}
	if m.ArchivedBy != nil {
		d.ArchivedBy = *m.ArchivedBy
	}
	return d
}

// ToDomainMappingRule converts a model MappingRule to a domain MappingRule
func ToDomainMappingRule(m models.MappingRule) domain.MappingRule {
	return domain.MappingRule{
		ID:          m.ID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Pattern:     m.Pattern,
		PatternType: domain.PatternType(m.PatternType),
		AccountID:   m.AccountID,
		Priority:    m.Priority,
		IsActive:    m.IsActive,
	}
}
