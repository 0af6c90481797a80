package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToDomainOutboxEvent converts a model OutboxEvent to a domain OutboxEvent
func ToDomainOutboxEvent(m models.OutboxEvent) domain.OutboxEvent {
	d := domain.OutboxEvent{
		ID:          m.ID,
		TenantID:    m.TenantID,
		EventType:   m.EventType,
		AggregateID: m.AggregateID,
		Payload:     m.Payload,
		Status:      domain.OutboxStatus(m.Status),
		Attempts:    m.Attempts,
		CreatedAt:   m.CreatedAt,
		PublishedAt: m.PublishedAt,
	}
	if m.LastError != nil {
		d.LastError = *m.LastError
	}
	return d
}
