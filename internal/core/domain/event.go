package domain

import "time"

// Ledger event types written to the outbox.
const (
	EventJournalPosted      = "ledger.journal.posted"
	EventSessionPosted      = "ledger.session.posted"
	EventSessionArchived    = "ledger.session.archived"
	EventAdjustmentReversed = "ledger.adjustment.reversed"
)

// OutboxStatus is the delivery state of an outbox event.
type OutboxStatus string

const (
	OutboxPending   OutboxStatus = "pending"
	OutboxPublished OutboxStatus = "published"
	OutboxFailed    OutboxStatus = "failed"
)

// OutboxEvent is a ledger event stored in the same transaction as the write
// it describes, for later delivery to the broker.
type OutboxEvent struct {
	ID          string       `json:"id"`
	TenantID    string       `json:"tenantID"`
	EventType   string       `json:"eventType"`
	AggregateID string       `json:"aggregateID"`
	Payload     []byte       `json:"payload"`
	Status      OutboxStatus `json:"status"`
	Attempts    int          `json:"attempts"`
	LastError   string       `json:"lastError,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
}
