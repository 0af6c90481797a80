package models

import "time"

// OutboxEvent is a row of ledger_outbox.
type OutboxEvent struct {
	ID          string     `db:"id"`
	TenantID    string     `db:"tenant_id"`
	EventType   string     `db:"event_type"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	Attempts    int        `db:"attempts"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
	PublishedAt *time.Time `db:"published_at"`
}
