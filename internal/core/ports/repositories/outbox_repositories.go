package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// OutboxRepository is used by the relay to drain ledger events.
// Events are inserted by the writers above inside their own transactions.
type OutboxRepository interface {
	// ListPendingEvents returns pending or failed events below maxAttempts, oldest first.
	ListPendingEvents(ctx context.Context, limit, maxAttempts int) ([]domain.OutboxEvent, error)
	MarkEventPublished(ctx context.Context, eventID string, publishedAt time.Time) error
	MarkEventFailed(ctx context.Context, eventID, lastError string) error
}
