package outbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

// EventPublisher delivers one outbox event to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OutboxEvent) error
}

// Relay drains ledger_outbox into the broker. Events are written in the same
// transaction as the ledger rows they describe, so delivery is at least once.
type Relay struct {
	repo        portsrepo.OutboxRepository
	publisher   EventPublisher
	logger      *slog.Logger
	interval    time.Duration
	batchSize   int
	maxAttempts int
	now         func() time.Time
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

func WithPollInterval(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatchSize(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

func WithMaxAttempts(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

func WithLogger(logger *slog.Logger) RelayOption {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRelay creates a relay with a 5s poll interval, batches of 100 and 10 attempts per event.
func NewRelay(repo portsrepo.OutboxRepository, publisher EventPublisher, options ...RelayOption) *Relay {
	r := &Relay{
		repo:        repo,
		publisher:   publisher,
		logger:      slog.Default(),
		interval:    5 * time.Second,
		batchSize:   100,
		maxAttempts: 10,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	r.logger.Info("Outbox relay started", slog.Duration("interval", r.interval), slog.Int("batch_size", r.batchSize))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("Outbox relay pass failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch of pending events in creation order and
// returns how many were published. It stops at the first publish failure so
// later events never overtake an earlier one.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	events, err := r.repo.ListPendingEvents(ctx, r.batchSize, r.maxAttempts)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, event := range events {
		if ctx.Err() != nil {
			return published, ctx.Err()
		}
		if err := r.publisher.Publish(ctx, event); err != nil {
			r.logger.Warn("Failed to publish ledger event",
				slog.String("event_id", event.ID),
				slog.String("event_type", event.EventType),
				slog.String("tenant_id", event.TenantID),
				slog.Int("attempt", event.Attempts+1),
				slog.String("error", err.Error()))
			if markErr := r.repo.MarkEventFailed(ctx, event.ID, err.Error()); markErr != nil {
				return published, markErr
			}
			return published, nil
		}
		if err := r.repo.MarkEventPublished(ctx, event.ID, r.now()); err != nil {
			return published, err
		}
		published++
	}
	if published > 0 {
		r.logger.Debug("Published ledger events", slog.Int("count", published))
	}
	return published, nil
}
