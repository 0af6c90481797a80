package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOutboxRepository struct {
	BaseRepository
}

func newPgxOutboxRepository(pool *pgxpool.Pool) *PgxOutboxRepository {
	return &PgxOutboxRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OutboxRepository = (*PgxOutboxRepository)(nil)

// ListPendingEvents returns unpublished events below maxAttempts, oldest first.
func (r *PgxOutboxRepository) ListPendingEvents(ctx context.Context, limit, maxAttempts int) ([]domain.OutboxEvent, error) {
	query := `
		SELECT id, tenant_id, event_type, aggregate_id, payload, status, attempts, last_error, created_at, published_at
		FROM ledger_outbox
		WHERE status IN ('pending', 'failed') AND attempts < $1
		ORDER BY created_at, id
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, maxAttempts, pageLimit(limit))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pending outbox events", err)
	}
	defer rows.Close()

	events := []domain.OutboxEvent{}
	for rows.Next() {
		var m models.OutboxEvent
		if err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.EventType,
			&m.AggregateID,
			&m.Payload,
			&m.Status,
			&m.Attempts,
			&m.LastError,
			&m.CreatedAt,
			&m.PublishedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan outbox event row", err)
		}
		events = append(events, mapping.ToDomainOutboxEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating outbox event rows", err)
	}
	return events, nil
}

// MarkEventPublished records a successful publish.
func (r *PgxOutboxRepository) MarkEventPublished(ctx context.Context, eventID string, publishedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE ledger_outbox
		SET status = 'published', published_at = $2, attempts = attempts + 1, last_error = NULL
		WHERE id = $1;`,
		eventID, publishedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark outbox event "+eventID+" published", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkEventFailed records a failed publish attempt.
func (r *PgxOutboxRepository) MarkEventFailed(ctx context.Context, eventID, lastError string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE ledger_outbox
		SET status = 'failed', attempts = attempts + 1, last_error = $2
		WHERE id = $1;`,
		eventID, lastError)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark outbox event "+eventID+" failed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
