package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/SscSPs/ledger_engine/internal/core/services"

// BaseService provides common functionality for all services
type BaseService struct {
	// StepTimeout bounds every transactional step. Zero means no extra deadline.
	StepTimeout time.Duration
	// Clock is overridable in tests.
	Clock func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error together with the tenant and session context it carries
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := apperrors.LogAttrs(err)
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the service clock in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// StepContext derives the context for one transactional step.
func (s *BaseService) StepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.StepTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.StepTimeout)
}

// StartSpan opens a tracing span for a service operation.
// The global provider is a no-op unless the host installs one.
func (s *BaseService) StartSpan(ctx context.Context, name, tenantID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("ledger.tenant_id", tenantID))
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on the span, if any, and ends it.
func (s *BaseService) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperrors.PublicMessage(err))
	}
	span.End()
}

// NewOutboxEvent serializes payload into a pending outbox event.
func (s *BaseService) NewOutboxEvent(tenantID, eventType, aggregateID string, payload any) (domain.OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.OutboxEvent{}, apperrors.NewAppError(500, "failed to encode ledger event", err)
	}
	return domain.OutboxEvent{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     body,
		Status:      domain.OutboxPending,
		CreatedAt:   s.Now(),
	}, nil
}
