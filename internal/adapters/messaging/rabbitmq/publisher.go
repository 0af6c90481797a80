package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
)

var (
	ErrPublishNacked     = errors.New("message was nacked by broker")
	ErrConfirmTimeout    = errors.New("confirmation timed out")
	ErrPublisherClosed   = errors.New("publisher is closed")
	ErrBrokerUnavailable = errors.New("broker unavailable")
)

const (
	DefaultConfirmTimeout = 5 * time.Second
	contentTypeJSON       = "application/json"
	tenantHeader          = "tenant_id"
)

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	Confirm(noWait bool) error
	NotifyPublish(confirm chan amqp.Confirmation) chan amqp.Confirmation
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends outbox events to a topic exchange with publisher confirms.
// The event type is the routing key. Calls are serialized so confirms arrive
// in publish order.
type Publisher struct {
	ch             Channel
	conn           *amqp.Connection
	exchange       string
	confirms       chan amqp.Confirmation
	breaker        *gobreaker.CircuitBreaker
	confirmTimeout time.Duration

	mu     sync.Mutex
	closed bool
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithConfirmTimeout bounds how long Publish waits for the broker ack.
func WithConfirmTimeout(d time.Duration) PublisherOption {
	return func(p *Publisher) {
		if d > 0 {
			p.confirmTimeout = d
		}
	}
}

// WithBreakerSettings replaces the default circuit breaker settings.
func WithBreakerSettings(settings gobreaker.Settings) PublisherOption {
	return func(p *Publisher) {
		p.breaker = gobreaker.NewCircuitBreaker(settings)
	}
}

func defaultBreakerSettings(exchange string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "rabbitmq-" + exchange,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// NewPublisher puts ch into confirm mode and wraps it.
func NewPublisher(ch Channel, exchange string, options ...PublisherOption) (*Publisher, error) {
	if ch == nil {
		return nil, errors.New("rabbitmq channel is required")
	}
	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}
	p := &Publisher{
		ch:             ch,
		exchange:       exchange,
		confirms:       ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		breaker:        gobreaker.NewCircuitBreaker(defaultBreakerSettings(exchange)),
		confirmTimeout: DefaultConfirmTimeout,
	}
	for _, option := range options {
		option(p)
	}
	return p, nil
}

// Dial connects to the broker, declares the durable topic exchange and returns
// a publisher that owns the connection.
func Dial(url, exchange string, options ...PublisherOption) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	p, err := NewPublisher(ch, exchange, options...)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// Publish sends one event and waits for the broker to confirm it.
func (p *Publisher) Publish(ctx context.Context, event domain.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}

	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.publishAndConfirm(ctx, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrBrokerUnavailable, err)
	}
	return err
}

func (p *Publisher) publishAndConfirm(ctx context.Context, event domain.OutboxEvent) error {
	msg := amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.CreatedAt,
		Type:         event.EventType,
		Headers: amqp.Table{
			tenantHeader:   event.TenantID,
			"aggregate_id": event.AggregateID,
		},
		Body: event.Payload,
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, event.EventType, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.ID, err)
	}

	timer := time.NewTimer(p.confirmTimeout)
	defer timer.Stop()
	select {
	case confirm, ok := <-p.confirms:
		if !ok {
			return ErrPublisherClosed
		}
		if !confirm.Ack {
			return ErrPublishNacked
		}
		return nil
	case <-timer.C:
		return ErrConfirmTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State reports the circuit breaker state for health output.
func (p *Publisher) State() string {
	return p.breaker.State().String()
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
