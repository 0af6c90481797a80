package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/outbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) ListPendingEvents(ctx context.Context, limit, maxAttempts int) ([]domain.OutboxEvent, error) {
	args := m.Called(ctx, limit, maxAttempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutboxEvent), args.Error(1)
}

func (m *MockOutboxRepository) MarkEventPublished(ctx context.Context, eventID string, publishedAt time.Time) error {
	return m.Called(ctx, eventID, publishedAt).Error(0)
}

func (m *MockOutboxRepository) MarkEventFailed(ctx context.Context, eventID, lastError string) error {
	return m.Called(ctx, eventID, lastError).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

func events(ids ...string) []domain.OutboxEvent {
	out := make([]domain.OutboxEvent, len(ids))
	for i, id := range ids {
		out[i] = domain.OutboxEvent{ID: id, TenantID: "tenant-1", EventType: domain.EventJournalPosted}
	}
	return out
}

func TestRelayOnce_PublishesInOrder(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOutboxRepository)
	pub := new(MockPublisher)
	relay := outbox.NewRelay(repo, pub, outbox.WithBatchSize(2), outbox.WithMaxAttempts(3))

	batch := events("e1", "e2")
	repo.On("ListPendingEvents", ctx, 2, 3).Return(batch, nil).Once()
	pub.On("Publish", ctx, batch[0]).Return(nil).Once()
	pub.On("Publish", ctx, batch[1]).Return(nil).Once()
	repo.On("MarkEventPublished", ctx, "e1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	repo.On("MarkEventPublished", ctx, "e2", mock.AnythingOfType("time.Time")).Return(nil).Once()

	n, err := relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestRelayOnce_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOutboxRepository)
	pub := new(MockPublisher)
	relay := outbox.NewRelay(repo, pub)

	batch := events("e1", "e2", "e3")
	repo.On("ListPendingEvents", ctx, 100, 10).Return(batch, nil).Once()
	pub.On("Publish", ctx, batch[0]).Return(nil).Once()
	repo.On("MarkEventPublished", ctx, "e1", mock.Anything).Return(nil).Once()
	pub.On("Publish", ctx, batch[1]).Return(errors.New("broker unavailable")).Once()
	repo.On("MarkEventFailed", ctx, "e2", "broker unavailable").Return(nil).Once()

	n, err := relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	pub.AssertNotCalled(t, "Publish", ctx, batch[2])
	repo.AssertExpectations(t)
}

func TestRelayOnce_ListError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOutboxRepository)
	relay := outbox.NewRelay(repo, new(MockPublisher))

	repo.On("ListPendingEvents", ctx, 100, 10).Return(nil, errors.New("db down")).Once()

	n, err := relay.RelayOnce(ctx)
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := new(MockOutboxRepository)
	relay := outbox.NewRelay(repo, new(MockPublisher), outbox.WithPollInterval(time.Millisecond))

	repo.On("ListPendingEvents", mock.Anything, 100, 10).Return([]domain.OutboxEvent{}, nil)

	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}
