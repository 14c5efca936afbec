package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/config"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
)

type fakeDB struct{}

func (fakeDB) Ping(context.Context) error { return nil }

func (fakeDB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type fakePubSub struct{}

func (fakePubSub) Ping(context.Context) error { return nil }

func (fakePubSub) RoutingPublisher() *gcppubsub.Publisher { return nil }

type fakeRepo struct {
	events    []models.OutboxEvent
	published []uuid.UUID
	failed    []uuid.UUID
}

func (r *fakeRepo) FetchUnpublishedTx(tx *gorm.DB, limit, maxAttempts int) ([]models.OutboxEvent, error) {
	out := []models.OutboxEvent{}
	for _, e := range r.events {
		if e.PublishedAt == nil && e.AttemptCount < maxAttempts {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) MarkPublishedTx(tx *gorm.DB, id uuid.UUID) error {
	r.published = append(r.published, id)
	return nil
}

func (r *fakeRepo) MarkFailedTx(tx *gorm.DB, id uuid.UUID, err error) error {
	r.failed = append(r.failed, id)
	return nil
}

type fakePublisher struct {
	results  []publishResult
	messages int
}

func (p *fakePublisher) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	idx := p.messages
	p.messages++
	if idx < len(p.results) {
		return p.results[idx]
	}
	return fakePublishResult{}
}

type fakePublishResult struct {
	err error
}

func (r fakePublishResult) Get(ctx context.Context) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "server-id", nil
}

func routingEvent(t *testing.T, attempts int) models.OutboxEvent {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"lead_id": uuid.NewString()})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return models.OutboxEvent{
		ID:            uuid.New(),
		EventType:     enums.OutboxEventLeadAssigned,
		AggregateType: enums.OutboxAggregateLead,
		AggregateID:   uuid.New(),
		Payload:       payload,
		AttemptCount:  attempts,
	}
}

func newTestService(t *testing.T, repo outboxRepository, pub publisher) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Config:     &config.Config{},
		Logger:     logger.New(logger.Options{ServiceName: "test"}),
		DB:         fakeDB{},
		PubSub:     fakePubSub{},
		Repository: repo,
		Publisher:  pub,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestProcessBatchContinuesAfterFailure(t *testing.T) {
	repo := &fakeRepo{
		events: []models.OutboxEvent{
			routingEvent(t, 0),
			routingEvent(t, 0),
		},
	}
	pub := &fakePublisher{
		results: []publishResult{
			fakePublishResult{err: errors.New("transient")},
			fakePublishResult{},
		},
	}
	service := newTestService(t, repo, pub)

	processed, err := service.processBatch(context.Background())
	if err != nil {
		t.Fatalf("process batch returned error: %v", err)
	}
	if !processed {
		t.Fatal("expected batch to report processed")
	}
	if len(repo.failed) != 1 || repo.failed[0] != repo.events[0].ID {
		t.Fatalf("first event should be marked failed, got %v", repo.failed)
	}
	if len(repo.published) != 1 || repo.published[0] != repo.events[1].ID {
		t.Fatalf("second event should be marked published, got %v", repo.published)
	}
}

func TestProcessBatchEmptyIsNotProcessed(t *testing.T) {
	service := newTestService(t, &fakeRepo{}, &fakePublisher{})

	processed, err := service.processBatch(context.Background())
	if err != nil {
		t.Fatalf("process batch returned error: %v", err)
	}
	if processed {
		t.Fatal("empty batch must not report processed")
	}
}

func TestFetchSkipsExhaustedEvents(t *testing.T) {
	exhausted := routingEvent(t, defaultMaxAttempts)
	fresh := routingEvent(t, 0)
	repo := &fakeRepo{events: []models.OutboxEvent{exhausted, fresh}}
	service := newTestService(t, repo, &fakePublisher{})

	processed, err := service.processBatch(context.Background())
	if err != nil {
		t.Fatalf("process batch returned error: %v", err)
	}
	if !processed {
		t.Fatal("expected batch to report processed")
	}
	if len(repo.published) != 1 || repo.published[0] != fresh.ID {
		t.Fatalf("only the fresh event should publish, got %v", repo.published)
	}
	if len(repo.failed) != 0 {
		t.Fatalf("exhausted event must not be retried, got %v", repo.failed)
	}
}

func TestNextBackoffCapsAtMax(t *testing.T) {
	base := 50 * time.Millisecond
	current := base
	for i := 0; i < 20; i++ {
		current = nextBackoff(current, base, maxBackoff)
	}
	if current != maxBackoff {
		t.Fatalf("backoff should cap at %s, got %s", maxBackoff, current)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	service := newTestService(t, &fakeRepo{}, &fakePublisher{})
	service.pollInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := service.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
