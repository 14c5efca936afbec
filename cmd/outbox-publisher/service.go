package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/config"
	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
)

const (
	defaultBatchSize      = 50
	defaultPollMs         = 500
	defaultPublishTimeout = 15 * time.Second
	defaultMaxAttempts    = 10
	maxBackoff            = 10 * time.Second
	jitterWindow          = 250 * time.Millisecond
)

var jitterSource = rand.New(rand.NewSource(time.Now().UnixNano()))

type dbClient interface {
	Ping(context.Context) error
	WithTx(context.Context, func(tx *gorm.DB) error) error
}

type pubSubClient interface {
	Ping(context.Context) error
	RoutingPublisher() *gcppubsub.Publisher
}

type outboxRepository interface {
	FetchUnpublishedTx(tx *gorm.DB, limit, maxAttempts int) ([]models.OutboxEvent, error)
	MarkPublishedTx(tx *gorm.DB, id uuid.UUID) error
	MarkFailedTx(tx *gorm.DB, id uuid.UUID, err error) error
}

type publisher interface {
	Publish(context.Context, *gcppubsub.Message) publishResult
}

type publishResult interface {
	Get(context.Context) (string, error)
}

type ServiceParams struct {
	Config     *config.Config
	Logger     *logger.Logger
	DB         dbClient
	PubSub     pubSubClient
	Repository outboxRepository

	// Publisher overrides the Pub/Sub publisher, for tests.
	Publisher publisher
}

// Service drains staged outbox events into the routing events topic. Events
// that keep failing past the attempt limit stay in the table, excluded from
// fetches, so they can be inspected and replayed by hand.
type Service struct {
	cfg          *config.Config
	logg         *logger.Logger
	db           dbClient
	repo         outboxRepository
	pubsub       pubSubClient
	pub          publisher
	batchSize    int
	maxAttempts  int
	pollInterval time.Duration
}

func NewService(params ServiceParams) (*Service, error) {
	switch {
	case params.Config == nil:
		return nil, errors.New("config is required")
	case params.Logger == nil:
		return nil, errors.New("logger is required")
	case params.DB == nil:
		return nil, errors.New("database client is required")
	case params.PubSub == nil:
		return nil, errors.New("pubsub client is required")
	case params.Repository == nil:
		return nil, errors.New("outbox repository is required")
	}

	pub := params.Publisher
	if pub == nil {
		if handle := params.PubSub.RoutingPublisher(); handle != nil {
			pub = &gcpPublisher{Publisher: handle}
		}
	}
	if pub == nil {
		return nil, errors.New("routing topic publisher is not configured")
	}

	s := &Service{
		cfg:          params.Config,
		logg:         params.Logger,
		db:           params.DB,
		repo:         params.Repository,
		pubsub:       params.PubSub,
		pub:          pub,
		batchSize:    params.Config.Outbox.BatchSize,
		maxAttempts:  params.Config.Outbox.MaxAttempts,
		pollInterval: time.Duration(params.Config.Outbox.PollIntervalMS) * time.Millisecond,
	}
	if s.batchSize <= 0 {
		s.batchSize = defaultBatchSize
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = defaultMaxAttempts
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollMs * time.Millisecond
	}
	return s, nil
}

// Run polls for unpublished events until ctx is canceled. A failing batch
// backs the loop off exponentially with jitter rather than crashing the
// worker; a clean batch resets the backoff.
func (s *Service) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, dep := range []struct {
		name string
		ping func(context.Context) error
	}{
		{"database", s.db.Ping},
		{"pubsub", s.pubsub.Ping},
	} {
		if err := dep.ping(ctx); err != nil {
			s.logg.Error(ctx, dep.name+" ping failed", err)
			return fmt.Errorf("%s ping failed: %w", dep.name, err)
		}
	}

	backoff := s.pollInterval
	for {
		if err := ctx.Err(); err != nil {
			s.logg.Info(ctx, "outbox publisher context canceled")
			return err
		}

		processed, err := s.processBatch(ctx)
		switch {
		case err != nil:
			s.logg.Error(ctx, "outbox publisher batch error", err)
			backoff = nextBackoff(backoff, s.pollInterval, maxBackoff)
			if err := s.sleep(ctx, withJitter(backoff)); err != nil {
				return err
			}

		case processed:
			backoff = s.pollInterval

		default:
			backoff = s.pollInterval
			if err := s.sleep(ctx, withJitter(s.pollInterval)); err != nil {
				return err
			}
		}
	}
}

// processBatch drains one batch inside a single transaction so the row
// locks from the fetch hold until the publish outcomes are recorded.
func (s *Service) processBatch(ctx context.Context) (bool, error) {
	processed := false
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		events, err := s.repo.FetchUnpublishedTx(tx, s.batchSize, s.maxAttempts)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		processed = true

		for _, event := range events {
			if pubErr := s.publishEvent(ctx, event); pubErr != nil {
				s.logFailure(ctx, event, pubErr)
				if err := s.repo.MarkFailedTx(tx, event.ID, pubErr); err != nil {
					return fmt.Errorf("mark failure %s: %w", event.ID, err)
				}
				continue
			}
			if err := s.repo.MarkPublishedTx(tx, event.ID); err != nil {
				return fmt.Errorf("mark published %s: %w", event.ID, err)
			}
			s.logg.Info(s.logg.WithFields(ctx, s.eventFields(event)), "outbox event published")
		}
		return nil
	})
	return processed, err
}

func (s *Service) publishEvent(ctx context.Context, event models.OutboxEvent) error {
	publishCtx, cancel := context.WithTimeout(ctx, defaultPublishTimeout)
	defer cancel()

	result := s.pub.Publish(publishCtx, &gcppubsub.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_type":     string(event.EventType),
			"aggregate_type": string(event.AggregateType),
			"aggregate_id":   event.AggregateID.String(),
			"created_at":     event.CreatedAt.Format(time.RFC3339Nano),
		},
	})
	if result == nil {
		return errors.New("publisher returned nil result")
	}
	_, err := result.Get(publishCtx)
	return err
}

func (s *Service) logFailure(ctx context.Context, event models.OutboxEvent, pubErr error) {
	fields := s.eventFields(event)
	nextAttempt := event.AttemptCount + 1
	fields["attempt_count"] = nextAttempt
	fields["error"] = pubErr.Error()
	if nextAttempt >= s.maxAttempts {
		// stays unpublished; the fetch filter keeps it out of future batches
		fields["terminal"] = true
	}
	s.logg.Warn(s.logg.WithFields(ctx, fields), "outbox publish failed")
}

func (s *Service) eventFields(event models.OutboxEvent) map[string]any {
	fields := map[string]any{
		"outbox_id":      event.ID.String(),
		"event_type":     event.EventType,
		"aggregate_type": event.AggregateType,
		"aggregate_id":   event.AggregateID.String(),
		"batch_size":     s.batchSize,
		"attempt_count":  event.AttemptCount,
	}
	if event.LastError != nil {
		fields["last_error"] = *event.LastError
	}
	return fields
}

func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func nextBackoff(current, base, max time.Duration) time.Duration {
	if current <= 0 {
		current = base
	}
	if next := current * 2; next < max {
		return next
	}
	return max
}

func withJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d + time.Duration(jitterSource.Int63n(int64(jitterWindow)))
}

// gcpPublisher adapts the concrete Pub/Sub publisher to the narrow
// interfaces the service is tested against.
type gcpPublisher struct {
	*gcppubsub.Publisher
}

func (p *gcpPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	if p == nil || p.Publisher == nil {
		return nil
	}
	return &gcpPublishResult{PublishResult: p.Publisher.Publish(ctx, msg)}
}

type gcpPublishResult struct {
	*gcppubsub.PublishResult
}

func (r *gcpPublishResult) Get(ctx context.Context) (string, error) {
	if r == nil || r.PublishResult == nil {
		return "", errors.New("publish result is nil")
	}
	return r.PublishResult.Get(ctx)
}
