package notifier

import (
	"context"
	"encoding/json"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// Queue carries notifications from the request path to the delivery
// worker.
type Queue interface {
	Enqueue(n *Notification) error
	Close() error
}

// NewQueue picks the queue implementation: asynq over Redis when Redis
// is enabled and reachable, otherwise an in-process fallback that
// delivers on a goroutine.
func NewQueue(cfg *config.Config, deliver func(context.Context, *Notification) error) Queue {
	if cfg.RedisEnabled {
		queue, err := NewAsyncQueue(cfg)
		if err == nil {
			logger.Infof("[notifier] async queue ready at %s", cfg.RedisAddr)
			return queue
		}
		logger.Warnf("[notifier] redis unavailable, falling back to in-process delivery: %v", err)
	}
	return NewSyncQueue(deliver)
}

// AsyncQueue enqueues notifications into Redis via asynq.
type AsyncQueue struct {
	client *asynq.Client
}

// NewAsyncQueue connects an asynq client and verifies the broker is
// reachable before committing to async mode.
func NewAsyncQueue(cfg *config.Config) (*AsyncQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	client := asynq.NewClient(redisOpt)

	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()
	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

// Enqueue serializes the notification and hands it to asynq with a
// bounded retry budget.
func (q *AsyncQueue) Enqueue(n *Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeNotification, payload)
	info, err := q.client.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Info().
		Str("task_id", info.ID).
		Str("kind", n.Kind).
		Str("complaint_id", n.ComplaintID).
		Msg("notification enqueued")
	return nil
}

func (q *AsyncQueue) Close() error {
	return q.client.Close()
}

// SyncQueue delivers notifications on a goroutine in the same process.
// Used when Redis is disabled; the fire-and-forget contract is the same.
type SyncQueue struct {
	deliver func(context.Context, *Notification) error
}

func NewSyncQueue(deliver func(context.Context, *Notification) error) *SyncQueue {
	return &SyncQueue{deliver: deliver}
}

// Enqueue runs delivery in the background so the caller never blocks on
// the mailer.
func (q *SyncQueue) Enqueue(n *Notification) error {
	if q.deliver == nil {
		logger.Warnf("[notifier] no deliverer configured, dropping %s", n.Kind)
		return nil
	}
	go func() {
		if err := q.deliver(context.Background(), n); err != nil {
			logger.Errorf("[notifier] delivery failed for %s on complaint %s: %v", n.Kind, n.ComplaintID, err)
		}
	}()
	return nil
}

func (q *SyncQueue) Close() error { return nil }
