package notifier

import (
	"context"
	"encoding/json"
	"sync"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// Worker drains queued notifications from Redis. It only exists in
// async mode; the sync queue delivers inline on its own goroutines.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	deliverer *Deliverer
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// NewWorker builds the asynq consumer. Returns nil when Redis is
// disabled, which callers treat as "no worker to run".
func NewWorker(cfg *config.Config, deliverer *Deliverer) *Worker {
	if !cfg.RedisEnabled {
		return nil
	}

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Errorf("[worker] task %s failed: %v", task.Type(), err)
			}),
		},
	)

	return &Worker{
		server:    server,
		mux:       asynq.NewServeMux(),
		deliverer: deliverer,
	}
}

// Start begins consuming tasks in the background.
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.mux.HandleFunc(TaskTypeNotification, w.handleNotification)

	w.running = true
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		logger.Infof("[worker] notification worker starting")
		if err := w.server.Run(w.mux); err != nil {
			logger.Errorf("[worker] server error: %v", err)
		}
	}()
	return nil
}

// Stop shuts the worker down and waits for in-flight deliveries.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.server.Shutdown()
	w.running = false
	w.wg.Wait()
	logger.Infof("[worker] notification worker stopped")
}

func (w *Worker) handleNotification(ctx context.Context, t *asynq.Task) error {
	var n Notification
	if err := json.Unmarshal(t.Payload(), &n); err != nil {
		// A payload that cannot decode will never decode; do not retry.
		logger.Errorf("[worker] undecodable payload, dropping: %v", err)
		return nil
	}
	return w.deliverer.Deliver(ctx, &n)
}
