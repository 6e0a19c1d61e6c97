package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueEmail = "jobs:email"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// NotifyCredentials queues a credential delivery email. Enqueue failures are
// logged, not propagated: account provisioning never depends on the queue.
func (d *Dispatcher) NotifyCredentials(ctx context.Context, email, name, username, tempPassword, loginURL string) error {
	payload := CredentialsJobPayload{
		ToEmail:      email,
		Name:         name,
		Username:     username,
		TempPassword: tempPassword,
		LoginURL:     loginURL,
	}
	if err := d.enqueue(ctx, QueueEmail, "credentials", payload); err != nil {
		log.Error().Err(err).Str("to", email).Msg("dispatcher: failed to enqueue credentials email")
		return err
	}
	return nil
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the email queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, emailWorker *EmailWorker) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, emailWorker)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, emailWorker *EmailWorker) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueEmail).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, emailWorker, result[0], result[1])
		}
	}
}

const (
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

func processJob(ctx context.Context, rdb *redis.Client, emailWorker *EmailWorker, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = emailWorker.Process(ctx, job.Payload)
		if lastErr == nil {
			return
		}
		log.Warn().
			Str("type", job.Type).
			Int("attempt", attempt).
			Err(lastErr).
			Msg("job attempt failed")
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}
	}
	SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, lastErr.Error(), maxAttempts)
}
