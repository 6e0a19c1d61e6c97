package worker

// email_worker.go
// Processes credential delivery jobs from QueueEmail.
// All SMTP traffic flows through a circuit breaker so a dead relay fails
// fast instead of tying up the pool.

import (
	"context"
	"encoding/json"
	"errors"

	"axonet/internal/infra"

	"github.com/rs/zerolog/log"
)

// CredentialsJobPayload is the job envelope for credential delivery.
type CredentialsJobPayload struct {
	ToEmail      string `json:"to_email"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	TempPassword string `json:"temp_password"`
	LoginURL     string `json:"login_url"`
}

// EmailWorker sends provisioned account credentials via SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb}
}

// Process sends one credentials email. A nil return means delivered (or
// permanently skippable); an error means the job should be retried.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload CredentialsJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return nil
	}

	err := w.cb.Execute(func() error {
		return w.mailer.SendCredentials(payload.ToEmail, payload.Name, payload.Username, payload.TempPassword, payload.LoginURL)
	})
	if err != nil {
		if errors.Is(err, infra.ErrCircuitOpen) {
			log.Warn().Str("to", payload.ToEmail).Msg("email_worker: circuit open, deferring")
		}
		return err
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: credentials sent")
	return nil
}
