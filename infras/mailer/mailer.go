package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"paradasia/config"
	"paradasia/infras/otel"
	"paradasia/shared/constant"

	"github.com/rs/zerolog/log"
)

const emailsPath = "/emails"

type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Mailer delivers transactional email through the Resend HTTP API.
// Callers treat sends as best effort; delivery failure never rolls back state.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type mailerImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	httpClient *http.Client
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	return &mailerImpl{
		cfg:  cfg,
		otel: otl,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.External.Resend.TimeoutSec) * time.Second,
		},
	}
}

func (m *mailerImpl) Send(ctx context.Context, email Email) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if email.From == "" {
		email.From = m.cfg.External.Resend.From
	}

	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.External.Resend.BaseURL+emailsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+m.cfg.External.Resend.APIKey)
	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	httpRes, err := m.httpClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("subject", email.Subject).Msg("failed to reach mail provider")

		return fmt.Errorf("failed to reach mail provider: %w", err)
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", httpRes.StatusCode).Str("subject", email.Subject).Msg("mail provider rejected email")

		return fmt.Errorf("mail provider rejected email with status %d", httpRes.StatusCode)
	}

	return nil
}
