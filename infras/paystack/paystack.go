package paystack

//go:generate go run go.uber.org/mock/mockgen -source=./paystack.go -destination=./mocks/paystack_mock.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"paradasia/config"
	"paradasia/infras/otel"
	"paradasia/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	initializePath = "/transaction/initialize"

	// EventChargeSuccess is the only webhook event that may confirm a booking.
	EventChargeSuccess = "charge.success"
)

// Metadata carries everything needed to reconstruct a booking when the
// gateway calls back after payment. Field names follow the Paystack custom
// metadata sent by the booking form.
type Metadata struct {
	UserID          string `json:"user_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone,omitempty"`
	RoomType        string `json:"room_type"`
	RoomRateMinor   int64  `json:"room_price"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type InitializeRequest struct {
	Email       string   `json:"email"`
	AmountMinor int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Reference   string   `json:"reference"`
	CallbackURL string   `json:"callback_url,omitempty"`
	Metadata    Metadata `json:"metadata"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type initializeResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    InitializeData `json:"data"`
}

type Client interface {
	InitializeTransaction(ctx context.Context, req InitializeRequest) (InitializeData, error)
}

type clientImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	httpClient *http.Client
}

func New(cfg *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		cfg:  cfg,
		otel: otl,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.External.Paystack.TimeoutSec) * time.Second,
		},
	}
}

// InitializeTransaction asks the gateway for an authorization handle. No
// booking row exists at this point; the metadata travels with the gateway so
// the webhook can rebuild the booking once payment succeeds.
func (c *clientImpl) InitializeTransaction(ctx context.Context, req InitializeRequest) (res InitializeData, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paystack.InitializeTransaction")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.CallbackURL == "" {
		req.CallbackURL = c.cfg.External.Paystack.CallbackURL
	}

	body, err := json.Marshal(req)
	if err != nil {
		return res, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.External.Paystack.BaseURL+initializePath, bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("failed to build initialize request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.cfg.External.Paystack.SecretKey)
	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("reference", req.Reference).Msg("paystack initialize request failed")

		return res, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer httpRes.Body.Close()

	var payload initializeResponse
	if err = json.NewDecoder(httpRes.Body).Decode(&payload); err != nil {
		log.Error().Err(err).Str("reference", req.Reference).Msg("failed to decode paystack response")

		return res, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if !payload.Status {
		log.Error().Str("reference", req.Reference).Str("message", payload.Message).Msg("paystack rejected transaction initialization")

		return res, fmt.Errorf("gateway rejected initialization: %s", payload.Message)
	}

	scope.AddEvent("Transaction initialized with reference " + payload.Data.Reference)

	return payload.Data, nil
}

// VerifySignature checks the x-paystack-signature header: an HMAC-SHA512 of
// the raw body keyed with the secret key. The webhook payload must not be
// trusted before this passes.
func VerifySignature(body []byte, signature, secretKey string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)

	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
