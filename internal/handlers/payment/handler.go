package payment

import (
	"io"
	"net/http"
	"paradasia/infras/otel"
	bookingDto "paradasia/internal/domains/booking/model/dto"
	"paradasia/internal/domains/payment/service"
	"paradasia/shared/constant"
	"paradasia/shared/failure"
	"paradasia/shared/validator"
	"paradasia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/initialize", handler.InitializePayment)
		routerGroup.Post("/webhook", handler.Webhook)
	})
}

// InitializePayment validates the booking form and asks the payment gateway
// for a checkout handle. No booking is stored until the gateway confirms.
// @Summary Initialize a payment
// @Description Validate the booking form and start a gateway checkout. The booking is created by the webhook after payment succeeds.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body bookingDto.CreateBookingRequest true "Booking Form"
// @Success 200 {object} response.Data[dto.InitializePaymentResponse] "Checkout handle"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/initialize [post]
// @Security BearerAuth
func (handler *Handler) InitializePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitializePayment")
	defer scope.End()

	req := bookingDto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Initialize(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initialize payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment initialized successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Webhook receives gateway callbacks. The raw body is needed verbatim for
// signature verification, so nothing decodes it before the service.
// @Summary Payment gateway webhook
// @Description Receive payment events from the gateway. Authenticated by HMAC signature, not a bearer token.
// @Tags Payment
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Event acknowledged"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/payments/webhook [post]
func (handler *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Webhook")
	defer scope.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook body")

		response.WithError(w, failure.BadRequestFromString("failed to read request body"))

		return
	}

	signature := r.Header.Get(constant.RequestHeaderPaystackSignature)

	if err := handler.service.HandleWebhook(ctx, body, signature); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to handle webhook")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Webhook processed successfully")

	response.WithMessage(w, http.StatusOK, "Event acknowledged")
}
