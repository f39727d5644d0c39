package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"paradasia/config"
	"paradasia/infras/otel"
	"paradasia/infras/paystack"
	bookingModel "paradasia/internal/domains/booking/model"
	bookingDto "paradasia/internal/domains/booking/model/dto"
	bookingService "paradasia/internal/domains/booking/service"
	"paradasia/internal/domains/payment/model/dto"
	roomService "paradasia/internal/domains/room/service"
	"paradasia/shared/constant"
	"paradasia/shared/failure"
	gModel "paradasia/shared/model"
	"paradasia/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const referencePrefix = "PH-"

type Payment interface {
	Initialize(ctx context.Context, req bookingDto.CreateBookingRequest) (dto.InitializePaymentResponse, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type serviceImpl struct {
	gateway  paystack.Client
	bookings bookingService.Booking
	rooms    roomService.Room
	cfg      *config.Config
	otel     otel.Otel
}

func New(gateway paystack.Client, bookings bookingService.Booking, rooms roomService.Room, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		gateway:  gateway,
		bookings: bookings,
		rooms:    rooms,
		cfg:      cfg,
		otel:     otel,
	}
}

// Initialize validates the booking form, prices the stay from the current
// catalog and asks the gateway for a checkout handle. Nothing is persisted
// here: the form travels to the gateway as metadata and comes back through
// the webhook once the guest pays.
func (s *serviceImpl) Initialize(ctx context.Context, req bookingDto.CreateBookingRequest) (res dto.InitializePaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.Initialize")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.ValidationField("check_in", "invalid date") //nolint:wrapcheck
	}

	stay := bookingModel.ComputeStay(checkIn, checkOut, 0)
	if !stay.Valid() {
		return res, failure.ValidationField("check_out", "check-out must be after check-in") //nolint:wrapcheck
	}

	room, err := s.rooms.GetByCode(ctx, req.RoomType)
	if err != nil {
		return res, err
	}

	if req.Guests > room.MaxGuests {
		return res, failure.ValidationField("guests", fmt.Sprintf("the %s room sleeps at most %d guests", room.Code, room.MaxGuests)) //nolint:wrapcheck
	}

	stay = bookingModel.ComputeStay(checkIn, checkOut, room.RateMinor)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	data, err := s.gateway.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:       req.Email,
		AmountMinor: stay.TotalMinor,
		Currency:    s.cfg.Booking.Currency,
		Reference:   referencePrefix + uuid.NewString(),
		Metadata: paystack.Metadata{
			UserID:          userID,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Phone:           req.Phone,
			RoomType:        req.RoomType,
			RoomRateMinor:   room.RateMinor,
			CheckIn:         req.CheckIn,
			CheckOut:        req.CheckOut,
			Guests:          req.Guests,
			SpecialRequests: req.SpecialRequests,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize gateway transaction")

		return res, failure.ExternalService("payment gateway is unavailable") //nolint:wrapcheck
	}

	res.FromData(data)

	return res, nil
}

// HandleWebhook processes a gateway callback. The signature gate runs before
// anything else; after that every outcome except a broken payload or a
// storage error acknowledges the event, because the gateway retries anything
// it does not get a 2xx for.
func (s *serviceImpl) HandleWebhook(ctx context.Context, body []byte, signature string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.HandleWebhook")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !paystack.VerifySignature(body, signature, s.cfg.External.Paystack.SecretKey) {
		log.Warn().Msg("webhook signature verification failed")

		return failure.Unauthorized("invalid webhook signature") //nolint:wrapcheck
	}

	var event dto.WebhookEvent
	if err = json.Unmarshal(body, &event); err != nil {
		log.Error().Err(err).Msg("failed to parse webhook payload")

		return failure.BadRequestFromString("malformed webhook payload") //nolint:wrapcheck
	}

	if event.Event != paystack.EventChargeSuccess {
		log.Info().Str("event", event.Event).Msg("ignoring webhook event")

		return nil
	}

	if event.Data.Reference == constant.Empty {
		return failure.ValidationField("data.reference", "missing payment reference") //nolint:wrapcheck
	}

	// A booking created before payment gets flipped in place; the usual
	// gateway flow has no prior row and inserts one already paid.
	if _, err = s.bookings.ConfirmPayment(ctx, event.Data.Reference); err == nil {
		return nil
	} else if !failure.IsCode(err, http.StatusNotFound) {
		return err
	}

	booking, err := s.bookingFromWebhook(event.Data)
	if err != nil {
		return err
	}

	err = s.bookings.CreatePaidBooking(ctx, booking)
	if failure.IsCode(err, http.StatusConflict) {
		// Replayed delivery of an event already recorded.
		log.Info().Str("reference", event.Data.Reference).Msg("duplicate webhook delivery acknowledged")

		return nil
	}

	return err
}

// bookingFromWebhook reconstructs the booking the guest filled in before
// checkout. The gateway amount is authoritative for the total; a mismatch
// against the recomputed stay is logged, not rejected, since the money has
// already moved.
func (s *serviceImpl) bookingFromWebhook(data dto.WebhookData) (bookingModel.Booking, error) {
	meta := data.Metadata

	checkIn, err := time.Parse(constant.DateOnlyFormat, meta.CheckIn)
	if err != nil {
		return bookingModel.Booking{}, failure.ValidationField("data.metadata.check_in", "invalid date") //nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, meta.CheckOut)
	if err != nil {
		return bookingModel.Booking{}, failure.ValidationField("data.metadata.check_out", "invalid date") //nolint:wrapcheck
	}

	stay := bookingModel.ComputeStay(checkIn, checkOut, meta.RoomRateMinor)
	if !stay.Valid() {
		return bookingModel.Booking{}, failure.ValidationField("data.metadata.check_out", "check-out must be after check-in") //nolint:wrapcheck
	}

	if stay.TotalMinor != data.Amount {
		log.Warn().Str("reference", data.Reference).
			Int64("expected_minor", stay.TotalMinor).Int64("charged_minor", data.Amount).
			Msg("webhook amount differs from recomputed stay total")
	}

	state := bookingModel.PaidBookingState()
	booking := bookingModel.Booking{
		ID:               uuid.NewString(),
		UserID:           meta.UserID,
		Email:            data.Customer.Email,
		FirstName:        meta.FirstName,
		LastName:         meta.LastName,
		RoomType:         meta.RoomType,
		RoomRateMinor:    meta.RoomRateMinor,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           meta.Guests,
		Nights:           stay.Nights,
		TotalAmountMinor: data.Amount,
		BookingStatus:    string(state.Booking),
		PaymentStatus:    string(state.Payment),
		PaymentReference: data.Reference,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.RoleSystem,
			ModifiedBy: constant.RoleSystem,
		},
	}

	if meta.Phone != constant.Empty {
		booking.Phone = &meta.Phone
	}

	if meta.SpecialRequests != constant.Empty {
		booking.SpecialRequests = &meta.SpecialRequests
	}

	return booking, nil
}
