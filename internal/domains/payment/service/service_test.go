package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"paradasia/config"
	"paradasia/infras/otel/mocks"
	"paradasia/infras/paystack"
	paystackMocks "paradasia/infras/paystack/mocks"
	bookingModel "paradasia/internal/domains/booking/model"
	bookingDto "paradasia/internal/domains/booking/model/dto"
	bookingMocks "paradasia/internal/domains/booking/service/mocks"
	"paradasia/internal/domains/payment/model/dto"
	"paradasia/internal/domains/payment/service"
	roomModel "paradasia/internal/domains/room/model"
	roomMocks "paradasia/internal/domains/room/service/mocks"
	"paradasia/shared/constant"
	"paradasia/shared/failure"
)

const webhookSecret = "sk_test_secret"

var standardRoom = roomModel.RoomType{
	ID:        "room-standard",
	Code:      "standard",
	Name:      "Standard Room",
	RateMinor: 300000,
	Currency:  "GHS",
	MaxGuests: 2,
	Active:    true,
}

func bookingForm() bookingDto.CreateBookingRequest {
	return bookingDto.CreateBookingRequest{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		RoomType:  "standard",
		CheckIn:   "2025-03-01",
		CheckOut:  "2025-03-04",
		Guests:    2,
	}
}

func sign(body []byte) string {
	mac := hmac.New(sha512.New, []byte(webhookSecret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func chargeSuccessEvent() dto.WebhookEvent {
	return dto.WebhookEvent{
		Event: paystack.EventChargeSuccess,
		Data: dto.WebhookData{
			Reference: "PH-ref",
			Amount:    900000,
			Currency:  "GHS",
			Customer:  dto.WebhookCustomer{Email: "ama@example.com"},
			Metadata: paystack.Metadata{
				UserID:        "user-1",
				FirstName:     "Ama",
				LastName:      "Mensah",
				RoomType:      "standard",
				RoomRateMinor: 300000,
				CheckIn:       "2025-03-01",
				CheckOut:      "2025-03-04",
				Guests:        2,
			},
		},
	}
}

type paymentMocks struct {
	gateway  *paystackMocks.MockClient
	bookings *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
}

func newPaymentService(t *testing.T) (service.Payment, paymentMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := paymentMocks{
		gateway:  paystackMocks.NewMockClient(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.Currency = "GHS"
	cfg.External.Paystack.SecretKey = webhookSecret

	svc := service.New(m.gateway, m.bookings, m.rooms, cfg, mocks.NewOtel())

	return svc, m
}

func TestPaymentService_Initialize(t *testing.T) {
	t.Run("prices the stay and hands metadata to the gateway", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.rooms.EXPECT().GetByCode(gomock.Any(), "standard").Return(standardRoom, nil)

		var sent paystack.InitializeRequest

		m.gateway.EXPECT().
			InitializeTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req paystack.InitializeRequest) (paystack.InitializeData, error) {
				sent = req

				return paystack.InitializeData{
					AuthorizationURL: "https://checkout.paystack.com/abc",
					AccessCode:       "abc",
					Reference:        req.Reference,
				}, nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

		res, err := svc.Initialize(ctx, bookingForm())

		assert.NoError(t, err)
		assert.Equal(t, int64(900000), sent.AmountMinor)
		assert.Equal(t, "GHS", sent.Currency)
		assert.Contains(t, sent.Reference, "PH-")
		assert.Equal(t, "user-1", sent.Metadata.UserID)
		assert.Equal(t, int64(300000), sent.Metadata.RoomRateMinor)
		assert.Equal(t, "https://checkout.paystack.com/abc", res.AuthorizationURL)
		assert.Equal(t, sent.Reference, res.Reference)
	})

	t.Run("gateway failure surfaces as bad gateway", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.rooms.EXPECT().GetByCode(gomock.Any(), "standard").Return(standardRoom, nil)
		m.gateway.EXPECT().
			InitializeTransaction(gomock.Any(), gomock.Any()).
			Return(paystack.InitializeData{}, assert.AnError)

		_, err := svc.Initialize(context.Background(), bookingForm())

		assert.True(t, failure.IsCode(err, http.StatusBadGateway), "unexpected error: %v", err)
	})

	t.Run("zero-night stay never reaches the gateway", func(t *testing.T) {
		svc, _ := newPaymentService(t)

		form := bookingForm()
		form.CheckOut = form.CheckIn

		_, err := svc.Initialize(context.Background(), form)

		assert.True(t, failure.IsCode(err, http.StatusBadRequest), "unexpected error: %v", err)
	})
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	t.Run("rejects a bad signature", func(t *testing.T) {
		svc, _ := newPaymentService(t)

		body, _ := json.Marshal(chargeSuccessEvent())

		err := svc.HandleWebhook(context.Background(), body, "not-the-signature")

		assert.True(t, failure.IsCode(err, http.StatusUnauthorized), "unexpected error: %v", err)
	})

	t.Run("rejects a malformed payload", func(t *testing.T) {
		svc, _ := newPaymentService(t)

		body := []byte("{not json")

		err := svc.HandleWebhook(context.Background(), body, sign(body))

		assert.True(t, failure.IsCode(err, http.StatusBadRequest), "unexpected error: %v", err)
	})

	t.Run("acknowledges events it does not handle", func(t *testing.T) {
		svc, _ := newPaymentService(t)

		event := chargeSuccessEvent()
		event.Event = "transfer.success"
		body, _ := json.Marshal(event)

		err := svc.HandleWebhook(context.Background(), body, sign(body))

		assert.NoError(t, err)
	})

	t.Run("rejects a charge without a reference", func(t *testing.T) {
		svc, _ := newPaymentService(t)

		event := chargeSuccessEvent()
		event.Data.Reference = ""
		body, _ := json.Marshal(event)

		err := svc.HandleWebhook(context.Background(), body, sign(body))

		assert.True(t, failure.IsCode(err, http.StatusBadRequest), "unexpected error: %v", err)
	})

	t.Run("confirms a pre-created pending booking", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.bookings.EXPECT().
			ConfirmPayment(gomock.Any(), "PH-ref").
			Return(bookingModel.Booking{ID: "booking-1"}, nil)

		body, _ := json.Marshal(chargeSuccessEvent())

		err := svc.HandleWebhook(context.Background(), body, sign(body))

		assert.NoError(t, err)
	})

	t.Run("materializes a booking from metadata when none exists", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.bookings.EXPECT().
			ConfirmPayment(gomock.Any(), "PH-ref").
			Return(bookingModel.Booking{}, failure.NotFound("no pending booking for payment reference"))

		var created bookingModel.Booking

		m.bookings.EXPECT().
			CreatePaidBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking bookingModel.Booking) error {
				created = booking

				return nil
			})

		body, _ := json.Marshal(chargeSuccessEvent())

		err := svc.HandleWebhook(context.Background(), body, sign(body))

		assert.NoError(t, err)
		assert.Equal(t, "user-1", created.UserID)
		assert.Equal(t, "PH-ref", created.PaymentReference)
		assert.Equal(t, 3, created.Nights)
		assert.Equal(t, int64(900000), created.TotalAmountMinor)
		assert.Equal(t, string(bookingModel.BookingConfirmed), created.BookingStatus)
		assert.Equal(t, string(bookingModel.PaymentPaid), created.PaymentStatus)
		assert.Equal(t, constant.RoleSystem, created.CreatedBy)
	})

	t.Run("acknowledges a replayed delivery", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.bookings.EXPECT().
			ConfirmPayment(gomock.Any(), "PH-ref").
			Return(bookingModel.Booking{}, failure.NotFound("no pending booking for payment reference"))
		m.bookings.EXPECT().
			CreatePaidBooking(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("payment reference already recorded"))

		body, _ := json.Marshal(chargeSuccessEvent())

		err := svc.HandleWebhook(context.Background(), body, sign(body))

		assert.NoError(t, err)
	})

	t.Run("broken metadata dates are rejected", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.bookings.EXPECT().
			ConfirmPayment(gomock.Any(), "PH-ref").
			Return(bookingModel.Booking{}, failure.NotFound("no pending booking for payment reference"))

		event := chargeSuccessEvent()
		event.Data.Metadata.CheckIn = "March 1st"
		body, _ := json.Marshal(event)

		err := svc.HandleWebhook(context.Background(), body, sign(body))

		assert.True(t, failure.IsCode(err, http.StatusBadRequest), "unexpected error: %v", err)
	})
}
