package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"paradasia/config"
	"paradasia/infras/kafka"
	kafkaMocks "paradasia/infras/kafka/mocks"
	"paradasia/infras/mailer"
	mailerMocks "paradasia/infras/mailer/mocks"
	"paradasia/infras/otel/mocks"
	bookingModel "paradasia/internal/domains/booking/model"
	inquiryModel "paradasia/internal/domains/inquiry/model"
	"paradasia/internal/domains/notification/service"
)

const opsTopic = "booking.ops"

func paidBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:               "booking-1",
		Email:            "ama@example.com",
		FirstName:        "Ama",
		LastName:         "Mensah",
		RoomType:         "standard",
		TotalAmountMinor: 900000,
		PaymentReference: "PH-ref",
	}
}

type notifierMocks struct {
	mailer *mailerMocks.MockMailer
	broker *kafkaMocks.MockClient
}

func newNotifier(t *testing.T) (service.Notifier, notifierMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := notifierMocks{
		mailer: mailerMocks.NewMockMailer(ctrl),
		broker: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.OpsTopic = opsTopic
	cfg.External.Resend.OpsEmail = "ops@example.com"

	svc := service.New(m.mailer, m.broker, cfg, mocks.NewOtel())

	return svc, m
}

func TestNotifier_BookingConfirmation(t *testing.T) {
	t.Run("mails the guest and alerts operations", func(t *testing.T) {
		svc, m := newNotifier(t)

		var sent mailer.Email

		m.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email mailer.Email) error {
				sent = email

				return nil
			})

		var published []kafka.Message

		m.broker.EXPECT().
			SendMessages(gomock.Any(), opsTopic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published = messages

				return nil
			})

		err := svc.BookingConfirmation(context.Background(), paidBooking())

		assert.NoError(t, err)
		assert.Equal(t, []string{"ama@example.com"}, sent.To)
		assert.Contains(t, sent.Subject, "Confirmed")
		require.Len(t, published, 1)
		assert.Equal(t, "booking-1", published[0].Key)

		alert, ok := published[0].Value.(service.OpsAlert)
		require.True(t, ok)
		assert.Equal(t, "booking.confirmed", alert.Event)
		assert.False(t, alert.RefundOwed)
	})

	t.Run("mail failure still alerts operations", func(t *testing.T) {
		svc, m := newNotifier(t)

		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.broker.EXPECT().SendMessages(gomock.Any(), opsTopic, gomock.Any()).Return(nil)

		err := svc.BookingConfirmation(context.Background(), paidBooking())

		assert.Error(t, err)
	})
}

func TestNotifier_BookingCancellation(t *testing.T) {
	t.Run("mails the guest and alerts operations with the refund flag", func(t *testing.T) {
		svc, m := newNotifier(t)

		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		var published []kafka.Message

		m.broker.EXPECT().
			SendMessages(gomock.Any(), opsTopic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published = messages

				return nil
			})

		err := svc.BookingCancellation(context.Background(), paidBooking(), true)

		assert.NoError(t, err)
		require.Len(t, published, 1)

		alert, ok := published[0].Value.(service.OpsAlert)
		require.True(t, ok)
		assert.Equal(t, "booking.cancelled", alert.Event)
		assert.True(t, alert.RefundOwed)
		assert.Equal(t, "PH-ref", alert.Reference)
		assert.Equal(t, int64(900000), alert.Amount)
	})

	t.Run("mail outage never drops the refund alert", func(t *testing.T) {
		svc, m := newNotifier(t)

		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(assert.AnError)

		var published []kafka.Message

		m.broker.EXPECT().
			SendMessages(gomock.Any(), opsTopic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published = messages

				return nil
			})

		err := svc.BookingCancellation(context.Background(), paidBooking(), true)

		assert.Error(t, err)
		require.Len(t, published, 1)

		alert, ok := published[0].Value.(service.OpsAlert)
		require.True(t, ok)
		assert.True(t, alert.RefundOwed)
	})
}

func TestNotifier_InquiryReceived(t *testing.T) {
	svc, m := newNotifier(t)

	var sent mailer.Email

	m.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email mailer.Email) error {
			sent = email

			return nil
		})

	inquiry := inquiryModel.GuestInquiry{
		ID:        "inquiry-1",
		FirstName: "Kofi",
		LastName:  "Boateng",
		Email:     "kofi@example.com",
		Subject:   "Late check-in",
		Message:   "Is a check-in after midnight possible?",
	}

	err := svc.InquiryReceived(context.Background(), inquiry)

	assert.NoError(t, err)
	assert.Equal(t, []string{"ops@example.com"}, sent.To)
	assert.Contains(t, sent.Subject, "Late check-in")
}
