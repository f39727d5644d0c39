package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"paradasia/config"
	"paradasia/infras/kafka"
	"paradasia/infras/mailer"
	"paradasia/infras/otel"
	bookingModel "paradasia/internal/domains/booking/model"
	inquiryModel "paradasia/internal/domains/inquiry/model"
	"paradasia/shared/constant"

	"github.com/rs/zerolog/log"
)

// OpsAlert is the payload published to the operations topic when a booking
// changes state in a way staff may need to act on.
type OpsAlert struct {
	Event      string `json:"event"`
	BookingID  string `json:"booking_id"`
	Reference  string `json:"payment_reference"`
	GuestName  string `json:"guest_name"`
	RoomType   string `json:"room_type"`
	Amount     int64  `json:"amount_minor"`
	RefundOwed bool   `json:"refund_owed"`
}

const (
	opsEventBookingConfirmed = "booking.confirmed"
	opsEventBookingCancelled = "booking.cancelled"
)

// Notifier fans booking and inquiry events out to guests (email) and staff
// (the operations topic). Every method is best effort: callers fire these in
// the background and the originating state change never waits on delivery.
type Notifier interface {
	BookingConfirmation(ctx context.Context, booking bookingModel.Booking) error
	BookingCancellation(ctx context.Context, booking bookingModel.Booking, refundOwed bool) error
	InquiryReceived(ctx context.Context, inquiry inquiryModel.GuestInquiry) error
}

type serviceImpl struct {
	mailer mailer.Mailer
	broker kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(mailer mailer.Mailer, broker kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		mailer: mailer,
		broker: broker,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) BookingConfirmation(ctx context.Context, booking bookingModel.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notifier.BookingConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The staff alert is independent of guest email delivery; publish it
	// first so a mail outage never hides a state change from operations.
	s.publishOpsAlert(ctx, opsEventBookingConfirmed, booking, false)

	email := mailer.Email{
		To:      []string{booking.Email},
		Subject: "Booking Confirmed - Paradasia Hideway",
		HTML:    confirmationHTML(booking),
	}

	if err = s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

func (s *serviceImpl) BookingCancellation(ctx context.Context, booking bookingModel.Booking, refundOwed bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notifier.BookingCancellation")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.publishOpsAlert(ctx, opsEventBookingCancelled, booking, refundOwed)

	email := mailer.Email{
		To:      []string{booking.Email},
		Subject: "Booking Cancelled - Paradasia Hideway",
		HTML:    cancellationHTML(booking, refundOwed),
	}

	if err = s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send cancellation email: %w", err)
	}

	return nil
}

func (s *serviceImpl) InquiryReceived(ctx context.Context, inquiry inquiryModel.GuestInquiry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notifier.InquiryReceived")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := mailer.Email{
		To:      []string{s.cfg.External.Resend.OpsEmail},
		Subject: fmt.Sprintf("New Inquiry: %s", inquiry.Subject),
		HTML:    inquiryHTML(inquiry),
	}

	if err = s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send inquiry email: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishOpsAlert(ctx context.Context, event string, booking bookingModel.Booking, refundOwed bool) {
	alert := OpsAlert{
		Event:      event,
		BookingID:  booking.ID,
		Reference:  booking.PaymentReference,
		GuestName:  booking.GuestName(),
		RoomType:   booking.RoomType,
		Amount:     booking.TotalAmountMinor,
		RefundOwed: refundOwed,
	}

	// Delivery is async on the writer side already; an error here only means
	// the alert was never handed off.
	if err := s.broker.SendMessages(ctx, s.cfg.Kafka.OpsTopic, kafka.Message{Key: booking.ID, Value: alert}); err != nil {
		log.Error().Err(err).Str("event", event).Str("booking_id", booking.ID).Msg("failed to publish ops alert")
	}
}
