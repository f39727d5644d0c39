package model_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"paradasia/internal/domains/booking/model"
	"paradasia/shared/failure"
)

func TestState_Transition(t *testing.T) {
	tests := []struct {
		name     string
		state    model.State
		event    model.Event
		actor    model.Actor
		want     model.State
		wantCode int
	}{
		{
			name:  "payment confirmation moves both axes",
			state: model.NewBookingState(),
			event: model.EventPaymentConfirmed,
			actor: model.ActorSystem,
			want:  model.State{Booking: model.BookingConfirmed, Payment: model.PaymentPaid},
		},
		{
			name:     "admin may not trigger payment confirmation",
			state:    model.NewBookingState(),
			event:    model.EventPaymentConfirmed,
			actor:    model.ActorAdmin,
			wantCode: http.StatusForbidden,
		},
		{
			name:  "guest cancels a pending booking",
			state: model.NewBookingState(),
			event: model.EventCancel,
			actor: model.ActorGuest,
			want:  model.State{Booking: model.BookingCancelled, Payment: model.PaymentPending},
		},
		{
			name:  "cancelling a paid booking keeps the payment axis",
			state: model.PaidBookingState(),
			event: model.EventCancel,
			actor: model.ActorGuest,
			want:  model.State{Booking: model.BookingCancelled, Payment: model.PaymentPaid},
		},
		{
			name:     "cancelling twice conflicts",
			state:    model.State{Booking: model.BookingCancelled, Payment: model.PaymentPaid},
			event:    model.EventCancel,
			actor:    model.ActorGuest,
			wantCode: http.StatusConflict,
		},
		{
			name:     "cancelling a completed stay conflicts",
			state:    model.State{Booking: model.BookingCompleted, Payment: model.PaymentPaid},
			event:    model.EventCancel,
			actor:    model.ActorAdmin,
			wantCode: http.StatusConflict,
		},
		{
			name:     "system may not cancel",
			state:    model.NewBookingState(),
			event:    model.EventCancel,
			actor:    model.ActorSystem,
			wantCode: http.StatusForbidden,
		},
		{
			name:  "admin completes a paid stay",
			state: model.PaidBookingState(),
			event: model.EventComplete,
			actor: model.ActorAdmin,
			want:  model.State{Booking: model.BookingCompleted, Payment: model.PaymentPaid},
		},
		{
			name:     "guest may not complete a stay",
			state:    model.PaidBookingState(),
			event:    model.EventComplete,
			actor:    model.ActorGuest,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "completing an unpaid booking is invalid",
			state:    model.State{Booking: model.BookingConfirmed, Payment: model.PaymentPending},
			event:    model.EventComplete,
			actor:    model.ActorAdmin,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:  "manual confirmation leaves payment pending",
			state: model.NewBookingState(),
			event: model.EventManualConfirm,
			actor: model.ActorAdmin,
			want:  model.State{Booking: model.BookingConfirmed, Payment: model.PaymentPending},
		},
		{
			name:     "manual confirmation of a confirmed booking is invalid",
			state:    model.PaidBookingState(),
			event:    model.EventManualConfirm,
			actor:    model.ActorAdmin,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:  "refund reconciliation on a cancelled paid booking",
			state: model.State{Booking: model.BookingCancelled, Payment: model.PaymentPaid},
			event: model.EventMarkRefunded,
			actor: model.ActorAdmin,
			want:  model.State{Booking: model.BookingCancelled, Payment: model.PaymentRefunded},
		},
		{
			name:     "refund on an unpaid cancellation is invalid",
			state:    model.State{Booking: model.BookingCancelled, Payment: model.PaymentPending},
			event:    model.EventMarkRefunded,
			actor:    model.ActorAdmin,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "unknown event is invalid",
			state:    model.NewBookingState(),
			event:    model.Event("teleport"),
			actor:    model.ActorAdmin,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := tt.state.Transition(tt.event, tt.actor)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.True(t, failure.IsCode(err, tt.wantCode), "unexpected failure code: %v", err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestState_Terminal(t *testing.T) {
	assert.False(t, model.NewBookingState().Terminal())
	assert.False(t, model.PaidBookingState().Terminal())
	assert.True(t, model.State{Booking: model.BookingCancelled}.Terminal())
	assert.True(t, model.State{Booking: model.BookingCompleted}.Terminal())
}

func TestState_RefundOwed(t *testing.T) {
	assert.True(t, model.PaidBookingState().RefundOwed())
	assert.False(t, model.NewBookingState().RefundOwed())
	assert.False(t, model.State{Booking: model.BookingCancelled, Payment: model.PaymentRefunded}.RefundOwed())
}

func TestValidBookingStatus(t *testing.T) {
	for _, status := range model.BookingStatuses {
		assert.True(t, model.ValidBookingStatus(string(status)))
	}

	assert.False(t, model.ValidBookingStatus("parked"))
}
