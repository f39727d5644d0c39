package model

import (
	"fmt"
	"slices"

	"paradasia/shared/failure"
)

// BookingStatus is the reservation axis of a booking's lifecycle.
type BookingStatus string

// PaymentStatus is the payment axis, tracked independently of the reservation axis.
type PaymentStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"

	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Actor identifies who is driving a lifecycle transition.
type Actor string

const (
	ActorGuest  Actor = "guest"
	ActorAdmin  Actor = "admin"
	ActorSystem Actor = "system" // payment webhook identity
)

// Event is a lifecycle transition trigger.
type Event string

const (
	EventPaymentConfirmed Event = "payment_confirmed"
	EventCancel           Event = "cancel"
	EventComplete         Event = "complete"
	EventManualConfirm    Event = "manual_confirm"
	EventMarkRefunded     Event = "mark_refunded"
)

// State is the combined two-axis lifecycle state.
type State struct {
	Booking BookingStatus
	Payment PaymentStatus
}

// NewBookingState is the state every guest-created booking starts in.
func NewBookingState() State {
	return State{Booking: BookingPending, Payment: PaymentPending}
}

// PaidBookingState is the state a webhook-created booking is inserted in:
// the row never durably exists as unpaid on the gateway path.
func PaidBookingState() State {
	return State{Booking: BookingConfirmed, Payment: PaymentPaid}
}

type transitionRule struct {
	fromBooking []BookingStatus
	fromPayment []PaymentStatus // empty means any
	actors      []Actor
	apply       func(State) State
}

// transitions encodes the permitted lifecycle moves. cancelled and completed
// are terminal on the booking axis; nothing maps out of them except the
// refund reconciliation on the payment axis.
var transitions = map[Event]transitionRule{
	EventPaymentConfirmed: {
		fromBooking: []BookingStatus{BookingPending},
		fromPayment: []PaymentStatus{PaymentPending},
		actors:      []Actor{ActorGuest, ActorSystem},
		apply: func(State) State {
			return State{Booking: BookingConfirmed, Payment: PaymentPaid}
		},
	},
	EventCancel: {
		fromBooking: []BookingStatus{BookingPending, BookingConfirmed},
		actors:      []Actor{ActorGuest, ActorAdmin},
		apply: func(s State) State {
			return State{Booking: BookingCancelled, Payment: s.Payment}
		},
	},
	EventComplete: {
		fromBooking: []BookingStatus{BookingConfirmed},
		fromPayment: []PaymentStatus{PaymentPaid},
		actors:      []Actor{ActorAdmin},
		apply: func(s State) State {
			return State{Booking: BookingCompleted, Payment: s.Payment}
		},
	},
	EventManualConfirm: {
		fromBooking: []BookingStatus{BookingPending},
		actors:      []Actor{ActorAdmin},
		apply: func(s State) State {
			return State{Booking: BookingConfirmed, Payment: s.Payment}
		},
	},
	EventMarkRefunded: {
		fromBooking: []BookingStatus{BookingCancelled},
		fromPayment: []PaymentStatus{PaymentPaid},
		actors:      []Actor{ActorAdmin},
		apply: func(s State) State {
			return State{Booking: s.Booking, Payment: PaymentRefunded}
		},
	},
}

// BookingStatuses lists every value the booking axis can hold.
var BookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}

func ValidBookingStatus(status string) bool {
	return slices.Contains(BookingStatuses, BookingStatus(status))
}

// Terminal reports whether the booking axis can move again.
func (s State) Terminal() bool {
	return s.Booking == BookingCancelled || s.Booking == BookingCompleted
}

// Transition applies ev to the state on behalf of actor. It returns the next
// state, or a failure describing why the move is not permitted: Forbidden when
// the actor may never trigger ev, Conflict when a cancel hits an already
// terminal booking, InvalidState otherwise.
func (s State) Transition(ev Event, actor Actor) (State, error) {
	rule, ok := transitions[ev]
	if !ok {
		return s, failure.InvalidState(fmt.Sprintf("unknown booking event %q", ev)) //nolint:wrapcheck
	}

	if !slices.Contains(rule.actors, actor) {
		return s, failure.Forbidden(fmt.Sprintf("%s may not trigger %s", actor, ev)) //nolint:wrapcheck
	}

	if !slices.Contains(rule.fromBooking, s.Booking) {
		if ev == EventCancel && s.Terminal() {
			return s, failure.Conflict(fmt.Sprintf("booking is already %s", s.Booking)) //nolint:wrapcheck
		}

		return s, failure.InvalidState(fmt.Sprintf("cannot %s a booking that is %s", ev, s.Booking)) //nolint:wrapcheck
	}

	if len(rule.fromPayment) > 0 && !slices.Contains(rule.fromPayment, s.Payment) {
		return s, failure.InvalidState(fmt.Sprintf("cannot %s a booking whose payment is %s", ev, s.Payment)) //nolint:wrapcheck
	}

	return rule.apply(s), nil
}

// RefundOwed reports whether cancelling from this state leaves money to give
// back. Refund execution itself happens outside this system; the flag only
// drives the operations alert.
func (s State) RefundOwed() bool {
	return s.Payment == PaymentPaid
}
