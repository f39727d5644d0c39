package model

import (
	"time"

	"paradasia/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldEmail            = "email"
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldPhone            = "phone"
	FieldRoomType         = "room_type"
	FieldRoomRateMinor    = "room_rate_minor"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldGuests           = "guests"
	FieldSpecialRequests  = "special_requests"
	FieldNights           = "nights"
	FieldTotalAmountMinor = "total_amount_minor"
	FieldBookingStatus    = "booking_status"
	FieldPaymentStatus    = "payment_status"
	FieldPaymentReference = "payment_reference"
)

// Booking is one guest's reservation contract. The nightly rate and the total
// are snapshotted in minor currency units at creation and never recomputed
// from the room catalog afterwards.
type Booking struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	Email            string    `db:"email"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Phone            *string   `db:"phone"`
	RoomType         string    `db:"room_type"`
	RoomRateMinor    int64     `db:"room_rate_minor"`
	CheckIn          time.Time `db:"check_in"`
	CheckOut         time.Time `db:"check_out"`
	Guests           int       `db:"guests"`
	SpecialRequests  *string   `db:"special_requests"`
	Nights           int       `db:"nights"`
	TotalAmountMinor int64     `db:"total_amount_minor"`
	BookingStatus    string    `db:"booking_status"`
	PaymentStatus    string    `db:"payment_status"`
	PaymentReference string    `db:"payment_reference"`
	model.Metadata
}

// State returns the two-axis lifecycle state of the booking.
func (b *Booking) State() State {
	return State{
		Booking: BookingStatus(b.BookingStatus),
		Payment: PaymentStatus(b.PaymentStatus),
	}
}

// GuestName returns the guest's display name for notifications.
func (b *Booking) GuestName() string {
	if b.LastName == "" {
		return b.FirstName
	}

	return b.FirstName + " " + b.LastName
}
