package model

import (
	"paradasia/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldUserID    = "user_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

// Review is a guest's verdict on a completed stay. One review per booking,
// enforced both here and by a unique index on booking_id.
type Review struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	UserID    string  `db:"user_id"`
	Rating    int     `db:"rating"`
	Comment   *string `db:"comment"`
	model.Metadata
}
