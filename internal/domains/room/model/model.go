package model

import (
	"paradasia/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room type"

	FieldID        = "id"
	FieldCode      = "code"
	FieldName      = "name"
	FieldRateMinor = "rate_minor"
	FieldCurrency  = "currency"
	FieldMaxGuests = "max_guests"
	FieldActive    = "active"
)

const (
	CodePresidential = "presidential"
	CodeStandard     = "standard"
)

// RoomType is a catalog entry. Its rate is the current asking price only;
// bookings snapshot the rate at creation and never follow later changes.
type RoomType struct {
	ID        string `db:"id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	RateMinor int64  `db:"rate_minor"`
	Currency  string `db:"currency"`
	MaxGuests int    `db:"max_guests"`
	Active    bool   `db:"active"`
	model.Metadata
}
