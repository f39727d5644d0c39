package model

import (
	"slices"

	"paradasia/shared/model"
)

const (
	TableName  = "guest_inquiries"
	EntityName = "guest_inquiry"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldSubject   = "subject"
	FieldMessage   = "message"
	FieldStatus    = "status"
)

const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Statuses an inquiry can be moved to. Unlike bookings, inquiries move freely
// between all three.
var Statuses = []string{StatusNew, StatusInProgress, StatusResolved}

func ValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}

// GuestInquiry is a contact-form submission. No account is required to send
// one, so there is no user reference.
type GuestInquiry struct {
	ID        string  `db:"id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     string  `db:"email"`
	Phone     *string `db:"phone"`
	Subject   string  `db:"subject"`
	Message   string  `db:"message"`
	Status    string  `db:"status"`
	model.Metadata
}
