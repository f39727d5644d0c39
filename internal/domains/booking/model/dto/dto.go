package dto

import (
	"strings"
	"time"

	"paradasia/internal/domains/booking/model"
	"paradasia/shared"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	gModel "paradasia/shared/model"
	"paradasia/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest is the booking form. Trimming happens in Normalize
// before any length or pattern rule runs; empty optional fields are absent,
// not pattern violations.
type CreateBookingRequest struct {
	FirstName       string `json:"first_name"       validate:"required,max=50,person_name"`
	LastName        string `json:"last_name"        validate:"required,max=50,person_name"`
	Email           string `json:"email"            validate:"required,email,max=255"`
	Phone           string `json:"phone"            validate:"omitempty,max=20,phone"`
	RoomType        string `json:"room_type"        validate:"required,oneof=presidential standard"`
	CheckIn         string `json:"check_in"         validate:"required,dateonly"`
	CheckOut        string `json:"check_out"        validate:"required,dateonly"`
	Guests          int    `json:"guests"           validate:"required,gte=1,lte=10"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.RoomType = strings.TrimSpace(c.RoomType)
	c.CheckIn = strings.TrimSpace(c.CheckIn)
	c.CheckOut = strings.TrimSpace(c.CheckOut)
	c.SpecialRequests = strings.TrimSpace(c.SpecialRequests)
}

// Dates parses the stay window. Validation has already checked the format.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

// ToModel builds the booking row. The rate and total are snapshots taken now;
// catalog changes after this point never touch the booking.
func (c *CreateBookingRequest) ToModel(userID string, rateMinor int64, stay model.Stay, state model.State, reference string) model.Booking {
	checkIn, checkOut, _ := c.Dates()

	booking := model.Booking{
		ID:               uuid.NewString(),
		UserID:           userID,
		Email:            c.Email,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		RoomType:         c.RoomType,
		RoomRateMinor:    rateMinor,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           c.Guests,
		Nights:           stay.Nights,
		TotalAmountMinor: stay.TotalMinor,
		BookingStatus:    string(state.Booking),
		PaymentStatus:    string(state.Payment),
		PaymentReference: reference,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if c.Phone != "" {
		booking.Phone = &c.Phone
	}

	if c.SpecialRequests != "" {
		booking.SpecialRequests = &c.SpecialRequests
	}

	return booking
}

// DemoBookingRequest is the direct confirmation path for controlled
// environments. The reference is optional; the server generates one when
// absent.
type DemoBookingRequest struct {
	CreateBookingRequest
	PaymentReference string `json:"payment_reference" validate:"omitempty,max=100"`
}

func (d *DemoBookingRequest) Normalize() {
	d.CreateBookingRequest.Normalize()
	d.PaymentReference = strings.TrimSpace(d.PaymentReference)
}

type BookingResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Phone            string `json:"phone,omitempty"`
	RoomType         string `json:"room_type"`
	NightlyRate      int64  `json:"nightly_rate"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Guests           int    `json:"guests"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	Nights           int    `json:"nights"`
	TotalAmount      int64  `json:"total_amount"`
	BookingStatus    string `json:"booking_status"`
	PaymentStatus    string `json:"payment_status"`
	PaymentReference string `json:"payment_reference"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.RoomType = model.RoomType
	r.NightlyRate = model.RoomRateMinor / constant.MinorUnitsPerCur
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.Nights = model.Nights
	r.TotalAmount = model.TotalAmountMinor / constant.MinorUnitsPerCur
	r.BookingStatus = model.BookingStatus
	r.PaymentStatus = model.PaymentStatus
	r.PaymentReference = model.PaymentReference
	r.Metadata.FromModel(model.Metadata)

	if model.Phone != nil {
		r.Phone = *model.Phone
	}

	if model.SpecialRequests != nil {
		r.SpecialRequests = *model.SpecialRequests
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// StatsResponse backs the admin dashboard cards.
type StatsResponse struct {
	TotalBookings     int   `json:"total_bookings"`
	PendingBookings   int   `json:"pending_bookings"`
	ConfirmedBookings int   `json:"confirmed_bookings"`
	CancelledBookings int   `json:"cancelled_bookings"`
	CompletedBookings int   `json:"completed_bookings"`
	Revenue           int64 `json:"revenue"`
	RevenueMinor      int64 `json:"revenue_minor"`
}
