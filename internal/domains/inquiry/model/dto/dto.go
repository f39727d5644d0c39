package dto

import (
	"strings"

	"paradasia/internal/domains/inquiry/model"
	"paradasia/shared"
	gDto "paradasia/shared/dto"
	gModel "paradasia/shared/model"
	"paradasia/shared/timezone"

	"github.com/google/uuid"
)

// CreateInquiryRequest is the public contact form. Only first name, email and
// message are mandatory; last name, phone and subject may be left blank.
type CreateInquiryRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50,person_name"`
	LastName  string `json:"last_name"  validate:"omitempty,max=50,person_name"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"omitempty,max=20,phone"`
	Subject   string `json:"subject"    validate:"omitempty,max=100"`
	Message   string `json:"message"    validate:"required,min=10,max=1000"`
}

func (c *CreateInquiryRequest) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
}

func (c *CreateInquiryRequest) ToModel(actor string) model.GuestInquiry {
	inquiry := model.GuestInquiry{
		ID:        uuid.NewString(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    model.StatusNew,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	if c.Phone != "" {
		inquiry.Phone = &c.Phone
	}

	return inquiry
}

type UpdateInquiryStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=new in_progress resolved"`
}

func (u *UpdateInquiryStatusRequest) Normalize() {
	u.Status = strings.TrimSpace(u.Status)
}

type InquiryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.GuestInquiry) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)

	if model.Phone != nil {
		r.Phone = *model.Phone
	}
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.GuestInquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
