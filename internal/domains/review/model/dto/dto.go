package dto

import (
	"strings"

	"paradasia/internal/domains/review/model"
	"paradasia/shared"
	gDto "paradasia/shared/dto"
	gModel "paradasia/shared/model"
	"paradasia/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Rating    int    `json:"rating"     validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"    validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) Normalize() {
	c.BookingID = strings.TrimSpace(c.BookingID)
	c.Comment = strings.TrimSpace(c.Comment)
}

func (c *CreateReviewRequest) ToModel(userID string) model.Review {
	review := model.Review{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		UserID:    userID,
		Rating:    c.Rating,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if c.Comment != "" {
		review.Comment = &c.Comment
	}

	return review
}

type ReviewResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.UserID = model.UserID
	r.Rating = model.Rating
	r.Metadata.FromModel(model.Metadata)

	if model.Comment != nil {
		r.Comment = *model.Comment
	}
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
