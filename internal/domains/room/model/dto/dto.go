package dto

import (
	"paradasia/internal/domains/room/model"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
)

type UpdateRateRequest struct {
	RateMinor int64 `db:"rate_minor" json:"rate_minor" validate:"required,gte=1"`
}

type RoomTypeResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Rate      int64  `json:"rate"`
	RateMinor int64  `json:"rate_minor"`
	Currency  string `json:"currency"`
	MaxGuests int    `json:"max_guests"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Code = model.Code
	r.Name = model.Name
	r.Rate = model.RateMinor / constant.MinorUnitsPerCur
	r.RateMinor = model.RateMinor
	r.Currency = model.Currency
	r.MaxGuests = model.MaxGuests
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType) {
	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
