package dto

import (
	"paradasia/internal/domains/user/model"
	"paradasia/shared"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	gModel "paradasia/shared/model"
	"paradasia/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email     string  `json:"email"      validate:"required,email,max=255"`
	Password  string  `json:"password"   validate:"required,min=8"`
	Level     string  `json:"level"      validate:"omitempty,oneof=admin user"`
	FirstName *string `json:"first_name" validate:"omitempty,max=50,person_name"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=50,person_name"`
	Phone     *string `json:"phone"      validate:"omitempty,max=20,phone"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RoleUser
	}

	return model.User{
		ID:        uuid.NewString(),
		Email:     r.Email,
		Password:  hashedPassword,
		Level:     level,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Level     string  `json:"level"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Level     *string `db:"level"      json:"level,omitempty"      validate:"omitempty,oneof=admin user"`
	FirstName *string `db:"first_name" json:"first_name,omitempty" validate:"omitempty,max=50,person_name"`
	LastName  *string `db:"last_name"  json:"last_name,omitempty"  validate:"omitempty,max=50,person_name"`
	Phone     *string `db:"phone"      json:"phone,omitempty"      validate:"omitempty,max=20,phone"`
	Active    *bool   `db:"active"     json:"active,omitempty"`
}

type UpdateProfileRequest struct {
	FirstName *string `db:"first_name" json:"first_name,omitempty" validate:"omitempty,max=50,person_name"`
	LastName  *string `db:"last_name"  json:"last_name,omitempty"  validate:"omitempty,max=50,person_name"`
	Phone     *string `db:"phone"      json:"phone,omitempty"      validate:"omitempty,max=20,phone"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
