package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"

	"paradasia/infras/otel"
	"paradasia/infras/postgres"
	"paradasia/internal/domains/inquiry/model"
	gDto "paradasia/shared/dto"
	gRepo "paradasia/shared/repository"
)

type Inquiry interface {
	Insert(ctx context.Context, model model.GuestInquiry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GuestInquiry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuestInquiry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.GuestInquiry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inquiry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GuestInquiry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
