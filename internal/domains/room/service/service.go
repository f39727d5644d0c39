package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"paradasia/config"
	"paradasia/infras/otel"
	"paradasia/internal/domains/room/model"
	"paradasia/internal/domains/room/model/dto"
	"paradasia/internal/domains/room/repository"
	"paradasia/shared"
	"paradasia/shared/cache"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	"paradasia/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType     = "room_type:get"
	cacheGetAllRoomTypes = "room_type:gets"
)

type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomTypesResponse, error)
	GetByCode(ctx context.Context, code string) (model.RoomType, error)
	UpdateRate(ctx context.Context, req dto.UpdateRateRequest, code string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllRoomTypes, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllRoomTypes, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

// GetByCode resolves a catalog entry for rate snapshotting at booking time.
func (s *serviceImpl) GetByCode(ctx context.Context, code string) (res model.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, code)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	room, err := s.repo.Get(ctx, codeFilter(code))
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room type not found") //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, room, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return room, nil
}

func (s *serviceImpl) UpdateRate(ctx context.Context, req dto.UpdateRateRequest, code string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.UpdateRate")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := codeFilter(code)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room type not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room rate")

		return fmt.Errorf("failed to update room rate: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, code)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type from cache")
		}

		if err := s.cache.Delete(c, cacheGetAllRoomTypes); err != nil {
			log.Error().Err(err).Msg("failed to delete room types from cache")
		}
	}()

	return nil
}

func codeFilter(code string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    code,
				Table:    model.TableName,
			},
		},
	}
}

func activeFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}
}
