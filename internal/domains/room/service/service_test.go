package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"paradasia/config"
	"paradasia/infras/otel/mocks"
	"paradasia/internal/domains/room/model"
	"paradasia/internal/domains/room/model/dto"
	repoMocks "paradasia/internal/domains/room/repository/mocks"
	"paradasia/internal/domains/room/service"
	cacheMocks "paradasia/shared/cache/mocks"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	"paradasia/shared/failure"
)

const asyncSettle = 20 * time.Millisecond

var catalog = []model.RoomType{
	{ID: "room-presidential", Code: model.CodePresidential, Name: "Presidential Suite", RateMinor: 500000, Currency: "GHS", MaxGuests: 4, Active: true},
	{ID: "room-standard", Code: model.CodeStandard, Name: "Standard Room", RateMinor: 300000, Currency: "GHS", MaxGuests: 2, Active: true},
}

type roomMocks struct {
	repo  *repoMocks.MockRoom
	cache *cacheMocks.MockRedisCache
}

func newRoomService(t *testing.T) (service.Room, roomMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := roomMocks{
		repo:  repoMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache writes and invalidation run on detached goroutines.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("lists the active catalog with rates in both units", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).Return(catalog, nil)

		res, err := svc.GetAll(context.Background())
		time.Sleep(asyncSettle)

		assert.NoError(t, err)
		assert.Len(t, res.RoomTypes, 2)
		assert.Equal(t, int64(5000), res.RoomTypes[0].Rate)
		assert.Equal(t, int64(500000), res.RoomTypes[0].RateMinor)
		assert.Equal(t, int64(3000), res.RoomTypes[1].Rate)
	})
}

func TestRoomService_GetByCode(t *testing.T) {
	t.Run("resolves a catalog entry", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(catalog[1], nil)

		room, err := svc.GetByCode(context.Background(), model.CodeStandard)
		time.Sleep(asyncSettle)

		assert.NoError(t, err)
		assert.Equal(t, int64(300000), room.RateMinor)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := svc.GetByCode(context.Background(), "penthouse")

		assert.True(t, failure.IsCode(err, http.StatusNotFound), "unexpected error: %v", err)
	})
}

func TestRoomService_UpdateRate(t *testing.T) {
	t.Run("updates the asking rate", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		var fields map[string]any

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated map[string]any, _ gDto.FilterGroup) error {
				fields = updated

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

		err := svc.UpdateRate(ctx, dto.UpdateRateRequest{RateMinor: 350000}, model.CodeStandard)
		time.Sleep(asyncSettle)

		assert.NoError(t, err)
		assert.Equal(t, int64(350000), fields["rate_minor"])
		assert.Equal(t, "admin-1", fields["modified_by"])
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.UpdateRate(context.Background(), dto.UpdateRateRequest{RateMinor: 350000}, "penthouse")

		assert.True(t, failure.IsCode(err, http.StatusNotFound), "unexpected error: %v", err)
	})
}
