package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"paradasia/config"
	"paradasia/infras/otel/mocks"
	bookingModel "paradasia/internal/domains/booking/model"
	bookingDto "paradasia/internal/domains/booking/model/dto"
	bookingMocks "paradasia/internal/domains/booking/service/mocks"
	"paradasia/internal/domains/review/model"
	"paradasia/internal/domains/review/model/dto"
	repoMocks "paradasia/internal/domains/review/repository/mocks"
	"paradasia/internal/domains/review/service"
	cacheMocks "paradasia/shared/cache/mocks"
	"paradasia/shared/constant"
	"paradasia/shared/failure"
	gModel "paradasia/shared/model"
)

const asyncSettle = 20 * time.Millisecond

func guestContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func adminContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func completedBooking(id string) bookingDto.BookingResponse {
	return bookingDto.BookingResponse{
		ID:            id,
		BookingStatus: string(bookingModel.BookingCompleted),
	}
}

func reviewForm(bookingID string) dto.CreateReviewRequest {
	return dto.CreateReviewRequest{
		BookingID: bookingID,
		Rating:    4,
		Comment:   "Lovely stay, quiet room.",
	}
}

type reviewMocks struct {
	repo     *repoMocks.MockReview
	bookings *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
}

func newReviewService(t *testing.T) (service.Review, reviewMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := reviewMocks{
		repo:     repoMocks.NewMockReview(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache writes and invalidation run on detached goroutines.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(m.repo, m.bookings, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestReviewService_Create(t *testing.T) {
	t.Run("records a review for a completed stay", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.bookings.EXPECT().GetByID(gomock.Any(), "booking-1").Return(completedBooking("booking-1"), nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		var inserted model.Review

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review model.Review) error {
				inserted = review

				return nil
			})

		res, err := svc.Create(guestContext("user-1"), reviewForm("booking-1"))
		time.Sleep(asyncSettle)

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", inserted.BookingID)
		assert.Equal(t, "user-1", inserted.UserID)
		assert.Equal(t, 4, inserted.Rating)
		assert.Equal(t, "user-1", inserted.CreatedBy)
		assert.Equal(t, inserted.ID, res.ID)
		assert.Equal(t, "Lovely stay, quiet room.", res.Comment)
	})

	t.Run("requires a signed-in guest", func(t *testing.T) {
		svc, _ := newReviewService(t)

		_, err := svc.Create(context.Background(), reviewForm("booking-1"))

		assert.True(t, failure.IsCode(err, http.StatusUnauthorized), "unexpected error: %v", err)
	})

	t.Run("booking lookup failures pass through", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.bookings.EXPECT().
			GetByID(gomock.Any(), "booking-1").
			Return(bookingDto.BookingResponse{}, failure.NotFound("booking not found"))

		_, err := svc.Create(guestContext("user-1"), reviewForm("booking-1"))

		assert.True(t, failure.IsCode(err, http.StatusNotFound), "unexpected error: %v", err)
	})

	t.Run("only completed stays can be reviewed", func(t *testing.T) {
		svc, m := newReviewService(t)

		booking := completedBooking("booking-1")
		booking.BookingStatus = string(bookingModel.BookingConfirmed)
		m.bookings.EXPECT().GetByID(gomock.Any(), "booking-1").Return(booking, nil)

		_, err := svc.Create(guestContext("user-1"), reviewForm("booking-1"))

		assert.True(t, failure.IsCode(err, http.StatusUnprocessableEntity), "unexpected error: %v", err)
	})

	t.Run("a second review conflicts", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.bookings.EXPECT().GetByID(gomock.Any(), "booking-1").Return(completedBooking("booking-1"), nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(guestContext("user-1"), reviewForm("booking-1"))

		assert.True(t, failure.IsCode(err, http.StatusConflict), "unexpected error: %v", err)
	})

	t.Run("a racing insert conflicts on the unique index", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.bookings.EXPECT().GetByID(gomock.Any(), "booking-1").Return(completedBooking("booking-1"), nil)
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := svc.Create(guestContext("user-1"), reviewForm("booking-1"))

		assert.True(t, failure.IsCode(err, http.StatusConflict), "unexpected error: %v", err)
	})
}

func TestReviewService_Delete(t *testing.T) {
	existing := model.Review{
		ID:        "review-1",
		BookingID: "booking-1",
		UserID:    "user-1",
		Rating:    4,
		Metadata:  gModel.Metadata{CreatedBy: "user-1", ModifiedBy: "user-1"},
	}

	t.Run("owner removes their review", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(guestContext("user-1"), "review-1")
		time.Sleep(asyncSettle)

		assert.NoError(t, err)
	})

	t.Run("admin removes anyone's review", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(adminContext("admin-1"), "review-1")
		time.Sleep(asyncSettle)

		assert.NoError(t, err)
	})

	t.Run("another guest is restricted", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

		err := svc.Delete(guestContext("user-2"), "review-1")

		assert.True(t, failure.IsCode(err, http.StatusForbidden), "unexpected error: %v", err)
	})

	t.Run("missing review is not found", func(t *testing.T) {
		svc, m := newReviewService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{}, nil)

		err := svc.Delete(adminContext("admin-1"), "review-1")

		assert.True(t, failure.IsCode(err, http.StatusNotFound), "unexpected error: %v", err)
	})
}
