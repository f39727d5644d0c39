package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"paradasia/config"
	"paradasia/infras/otel"
	bookingModel "paradasia/internal/domains/booking/model"
	bookingService "paradasia/internal/domains/booking/service"
	"paradasia/internal/domains/review/model"
	"paradasia/internal/domains/review/model/dto"
	"paradasia/internal/domains/review/repository"
	"paradasia/shared"
	"paradasia/shared/cache"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	"paradasia/shared/failure"
	gRepo "paradasia/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheReviewPrefix = "review"
	cacheGetReviews   = "review:gets"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetReviewsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Review
	bookings bookingService.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Review, bookings bookingService.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create records a stay review. Only the guest who made the booking may
// review it, only after the stay is completed, and only once.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Review.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("sign in to review a stay") //nolint:wrapcheck
	}

	// Ownership is enforced by the booking lookup itself.
	booking, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.BookingStatus != string(bookingModel.BookingCompleted) {
		return res, failure.InvalidState("only completed stays can be reviewed") //nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, bookingFilter(req.BookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for existing review")

		return res, fmt.Errorf("failed to check for existing review: %w", err)
	}

	if exist {
		return res, failure.Conflict("this booking has already been reviewed") //nolint:wrapcheck
	}

	review := req.ToModel(userID)

	// The unique index on booking_id closes the race the Exist check leaves open.
	if err = s.repo.Insert(ctx, review); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("this booking has already been reviewed") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert review")

		return res, fmt.Errorf("failed to insert review: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheReviewPrefix)
	}()

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Review.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetReviews, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	reviews, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	res.FromModels(reviews, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

// Delete removes a review. Guests may remove their own, admins any.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Review.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	review, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return failure.NotFound("review not found") //nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role != constant.RoleAdmin && review.UserID != userID {
		return failure.ResourceRestrictedError //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheReviewPrefix)
	}()

	return nil
}

func bookingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}
}
