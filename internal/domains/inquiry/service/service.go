package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"paradasia/config"
	"paradasia/infras/otel"
	"paradasia/internal/domains/inquiry/model"
	"paradasia/internal/domains/inquiry/model/dto"
	"paradasia/internal/domains/inquiry/repository"
	notification "paradasia/internal/domains/notification/service"
	"paradasia/shared"
	"paradasia/shared/cache"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	"paradasia/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetInquiries = "inquiry:gets"

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.InquiryResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetInquiriesResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateInquiryStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Inquiry
	notifier notification.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Inquiry, notifier notification.Notifier, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inquiry {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create records a contact-form submission. The form is public, so the actor
// is the anonymous guest identity unless a signed-in user sent it.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.ContextGuest
	}

	inquiry := req.ToModel(actor)

	if err = s.repo.Insert(ctx, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to insert inquiry")

		return res, fmt.Errorf("failed to insert inquiry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.InquiryReceived(c, inquiry); err != nil {
			log.Error().Err(err).Str("inquiry_id", inquiry.ID).Msg("failed to notify about inquiry")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetInquiries)
	}()

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if status != constant.Empty {
		if !model.ValidStatus(status) {
			return res, failure.BadRequest(fmt.Errorf("unknown inquiry status %q", status)) //nolint:wrapcheck
		}

		filter = statusFilter(status)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetInquiries, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	inquiries, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	res.FromModels(inquiries, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiries to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves an inquiry through the triage states. Any state can move
// to any other, so there is no transition table here.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateInquiryStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inquiry exists")

		return fmt.Errorf("failed to check if inquiry exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inquiry not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inquiry status")

		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetInquiries)
	}()

	return nil
}

// Delete removes the inquiry row permanently.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inquiry exists")

		return fmt.Errorf("failed to check if inquiry exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inquiry not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inquiry")

		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetInquiries)
	}()

	return nil
}

func statusFilter(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    model.TableName,
			},
		},
	}
}
