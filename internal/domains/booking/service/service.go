package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"paradasia/config"
	"paradasia/infras/otel"
	"paradasia/internal/domains/booking/model"
	"paradasia/internal/domains/booking/model/dto"
	"paradasia/internal/domains/booking/repository"
	notification "paradasia/internal/domains/notification/service"
	roomService "paradasia/internal/domains/room/service"
	"paradasia/shared"
	"paradasia/shared/cache"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	"paradasia/shared/failure"
	gRepo "paradasia/shared/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheBookingPrefix = "booking"
	cacheGetBooking    = "booking:get"
	cacheGetBookings   = "booking:gets"
	cacheBookingStats  = "booking:stats"

	referencePrefix     = "PH-"
	demoReferencePrefix = "DEMO-"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CreateDemoBooking(ctx context.Context, req dto.DemoBookingRequest) (dto.BookingResponse, error)
	CreatePaidBooking(ctx context.Context, booking model.Booking) error
	ConfirmPayment(ctx context.Context, reference string) (model.Booking, error)
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	ConfirmManual(ctx context.Context, id string) error
	MarkRefunded(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	rooms    roomService.Room
	notifier notification.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, rooms roomService.Room, notifier notification.Notifier, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		rooms:    rooms,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create records a reservation that has not been paid yet. The nightly rate is
// snapshotted from the catalog at this moment; later rate changes never touch
// the booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.buildBooking(ctx, req, userID, model.NewBookingState(), referencePrefix+uuid.NewString())
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheBookingPrefix)
	}()

	res.FromModel(booking)

	return res, nil
}

// CreateDemoBooking records a reservation as confirmed and paid without going
// through the payment gateway. It only works when demo mode is switched on.
func (s *serviceImpl) CreateDemoBooking(ctx context.Context, req dto.DemoBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.CreateDemoBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.cfg.Booking.DemoMode {
		return res, failure.Forbidden("demo bookings are disabled") //nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reference := req.PaymentReference
	if reference == constant.Empty {
		reference = demoReferencePrefix + uuid.NewString()
	}

	booking, err := s.buildBooking(ctx, req.CreateBookingRequest, userID, model.PaidBookingState(), reference)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("payment reference already recorded") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert demo booking")

		return res, fmt.Errorf("failed to insert demo booking: %w", err)
	}

	s.afterConfirmation(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// CreatePaidBooking persists a booking that arrives already paid, which is how
// gateway webhooks materialize reservations. A replayed payment reference
// surfaces as Conflict so the caller can acknowledge without duplicating.
func (s *serviceImpl) CreatePaidBooking(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.CreatePaidBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, booking); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict("payment reference already recorded") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert paid booking")

		return fmt.Errorf("failed to insert paid booking: %w", err)
	}

	s.afterConfirmation(ctx, booking)

	return nil
}

// ConfirmPayment flips the pending booking holding reference to confirmed and
// paid. The flip is a conditional update, so a concurrent confirmation of the
// same reference succeeds exactly once.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, reference string) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	confirmed, err := s.repo.ConfirmPayment(ctx, reference, string(model.ActorSystem))
	if err != nil {
		return booking, fmt.Errorf("failed to confirm payment: %w", err)
	}

	if !confirmed {
		return booking, failure.NotFound("no pending booking for payment reference") //nolint:wrapcheck
	}

	booking, err = s.repo.Get(ctx, referenceFilter(reference))
	if err != nil {
		log.Error().Err(err).Str("reference", reference).Msg("failed to reload confirmed booking")

		return booking, fmt.Errorf("failed to reload confirmed booking: %w", err)
	}

	s.afterConfirmation(ctx, booking)

	return booking, nil
}

// Cancel moves a booking to cancelled. Guests may cancel their own bookings,
// admins anyone's; a booking already cancelled or completed yields Conflict.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	next, err := s.transition(ctx, booking, model.EventCancel)
	if err != nil {
		return err
	}

	refundOwed := booking.State().RefundOwed()

	go func() {
		c := context.WithoutCancel(ctx)

		booking.BookingStatus = string(next.Booking)
		booking.PaymentStatus = string(next.Payment)

		if err := s.notifier.BookingCancellation(c, booking, refundOwed); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to send cancellation notification")
		}

		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
	}()

	if refundOwed {
		log.Info().Str("booking_id", booking.ID).Str("reference", booking.PaymentReference).
			Int64("amount_minor", booking.TotalAmountMinor).Msg("cancelled paid booking, refund owed")
	}

	return nil
}

// Complete marks a confirmed, paid booking as a finished stay.
func (s *serviceImpl) Complete(ctx context.Context, id string) error {
	return s.adminTransition(ctx, id, model.EventComplete, "Complete")
}

// ConfirmManual confirms a pending booking without payment, for reservations
// settled outside the gateway.
func (s *serviceImpl) ConfirmManual(ctx context.Context, id string) error {
	return s.adminTransition(ctx, id, model.EventManualConfirm, "ConfirmManual")
}

// MarkRefunded records that the money from a cancelled, paid booking went back
// to the guest. The refund itself happens outside this system.
func (s *serviceImpl) MarkRefunded(ctx context.Context, id string) error {
	return s.adminTransition(ctx, id, model.EventMarkRefunded, "MarkRefunded")
}

func (s *serviceImpl) adminTransition(ctx context.Context, id string, event model.Event, spanName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking."+spanName)
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if _, err = s.transition(ctx, booking, event); err != nil {
		return err
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheBookingPrefix)
	}()

	return nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		if ownErr := s.checkOwnership(ctx, res.UserID); ownErr != nil {
			return dto.BookingResponse{}, ownErr
		}

		return res, nil
	}

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMyBookings(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetMyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("sign in to see your bookings") //nolint:wrapcheck
	}

	return s.list(ctx, params, userFilter(userID))
}

// GetAll lists bookings for the admin dashboard, optionally narrowed to one
// reservation status.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if status != constant.Empty {
		if !model.ValidBookingStatus(status) {
			return res, failure.BadRequest(fmt.Errorf("unknown booking status %q", status)) //nolint:wrapcheck
		}

		filter = statusFilter(status)
	}

	return s.list(ctx, params, filter)
}

// Stats aggregates the dashboard counters. Revenue only counts money actually
// collected, so pending and refunded bookings contribute nothing.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheBookingStats, &res)
	if err == nil {
		return res, nil
	}

	counts := map[model.BookingStatus]*int{
		model.BookingPending:   &res.PendingBookings,
		model.BookingConfirmed: &res.ConfirmedBookings,
		model.BookingCancelled: &res.CancelledBookings,
		model.BookingCompleted: &res.CompletedBookings,
	}

	for status, target := range counts {
		count, err := s.repo.Count(ctx, statusFilter(string(status)))
		if err != nil {
			log.Error().Err(err).Str("status", string(status)).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}

		*target = count
		res.TotalBookings += count
	}

	revenue, err := s.repo.SumPaidRevenueMinor(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to sum revenue: %w", err)
	}

	res.RevenueMinor = revenue
	res.Revenue = revenue / constant.MinorUnitsPerCur

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheBookingStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}

// buildBooking validates the stay window against the catalog and assembles the
// row to insert.
func (s *serviceImpl) buildBooking(ctx context.Context, req dto.CreateBookingRequest, userID string, state model.State, reference string) (model.Booking, error) {
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return model.Booking{}, failure.ValidationField("check_in", "invalid date") //nolint:wrapcheck
	}

	stay := model.ComputeStay(checkIn, checkOut, 0)
	if !stay.Valid() {
		return model.Booking{}, failure.ValidationField("check_out", "check-out must be after check-in") //nolint:wrapcheck
	}

	room, err := s.rooms.GetByCode(ctx, req.RoomType)
	if err != nil {
		return model.Booking{}, err
	}

	if req.Guests > room.MaxGuests {
		return model.Booking{}, failure.ValidationField("guests", fmt.Sprintf("the %s room sleeps at most %d guests", room.Code, room.MaxGuests)) //nolint:wrapcheck
	}

	stay = model.ComputeStay(checkIn, checkOut, room.RateMinor)

	return req.ToModel(userID, room.RateMinor, stay, state, reference), nil
}

// getOwned loads a booking and enforces that non-admin callers only reach
// their own rows.
func (s *serviceImpl) getOwned(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err := s.checkOwnership(ctx, booking.UserID); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

func (s *serviceImpl) checkOwnership(ctx context.Context, ownerID string) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin || role == constant.RoleSystem {
		return nil
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID != ownerID {
		return failure.ResourceRestrictedError //nolint:wrapcheck
	}

	return nil
}

// transition applies event to the booking's observed state and persists it
// with a conditional update. Losing the conditional update means someone else
// moved the booking first.
func (s *serviceImpl) transition(ctx context.Context, booking model.Booking, event model.Event) (model.State, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	next, err := booking.State().Transition(event, actorFromContext(ctx))
	if err != nil {
		return next, err
	}

	moved, err := s.repo.TransitionState(ctx, booking.ID, booking.State(), next, userID)
	if err != nil {
		return next, fmt.Errorf("failed to transition booking: %w", err)
	}

	if !moved {
		return next, failure.Conflict("booking changed concurrently, reload and retry") //nolint:wrapcheck
	}

	return next, nil
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetBookings, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// afterConfirmation fires the guest notification and cache invalidation that
// follow any booking reaching confirmed and paid.
func (s *serviceImpl) afterConfirmation(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.BookingConfirmation(c, booking); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to send confirmation notification")
		}

		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
	}()
}

func actorFromContext(ctx context.Context) model.Actor {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch role {
	case constant.RoleAdmin:
		return model.ActorAdmin
	case constant.RoleSystem:
		return model.ActorSystem
	default:
		return model.ActorGuest
	}
}

func referenceFilter(reference string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPaymentReference,
				Operator: gDto.FilterOperatorEq,
				Value:    reference,
				Table:    model.TableName,
			},
		},
	}
}

func statusFilter(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    model.TableName,
			},
		},
	}
}

func userFilter(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}
