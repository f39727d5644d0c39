//go:build wireinject
// +build wireinject

package di

import (
	"paradasia/config"
	"paradasia/infras/jwt"
	"paradasia/infras/kafka"
	"paradasia/infras/mailer"
	"paradasia/infras/otel"
	"paradasia/infras/paystack"
	"paradasia/infras/postgres"
	"paradasia/infras/redis"
	"paradasia/permissions"
	"paradasia/shared/cache"
	"paradasia/transport/http"
	"paradasia/transport/http/middleware"
	"paradasia/transport/http/router"

	"github.com/google/wire"

	authService "paradasia/internal/domains/auth/service"
	bookingRepository "paradasia/internal/domains/booking/repository"
	bookingService "paradasia/internal/domains/booking/service"
	inquiryRepository "paradasia/internal/domains/inquiry/repository"
	inquiryService "paradasia/internal/domains/inquiry/service"
	notificationService "paradasia/internal/domains/notification/service"
	paymentService "paradasia/internal/domains/payment/service"
	reviewRepository "paradasia/internal/domains/review/repository"
	reviewService "paradasia/internal/domains/review/service"
	roomRepository "paradasia/internal/domains/room/repository"
	roomService "paradasia/internal/domains/room/service"
	userRepository "paradasia/internal/domains/user/repository"
	userService "paradasia/internal/domains/user/service"

	authHandler "paradasia/internal/handlers/auth"
	bookingHandler "paradasia/internal/handlers/booking"
	inquiryHandler "paradasia/internal/handlers/inquiry"
	paymentHandler "paradasia/internal/handlers/payment"
	reviewHandler "paradasia/internal/handlers/review"
	roomHandler "paradasia/internal/handlers/room"
	userHandler "paradasia/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	paystack.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	notificationDomain,
	bookingDomain,
	paymentDomain,
	inquiryDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	inquiryHandler.New,
	reviewHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
