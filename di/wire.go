//go:build wireinject
// +build wireinject

package di

import (
	"recanto/config"
	"recanto/infras/jwt"
	"recanto/infras/kafka"
	"recanto/infras/otel"
	"recanto/infras/postgres"
	"recanto/infras/redis"
	"recanto/infras/s3"
	"recanto/permissions"
	"recanto/shared/cache"
	"recanto/transport/http"
	"recanto/transport/http/middleware"
	"recanto/transport/http/router"

	"github.com/google/wire"

	authService "recanto/internal/domains/auth/service"
	availabilityRepository "recanto/internal/domains/availability/repository"
	availabilityService "recanto/internal/domains/availability/service"
	bookingRepository "recanto/internal/domains/booking/repository"
	bookingService "recanto/internal/domains/booking/service"
	notificationRepository "recanto/internal/domains/notification/repository"
	notificationService "recanto/internal/domains/notification/service"
	paymentRepository "recanto/internal/domains/payment/repository"
	paymentService "recanto/internal/domains/payment/service"
	propertyRepository "recanto/internal/domains/property/repository"
	propertyService "recanto/internal/domains/property/service"
	reviewRepository "recanto/internal/domains/review/repository"
	reviewService "recanto/internal/domains/review/service"
	userRepository "recanto/internal/domains/user/repository"

	authHandler "recanto/internal/handlers/auth"
	availabilityHandler "recanto/internal/handlers/availability"
	bookingHandler "recanto/internal/handlers/booking"
	notificationHandler "recanto/internal/handlers/notification"
	paymentHandler "recanto/internal/handlers/payment"
	propertyHandler "recanto/internal/handlers/property"
	reviewHandler "recanto/internal/handlers/review"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	propertyDomain,
	availabilityDomain,
	notificationDomain,
	bookingDomain,
	paymentDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	propertyHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	reviewHandler.New,
	availabilityHandler.New,
	notificationHandler.New,
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
