//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/payment"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/realtime"
	gRepo "frontdesk/shared/repository"
	"frontdesk/transport/consumer"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"
	"frontdesk/transport/scheduler"

	extensionRepository "frontdesk/internal/domains/extension/repository"
	extensionService "frontdesk/internal/domains/extension/service"
	incidentRepository "frontdesk/internal/domains/incident/repository"
	incidentService "frontdesk/internal/domains/incident/service"
	overstayService "frontdesk/internal/domains/overstay/service"
	propertyRepository "frontdesk/internal/domains/property/repository"
	propertyService "frontdesk/internal/domains/property/service"
	reservationRepository "frontdesk/internal/domains/reservation/repository"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"

	extensionHandler "frontdesk/internal/handlers/extension"
	overstayHandler "frontdesk/internal/handlers/overstay"
	roomHandler "frontdesk/internal/handlers/room"
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
	kafka.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepo.NewTransactor,
	realtime.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
)

var incidentDomain = wire.NewSet(
	incidentRepository.New,
	incidentService.New,
)

var overstayDomain = wire.NewSet(
	overstayService.New,
)

var extensionDomain = wire.NewSet(
	extensionRepository.New,
	extensionService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	roomDomain,
	reservationDomain,
	incidentDomain,
	overstayDomain,
	extensionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	overstayHandler.New,
	extensionHandler.New,
	roomHandler.New,
	router.New,
)

var workers = wire.NewSet(
	scheduler.New,
	consumer.New,
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

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		workers,
		http.New,
		NewApp,
	)

	return &App{}
}
