//go:build wireinject
// +build wireinject

package di

import (
	"visitpazar/config"
	"visitpazar/infras/mongo"
	"visitpazar/infras/otel"
	"visitpazar/infras/redis"
	"visitpazar/infras/s3"
	"visitpazar/shared/cache"
	"visitpazar/transport/http"
	"visitpazar/transport/http/middleware"
	"visitpazar/transport/http/router"

	bookingRepository "visitpazar/internal/domains/booking/repository"
	bookingService "visitpazar/internal/domains/booking/service"
	eventRepository "visitpazar/internal/domains/event/repository"
	eventService "visitpazar/internal/domains/event/service"
	guideRepository "visitpazar/internal/domains/guide/repository"
	guideService "visitpazar/internal/domains/guide/service"
	mediaService "visitpazar/internal/domains/media/service"
	placeRepository "visitpazar/internal/domains/place/repository"
	placeService "visitpazar/internal/domains/place/service"
	systemService "visitpazar/internal/domains/system/service"

	bookingHandler "visitpazar/internal/handlers/booking"
	eventHandler "visitpazar/internal/handlers/event"
	guideHandler "visitpazar/internal/handlers/guide"
	mediaHandler "visitpazar/internal/handlers/media"
	placeHandler "visitpazar/internal/handlers/place"
	systemHandler "visitpazar/internal/handlers/system"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var systemDomain = wire.NewSet(
	wire.Bind(new(systemService.Database), new(*mongo.Connection)),
	systemService.New,
)

var placeDomain = wire.NewSet(
	placeRepository.New,
	placeService.New,
)

var guideDomain = wire.NewSet(
	guideRepository.New,
	guideService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var mediaDomain = wire.NewSet(
	mediaService.New,
)

var domains = wire.NewSet(
	systemDomain,
	placeDomain,
	guideDomain,
	eventDomain,
	bookingDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	systemHandler.New,
	placeHandler.New,
	guideHandler.New,
	eventHandler.New,
	bookingHandler.New,
	mediaHandler.New,
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
