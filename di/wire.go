//go:build wireinject
// +build wireinject

package di

import (
	"hotelpos/config"
	"hotelpos/infras/jwt"
	"hotelpos/infras/kafka"
	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/infras/redis"
	"hotelpos/infras/s3"
	authService "hotelpos/internal/domains/auth/service"
	docService "hotelpos/internal/domains/document/service"
	eventService "hotelpos/internal/domains/event/service"
	orderRepository "hotelpos/internal/domains/order/repository"
	orderService "hotelpos/internal/domains/order/service"
	productRepository "hotelpos/internal/domains/product/repository"
	productService "hotelpos/internal/domains/product/service"
	reportRepository "hotelpos/internal/domains/report/repository"
	reportService "hotelpos/internal/domains/report/service"
	reservationRepository "hotelpos/internal/domains/reservation/repository"
	reservationService "hotelpos/internal/domains/reservation/service"
	roomRepository "hotelpos/internal/domains/room/repository"
	roomService "hotelpos/internal/domains/room/service"
	stayRepository "hotelpos/internal/domains/stay/repository"
	stayService "hotelpos/internal/domains/stay/service"
	userRepository "hotelpos/internal/domains/user/repository"
	userService "hotelpos/internal/domains/user/service"
	authHandler "hotelpos/internal/handlers/auth"
	orderHandler "hotelpos/internal/handlers/order"
	productHandler "hotelpos/internal/handlers/product"
	reportHandler "hotelpos/internal/handlers/report"
	reservationHandler "hotelpos/internal/handlers/reservation"
	roomHandler "hotelpos/internal/handlers/room"
	stayHandler "hotelpos/internal/handlers/stay"
	userHandler "hotelpos/internal/handlers/user"
	"hotelpos/permissions"
	"hotelpos/shared/cache"
	"hotelpos/transport/http"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var archiveInfrastructures = wire.NewSet(
	otel.New,
	redis.New,
	redis.NewLocker,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var documentDomain = wire.NewSet(
	docService.NewRenderer,
)

var archiveDomain = wire.NewSet(
	docService.NewRenderer,
	docService.NewArchiver,
	eventService.NewConsumer,
)

var eventDomain = wire.NewSet(
	eventService.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var stayDomain = wire.NewSet(
	stayRepository.New,
	stayService.New,
)

var productDomain = wire.NewSet(
	productRepository.New,
	productService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	documentDomain,
	eventDomain,
	roomDomain,
	reservationDomain,
	stayDomain,
	productDomain,
	orderDomain,
	reportDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	reservationHandler.New,
	stayHandler.New,
	productHandler.New,
	orderHandler.New,
	reportHandler.New,
	userHandler.New,
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

func InitializeSeeder() userService.User {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		sharedHelpers,
		userDomain,
	)

	return nil
}

func InitializeWorker() *eventService.Consumer {
	wire.Build(
		config.Get,
		archiveInfrastructures,
		archiveDomain,
	)

	return nil
}
