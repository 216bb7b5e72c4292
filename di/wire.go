//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/jwt"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/kafka"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/redis"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/s3"
	"github.com/rhonzzlll/AIMbookingapp-sub001/permissions"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/cache"
	"github.com/rhonzzlll/AIMbookingapp-sub001/transport/http"
	"github.com/rhonzzlll/AIMbookingapp-sub001/transport/http/middleware"
	"github.com/rhonzzlll/AIMbookingapp-sub001/transport/http/router"

	auditRepository "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/repository"
	auditService "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/service"
	authService "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/auth/service"
	bookingRepository "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/repository"
	bookingService "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/service"
	buildingRepository "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/repository"
	buildingService "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/service"
	categoryRepository "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/repository"
	categoryService "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/service"
	roomRepository "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/repository"
	roomService "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/service"
	userRepository "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/user/repository"
	userService "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/user/service"

	auditHandler "github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/audit"
	authHandler "github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/auth"
	bookingHandler "github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/booking"
	buildingHandler "github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/building"
	categoryHandler "github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/category"
	roomHandler "github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/room"
	userHandler "github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var buildingDomain = wire.NewSet(
	buildingRepository.New,
	buildingService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewSubroom,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	buildingDomain,
	categoryDomain,
	roomDomain,
	bookingDomain,
	auditDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	buildingHandler.New,
	categoryHandler.New,
	bookingHandler.New,
	auditHandler.New,
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
