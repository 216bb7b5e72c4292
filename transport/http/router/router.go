package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/audit"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/auth"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/booking"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/building"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/category"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/room"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/handlers/user"
	"github.com/rhonzzlll/AIMbookingapp-sub001/transport/http/middleware"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Room     room.Handler
	Building building.Handler
	Category category.Handler
	Booking  booking.Handler
	Audit    audit.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

// SetupRoutes registers the global middleware chain and every versioned
// route group. Middleware order matters: tracing wraps everything, the
// API key check runs before Auth so internal callers can bypass it, and
// RBAC runs last because it needs the claims Auth puts on the context.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.RateLimit())
	router.Use(r.AuthMiddleware.APIKey)
	router.Use(r.AuthMiddleware.Auth)
	router.Use(r.AuthMiddleware.RBAC)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Building.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
