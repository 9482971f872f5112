package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"frontdesk/config"
	"frontdesk/internal/handlers/extension"
	"frontdesk/internal/handlers/overstay"
	"frontdesk/internal/handlers/room"
	"frontdesk/transport/http/middleware"
)

type DomainHandlers struct {
	Overstay  overstay.Handler
	Extension extension.Handler
	Room      room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.AuthRole
	Config         *config.Config
}

// SetupRoutes mounts the API in its own group so routes the caller registered on router keep
// their position ahead of this middleware chain.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(api chi.Router) {
		api.Use(r.App.Tracing)

		if r.Config.App.CORS.Enable {
			corsConfig := r.Config.App.CORS
			api.Use(cors.Handler(cors.Options{
				AllowedOrigins:   corsConfig.AllowedOrigins,
				AllowedMethods:   corsConfig.AllowedMethods,
				AllowedHeaders:   corsConfig.AllowedHeaders,
				AllowCredentials: corsConfig.AllowCredentials,
				MaxAge:           corsConfig.MaxAgeSeconds,
			}))
		}

		api.Use(r.App.RateLimit())

		api.Route("/v1", func(routerGroup chi.Router) {
			routerGroup.Use(r.Auth.APIKey, r.Auth.Auth, r.Auth.RBAC)

			r.DomainHandlers.Overstay.Router(routerGroup)
			r.DomainHandlers.Extension.Router(routerGroup)
			r.DomainHandlers.Room.Router(routerGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
		Config:         cfg,
	}
}
