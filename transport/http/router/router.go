package router

import (
	"visitpazar/config"
	_ "visitpazar/docs"
	"visitpazar/internal/handlers/booking"
	"visitpazar/internal/handlers/event"
	"visitpazar/internal/handlers/guide"
	"visitpazar/internal/handlers/media"
	"visitpazar/internal/handlers/place"
	"visitpazar/internal/handlers/system"
	appMiddleware "visitpazar/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	System  system.Handler
	Place   place.Handler
	Guide   guide.Handler
	Event   event.Handler
	Booking booking.Handler
	Media   media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     appMiddleware.AppMiddleware
	Config         *config.Config
}

// SetupRoutes mounts the public surface: the banner and diagnostics at the
// root, the collections under /api and the generated API docs under /swagger.
func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	router.Use(
		r.Middleware.RequestID,
		r.Middleware.Logger,
		middleware.Recoverer,
		middleware.Heartbeat("/ping"),
		r.Middleware.RateLimit(),
		r.Middleware.Tracing,
	)

	r.DomainHandlers.System.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Place.Router(routerGroup)
		r.DomainHandlers.Guide.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (r *Router) corsOptions() cors.Options {
	corsConfig := r.Config.App.CORS

	return cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	}
}

func New(domainHandlers DomainHandlers, middleware appMiddleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         config,
	}
}
