package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-assistance/internal/http/handlers"
	appmw "service-assistance/internal/http/middleware"
	"service-assistance/internal/http/middleware/ratelimit"
	"service-assistance/internal/logx"
)

// Deps lists everything the router mounts.
type Deps struct {
	Logger    logx.Logger
	Base      *handlers.Handlers
	Providers *handlers.ProviderHandler
	Requests  *handlers.RequestHandler
	Dispatch  *handlers.DispatchHandler
	RateLimit *ratelimit.Middleware
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(appmw.Observability(d.Logger))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	r.Get("/providers", d.Providers.List)
	r.Get("/providers/{id}", d.Providers.GetByID)
	r.Get("/requests/{id}", d.Requests.GetByID)

	// mutating routes sit behind the rate limiter
	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit.Handler())
		}

		r.Post("/providers", d.Providers.Create)
		r.Put("/providers", d.Providers.Update)

		r.Post("/requests", d.Requests.Create)
		r.Post("/requests/{id}/dispatch", d.Dispatch.Dispatch)
		r.Post("/requests/{id}/complete", d.Dispatch.Complete)
		r.Post("/requests/{id}/cancel", d.Dispatch.Cancel)
	})

	return r
}
