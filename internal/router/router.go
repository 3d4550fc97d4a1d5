package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/saulo-duarte/roadmap-lambda/docs"
	"github.com/saulo-duarte/roadmap-lambda/internal/archive"
	"github.com/saulo-duarte/roadmap-lambda/internal/auth"
	"github.com/saulo-duarte/roadmap-lambda/internal/middlewares"
	"github.com/saulo-duarte/roadmap-lambda/internal/roadmap"
	"github.com/saulo-duarte/roadmap-lambda/internal/web"
)

type RouterConfig struct {
	RoadmapHandler *roadmap.Handler
	WebHandler     *web.Handler
	// ArchiveHandler is nil when archive endpoints are disabled.
	ArchiveHandler *archive.Handler
	AuthHandler    *auth.Handler

	AllowedOrigins []string
	ServiceName    string
	Tracing        bool
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", cfg.WebHandler.Form)
	r.Post("/", cfg.WebHandler.Submit)

	r.Mount("/roadmaps", roadmap.Routes(cfg.RoadmapHandler, cfg.ArchiveHandler))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/session", cfg.AuthHandler.CreateSession)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	if !cfg.Tracing {
		return r
	}
	return otelhttp.NewHandler(r, cfg.ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
			return req.Method + " " + req.URL.Path
		}),
	)
}
