package presentation

import (
	"net/http"

	"github.com/RaikyD/vila-sales-api/internal/application"
	"github.com/RaikyD/vila-sales-api/internal/auth"
	"github.com/RaikyD/vila-sales-api/internal/presentation/helpers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/unrolled/secure"
)

// NewRouter wires the middleware stack, /health and the /api group gated
// by check.
func NewRouter(svc *application.SalesService, check auth.Check) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	// CORS answers preflight before the auth gate sees it
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		STSSeconds:            15552000,
		STSIncludeSubdomains:  true,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	}).Handler)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		helpers.HttpError(w, http.StatusNotFound, "not_found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		helpers.HttpError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	r.Get("/health", Health)

	r.Route("/api", func(api chi.Router) {
		api.Use(auth.Require(check))
		NewSalesHandler(svc).Register(api)
	})

	return r
}
