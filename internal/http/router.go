package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/http/credit"
	"github.com/MrJamesThe3rd/lendbook/internal/http/guarantor"
	"github.com/MrJamesThe3rd/lendbook/internal/http/importcsv"
	"github.com/MrJamesThe3rd/lendbook/internal/http/loan"
)

type Options struct {
	Authenticator  *auth.Authenticator
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(
	opts Options,
	loansV1 *loan.Handler,
	creditsV1 *credit.Handler,
	guarantorsV1 *guarantor.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(opts.Timeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/public/guarantors", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			guarantorsV1.PublicRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(opts.Authenticator.Middleware)

			r.Route("/loans", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				loansV1.Routes(r)
			})

			r.Route("/credits", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				creditsV1.Routes(r)
			})

			r.Route("/guarantors", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				guarantorsV1.Routes(r)
			})

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
