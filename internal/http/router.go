package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	internalauth "github.com/kakeibo-app/kakeibo/internal/auth"
	authhandler "github.com/kakeibo-app/kakeibo/internal/http/auth"
	"github.com/kakeibo-app/kakeibo/internal/http/catalog"
	"github.com/kakeibo-app/kakeibo/internal/http/entry"
	"github.com/kakeibo-app/kakeibo/internal/http/importcsv"
	"github.com/kakeibo-app/kakeibo/internal/http/period"
	"github.com/kakeibo-app/kakeibo/internal/http/reconcile"
)

func New(
	authSvc *internalauth.Service,
	authV1 *authhandler.Handler,
	periodsV1 *period.Handler,
	entriesV1 *entry.Handler,
	reconcileV1 *reconcile.Handler,
	catalogV1 *catalog.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(internalauth.Middleware(authSvc))

			r.Route("/periods", periodsV1.Routes)

			r.Route("/incomes", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				entriesV1.IncomeRoutes(r)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				entriesV1.ExpenseRoutes(r)
			})

			r.Route("/reconcile", reconcileV1.Routes)

			r.Route("/import", importV1.Routes)

			catalogV1.Routes(r)
		})
	})

	return router
}
