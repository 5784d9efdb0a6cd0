package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/access/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/access/pkg/metrics"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.WithIP, mw.Log, mw.Recover, mw.Cors)

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Get("/roles", h.Roles)
			r.Get("/roles/{role}", h.Role)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/access/me", h.Me)
			r.Get("/access/users/{user_id}/view", h.CanViewUser)
			r.Post("/access/check", h.Check)

			r.Get("/counsellors/{counsellor_id}/counsellees", h.Counsellees)
			r.Post("/counsellors/{counsellor_id}/counsellees", h.AssignCounsellee)
			r.Delete("/counsellors/{counsellor_id}/counsellees/{counsellee_id}", h.UnassignCounsellee)

			r.Post("/admin-rights/transfer", h.TransferAdminRights)
			r.Get("/admin-rights/transfers", h.AdminRightsTransfers)
		})
	})

	return router
}
