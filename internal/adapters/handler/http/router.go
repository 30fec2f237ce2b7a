package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(rulesHandler *RulesHandler, overviewHandler *OverviewHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/states", func(r chi.Router) {
			r.Get("/{slug}/rules", rulesHandler.GetStateRules)
		})

		r.Route("/prereg", func(r chi.Router) {
			r.Get("/table", overviewHandler.GetTable)
			r.Get("/map", overviewHandler.GetMap)
		})
	})

	return r
}
