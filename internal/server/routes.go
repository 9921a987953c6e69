package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"invclean/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/discard", func(r chi.Router) {
			r.Get("/selection", handler(s.getV1Selection))
			r.Put("/selection", handler(s.putV1Selection))
			r.Get("/active", handler(s.getV1Active))
			r.Post("/runs", handler(s.postV1Runs))
			r.Delete("/runs/active", handler(s.deleteV1ActiveRun))
		})

		r.Get("/inventory", handler(s.getV1Inventory))
		r.Get("/prices/{itemID}", handler(s.getV1Price))
		r.Post("/command", handler(s.postV1Command))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
