package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/carsapi/carsapi-go/internal/middleware"
)

// NewRouter wires every route. Routes in the token group require a valid bearer token.
func NewRouter(auth *AuthHandler, cars *CarHandler, tokens middleware.TokenValidator) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", auth.HandleLogin)
		r.Post("/auth/register", auth.HandleRegister)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))

			r.Get("/auth/me", auth.HandleMe)
			r.Get("/auth/logout", auth.HandleLogout)
			r.Post("/auth/logout", auth.HandleLogout)
			r.Post("/auth/refresh", auth.HandleRefresh)

			r.Get("/cars", cars.HandleListCars)
			r.Get("/cars/{id}", cars.HandleGetCar)
		})
	})

	return r
}
