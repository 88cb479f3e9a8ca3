package rest

import (
	"net/http"

	"github.com/okatkov/wordvault/internal/transport/middleware"
)

// NewRouter mounts all REST routes. Health probes are open; everything under
// /words requires a valid token.
func NewRouter(words *WordHandler, health *HealthHandler, auth middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	protect := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	mux.Handle("GET /words/verify/list", protect(words.ReviewList))
	mux.Handle("GET /words/verify/generate", protect(words.GenerateQuiz))
	mux.Handle("POST /words/verify/submit", protect(words.SubmitQuiz))

	mux.Handle("GET /words", protect(words.List))
	mux.Handle("POST /words", protect(words.Create))
	mux.Handle("GET /words/{id}", protect(words.Get))
	mux.Handle("PATCH /words/{id}", protect(words.Update))
	mux.Handle("DELETE /words/{id}", protect(words.Delete))

	return mux
}
