package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/justinas/alice"
)

// Register mounts the exploit API on r. maxBody caps submission bodies.
func (h *Handler) Register(r chi.Router, maxBody int64) {
	submit := alice.New(limitBody(maxBody), noStore).ThenFunc(h.Submit)

	r.Get("/health", h.Health)
	r.Method(http.MethodPost, "/submit", submit)
	// Path used by the serverless deployment of the front-end.
	r.Method(http.MethodPost, "/.netlify/functions/submit", submit)
	r.Post("/hash", h.Hash)
	r.Post("/verify", h.Verify)
}

func limitBody(n int64) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if n > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// noStore keeps replies that may carry the flag out of shared caches.
func noStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
