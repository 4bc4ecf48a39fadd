package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/clipkeeper/clipkeeperd/internal/httpserver/deps"
	"github.com/clipkeeper/clipkeeperd/internal/httpserver/handlers"
	"github.com/clipkeeper/clipkeeperd/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateBurst,
		RefillPerIPPerMin: d.RateRefillPerMin,
		TrustProxy:        d.TrustProxy,
	}))

	limited.Post("/bookmarks/play", handlers.Play(d))
	limited.Get("/bookmarks/edit", handlers.BeginEdit(d))
	limited.Post("/bookmarks/edit", handlers.CommitEdit(d))
	limited.Post("/bookmarks/delete", handlers.Delete(d))
	limited.Post("/bookmarks/delete_all", handlers.DeleteAll(d))
}
