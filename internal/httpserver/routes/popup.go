package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/clipkeeper/clipkeeperd/internal/httpserver/deps"
	"github.com/clipkeeper/clipkeeperd/internal/httpserver/handlers"
)

func init() { Register(registerPopup) }

func registerPopup(r chi.Router, d deps.Deps) {
	r.Get("/popup", handlers.Popup(d))
}
