package handlers

import (
	"errors"
	"net/http"

	"github.com/clipkeeper/clipkeeperd/internal/controller"
	"github.com/clipkeeper/clipkeeperd/internal/httpserver/deps"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
)

// Play forwards a PLAY command to the page context. No persistence
// interaction; a dropped command is logged, never surfaced.
func Play(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, page, err := decodeAction(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		t, err := req.requireTime()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := d.Controller.Play(r.Context(), page, t); err != nil {
			if errors.Is(err, controller.ErrNotWatchPage) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Logger.Warn("play dispatch failed",
				logger.String("tab", page.TabID),
				logger.Error(err))
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
