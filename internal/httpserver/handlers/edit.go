package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/clipkeeper/clipkeeperd/internal/controller"
	"github.com/clipkeeper/clipkeeperd/internal/httpserver/deps"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
	"github.com/clipkeeper/clipkeeperd/internal/tabs"
)

// BeginEdit seeds the note editor for one bookmark. A missing target is
// the documented silent no-op: 204, no overlay, nothing logged to the user.
func BeginEdit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := tabs.FromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		t, err := strconv.ParseFloat(r.URL.Query().Get("time"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid time")
			return
		}

		overlay, err := d.Controller.BeginEdit(r.Context(), page, t)
		if err != nil {
			if errors.Is(err, controller.ErrNotWatchPage) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Logger.Error("edit lookup failed",
				logger.Float64("time", t),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "bookmark store unavailable")
			return
		}

		if overlay == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, overlay)
	}
}

// CommitEdit applies a note edit and responds with the refreshed view.
// The overlay is dismissed regardless of whether anything matched.
func CommitEdit(d deps.Deps) http.HandlerFunc {
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

		v, err := d.Controller.CommitEdit(r.Context(), page, t, req.Desc)
		if err != nil {
			if errors.Is(err, controller.ErrNotWatchPage) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Logger.Error("edit commit failed",
				logger.Float64("time", t),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "bookmark store unavailable")
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}
