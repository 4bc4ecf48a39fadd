package handlers

import (
	"errors"
	"net/http"

	"github.com/clipkeeper/clipkeeperd/internal/controller"
	"github.com/clipkeeper/clipkeeperd/internal/httpserver/deps"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
)

// Delete removes every bookmark within tolerance of the given time and
// responds with the refreshed view. The record write completes in the
// background; its failure never reaches the popup.
func Delete(d deps.Deps) http.HandlerFunc {
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

		v, err := d.Controller.Delete(r.Context(), page, t)
		if err != nil {
			if errors.Is(err, controller.ErrNotWatchPage) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Logger.Error("delete failed",
				logger.Float64("time", t),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "bookmark store unavailable")
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// DeleteAll empties the video's record outright and responds with the
// empty view. No read precedes the write; the whole list is discarded.
func DeleteAll(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, page, err := decodeAction(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		v, err := d.Controller.DeleteAll(r.Context(), page)
		if err != nil {
			if errors.Is(err, controller.ErrNotWatchPage) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Logger.Error("delete-all failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "bookmark store unavailable")
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}
