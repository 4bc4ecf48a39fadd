package handlers

import (
	"net/http"

	"github.com/clipkeeper/clipkeeperd/internal/httpserver/deps"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
	"github.com/clipkeeper/clipkeeperd/internal/tabs"
)

// Popup renders the popup view for the active page. A page without a
// video key gets the not-applicable view; an unreachable store is the
// only error surfaced here, since there is nothing to render without it.
func Popup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := tabs.FromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		v, err := d.Controller.Initialize(r.Context(), page)
		if err != nil {
			d.Logger.Error("popup initialize failed",
				logger.String("url", page.URL),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "bookmark store unavailable")
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}
