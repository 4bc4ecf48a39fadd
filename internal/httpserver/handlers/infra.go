package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/clipkeeper/clipkeeperd/internal/httpserver/deps"
)

type componentStatus struct {
	OK             bool   `json:"ok"`
	RecordsTracked *int   `json:"records_tracked,omitempty"`
	LastImport     string `json:"last_import,omitempty"`
	BookmarksAdded *int   `json:"bookmarks_added,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports component health: the record store, how many videos
// carry records, and the seed importer's last run.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		components := map[string]componentStatus{
			"redis":   checkRedis(ctx, d),
			"records": checkRecords(ctx, d),
			"seed":    checkSeed(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{OK: false, Error: err.Error()}
	}
	return componentStatus{OK: true}
}

func checkRecords(ctx context.Context, d deps.Deps) componentStatus {
	keys, err := d.Store.ListVideoKeys(ctx)
	if err != nil {
		return componentStatus{OK: false, Error: err.Error()}
	}
	count := len(keys)
	return componentStatus{OK: true, RecordsTracked: &count}
}

func checkSeed(d deps.Deps) componentStatus {
	if d.SeedReloader == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	last, added := d.SeedReloader.LastImport()
	lastStr := "never"
	if !last.IsZero() {
		lastStr = last.Format("2006-01-02 15:04:05")
	}
	return componentStatus{
		OK:             true,
		Mode:           "enabled",
		LastImport:     lastStr,
		BookmarksAdded: &added,
	}
}

func overallStatus(components map[string]componentStatus) string {
	// Redis down means the popup can render nothing useful.
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "critical"
	}
	for _, c := range components {
		if !c.OK {
			return "degraded"
		}
	}
	return "ok"
}
