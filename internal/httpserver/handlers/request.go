package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/clipkeeper/clipkeeperd/internal/tabs"
)

var errMissingTime = errors.New("time missing")

// actionRequest is the body shared by the mutation endpoints. Time and
// Desc are optional at the wire level; each handler states what it needs.
type actionRequest struct {
	Tab  string   `json:"tab"`
	URL  string   `json:"url"`
	Time *float64 `json:"time,omitempty"`
	Desc string   `json:"desc"`
}

func decodeAction(r *http.Request) (actionRequest, tabs.Page, error) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return actionRequest{}, tabs.Page{}, fmt.Errorf("invalid request body: %w", err)
	}

	page := tabs.Page{TabID: req.Tab, URL: req.URL}
	if err := page.Validate(); err != nil {
		return actionRequest{}, tabs.Page{}, err
	}
	return req, page, nil
}

func (req actionRequest) requireTime() (float64, error) {
	if req.Time == nil {
		return 0, errMissingTime
	}
	return *req.Time, nil
}
