package domain

import (
	"net/url"
	"strings"
)

// watchPageMarker identifies a recognized video-watch page address.
const watchPageMarker = "youtube.com/watch"

// ParseVideoKey extracts the video key (the `v` query parameter) from a
// watch-page URL. The second return is false when the address is not a
// recognized watch page or carries no key; callers treat that as the
// not-applicable branch, not an error.
func ParseVideoKey(rawURL string) (string, bool) {
	if !strings.Contains(rawURL, watchPageMarker) {
		return "", false
	}

	_, query, ok := strings.Cut(rawURL, "?")
	if !ok {
		return "", false
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		return "", false
	}

	key := params.Get("v")
	if key == "" {
		return "", false
	}
	return key, true
}
