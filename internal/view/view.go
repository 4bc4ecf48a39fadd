// Package view holds the popup's view-model: a typed projection of a
// bookmark list that the frontend renders deterministically, replacing
// the original extension's by-id DOM mutation.
package view

import (
	"github.com/clipkeeper/clipkeeperd/internal/domain"
)

// NoBookmarksPlaceholder is shown when a video has no bookmarks.
const NoBookmarksPlaceholder = "No bookmarks to show."

// NotWatchPageMessage is shown when the active page carries no video key.
const NotWatchPageMessage = "This is not a YouTube video page."

// Row is one displayed bookmark.
type Row struct {
	// ID is the stable element identifier, "bookmark-<time to 3 decimals>".
	ID string `json:"id"`

	// Time is the raw identity key, carried so play/edit/delete actions
	// can target the row without reparsing the timecode.
	Time float64 `json:"time"`

	// Timecode is the human-readable clock string.
	Timecode string `json:"timecode"`

	// Note is the bookmark's note text.
	Note string `json:"note"`
}

// EditOverlay seeds the note editor for one bookmark.
type EditOverlay struct {
	Time float64 `json:"time"`
	Desc string  `json:"desc"`
}

// View is the full popup state for one render.
type View struct {
	VideoKey string `json:"video_key,omitempty"`

	// NotWatchPage marks the not-applicable branch; Rows, ShowDeleteAll
	// and Placeholder are meaningless when set.
	NotWatchPage bool `json:"not_watch_page,omitempty"`

	Rows          []Row  `json:"rows"`
	ShowDeleteAll bool   `json:"show_delete_all"`
	Placeholder   string `json:"placeholder,omitempty"`
	Message       string `json:"message,omitempty"`

	// Overlay is the open note editor, nil when dismissed.
	Overlay *EditOverlay `json:"overlay,omitempty"`
}

// Render projects a bookmark list into the displayed view. Rows keep
// the list's stored order; the delete-all control appears from two
// entries up; an empty list shows the placeholder instead of rows.
func Render(videoKey string, list []domain.Bookmark) View {
	v := View{
		VideoKey:      videoKey,
		Rows:          make([]Row, 0, len(list)),
		ShowDeleteAll: len(list) >= 2,
	}

	if len(list) == 0 {
		v.Placeholder = NoBookmarksPlaceholder
		return v
	}

	for _, b := range list {
		v.Rows = append(v.Rows, Row{
			ID:       domain.ElementID(b.Time),
			Time:     b.Time,
			Timecode: domain.FormatTimecode(b.Time),
			Note:     b.Desc,
		})
	}
	return v
}

// NotApplicable is the view rendered when the active page is not a
// recognized video-watch page.
func NotApplicable() View {
	return View{
		NotWatchPage: true,
		Rows:         []Row{},
		Message:      NotWatchPageMessage,
	}
}
