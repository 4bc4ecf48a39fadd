package domain

import (
	"math"
	"strconv"
)

// TimeTolerance is the matching tolerance (in seconds) used when a
// bookmark time travels through the popup and comes back reformatted.
// Deletion matches within this tolerance; edits match exactly because
// they operate on times read straight from the stored list.
const TimeTolerance = 0.001

// Bookmark is a (time, note) pair bound to a position in a video.
// Time is the identity key inside a video's list; there is no separate id.
type Bookmark struct {
	// Time is the offset into the video timeline, in seconds.
	Time float64 `json:"time"`

	// Desc is the free-text note. May be empty.
	Desc string `json:"desc"`
}

// SameTime reports whether two timestamps identify the same bookmark,
// using TimeTolerance rather than exact float equality.
func SameTime(a, b float64) bool {
	return math.Abs(a-b) <= TimeTolerance
}

// FindExact returns the first bookmark whose time equals t exactly.
// Used to seed the edit overlay, where t comes from the stored list itself.
func FindExact(list []Bookmark, t float64) (Bookmark, bool) {
	for _, b := range list {
		if b.Time == t {
			return b, true
		}
	}
	return Bookmark{}, false
}

// UpdateNote replaces the note of every bookmark whose time equals t
// exactly and returns the new list plus the number of entries updated.
// Duplicate times all receive the new note; the scan does not stop at
// the first match.
func UpdateNote(list []Bookmark, t float64, desc string) ([]Bookmark, int) {
	out := make([]Bookmark, len(list))
	copy(out, list)

	updated := 0
	for i := range out {
		if out[i].Time == t {
			out[i].Desc = desc
			updated++
		}
	}
	return out, updated
}

// RemoveAt filters out every bookmark within TimeTolerance of t and
// returns the surviving list (original order preserved) plus the number
// of entries removed.
func RemoveAt(list []Bookmark, t float64) ([]Bookmark, int) {
	out := make([]Bookmark, 0, len(list))
	removed := 0
	for _, b := range list {
		if SameTime(b.Time, t) {
			removed++
			continue
		}
		out = append(out, b)
	}
	return out, removed
}

// ElementID renders the stable per-row identifier used by the popup,
// "bookmark-" plus the time fixed to 3 decimal places.
func ElementID(t float64) string {
	return "bookmark-" + strconv.FormatFloat(t, 'f', 3, 64)
}
