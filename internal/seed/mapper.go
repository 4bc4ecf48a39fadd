package seed

import (
	"sort"

	"github.com/clipkeeper/clipkeeperd/internal/domain"
)

// Mapper converts seed entries into domain bookmarks.
type Mapper struct{}

// NewMapper creates a seed mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapEntries converts one video's seed entries into bookmarks, sorted
// by time. Negative times and within-tolerance duplicates are dropped;
// the first occurrence wins, matching the record's uniqueness invariant.
func (m *Mapper) MapEntries(entries []Entry) []domain.Bookmark {
	bookmarks := make([]domain.Bookmark, 0, len(entries))

	for _, e := range entries {
		if e.Time < 0 {
			continue
		}
		if hasTime(bookmarks, e.Time) {
			continue
		}
		bookmarks = append(bookmarks, domain.Bookmark{
			Time: e.Time,
			Desc: e.Desc,
		})
	}

	sort.Slice(bookmarks, func(i, j int) bool {
		return bookmarks[i].Time < bookmarks[j].Time
	})
	return bookmarks
}

// Merge folds incoming bookmarks into an existing record, skipping any
// whose time already exists within tolerance, and returns the merged
// list sorted by time plus the number of entries added. The existing
// record's entries are never modified or dropped.
func Merge(existing, incoming []domain.Bookmark) ([]domain.Bookmark, int) {
	merged := make([]domain.Bookmark, len(existing))
	copy(merged, existing)

	added := 0
	for _, b := range incoming {
		if hasTime(merged, b.Time) {
			continue
		}
		merged = append(merged, b)
		added++
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Time < merged[j].Time
	})
	return merged, added
}

func hasTime(list []domain.Bookmark, t float64) bool {
	for _, b := range list {
		if domain.SameTime(b.Time, t) {
			return true
		}
	}
	return false
}
