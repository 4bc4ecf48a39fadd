package seed

import (
	"testing"

	"github.com/clipkeeper/clipkeeperd/internal/domain"
)

func TestMapEntries(t *testing.T) {
	tests := []struct {
		name      string
		entries   []Entry
		wantTimes []float64
	}{
		{
			name: "sorted by time",
			entries: []Entry{
				{Time: 93.25, Desc: "chorus"},
				{Time: 12.5, Desc: "hook"},
			},
			wantTimes: []float64{12.5, 93.25},
		},
		{
			name: "within-tolerance duplicates dropped, first wins",
			entries: []Entry{
				{Time: 10.0, Desc: "keep"},
				{Time: 10.0005, Desc: "drop"},
				{Time: 20.0, Desc: "keep"},
			},
			wantTimes: []float64{10.0, 20.0},
		},
		{
			name: "negative times dropped",
			entries: []Entry{
				{Time: -3, Desc: "bad"},
				{Time: 5, Desc: "ok"},
			},
			wantTimes: []float64{5},
		},
		{
			name:      "empty",
			entries:   nil,
			wantTimes: []float64{},
		},
	}

	mapper := NewMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapper.MapEntries(tt.entries)

			if len(got) != len(tt.wantTimes) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantTimes))
			}
			for i, want := range tt.wantTimes {
				if got[i].Time != want {
					t.Errorf("entry %d time = %v, want %v", i, got[i].Time, want)
				}
			}
		})
	}
}

func TestMerge(t *testing.T) {
	existing := []domain.Bookmark{
		{Time: 10.0, Desc: "recorded note"},
		{Time: 30.0, Desc: "another"},
	}
	incoming := []domain.Bookmark{
		{Time: 10.0008, Desc: "seed duplicate"},
		{Time: 20.0, Desc: "seed new"},
	}

	merged, added := Merge(existing, incoming)

	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	wantTimes := []float64{10.0, 20.0, 30.0}
	if len(merged) != len(wantTimes) {
		t.Fatalf("len = %d, want %d", len(merged), len(wantTimes))
	}
	for i, want := range wantTimes {
		if merged[i].Time != want {
			t.Errorf("entry %d time = %v, want %v", i, merged[i].Time, want)
		}
	}
	if merged[0].Desc != "recorded note" {
		t.Errorf("existing note overwritten: %q", merged[0].Desc)
	}
}

func TestMergeIntoEmptyRecord(t *testing.T) {
	incoming := []domain.Bookmark{{Time: 5, Desc: "seed"}}

	merged, added := Merge(nil, incoming)

	if added != 1 || len(merged) != 1 {
		t.Fatalf("added = %d, len = %d, want 1 and 1", added, len(merged))
	}
}
