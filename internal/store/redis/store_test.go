package redis

import (
	"testing"

	"github.com/clipkeeper/clipkeeperd/internal/domain"
)

func TestRecordKey(t *testing.T) {
	if got := RecordKey("abc123"); got != "clipkeeper:video:abc123" {
		t.Errorf("RecordKey = %q, want %q", got, "clipkeeper:video:abc123")
	}
}

func TestExtractVideoKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{
			name: "valid record key",
			key:  "clipkeeper:video:abc123",
			want: "abc123",
		},
		{
			name:    "prefix only",
			key:     "clipkeeper:video:",
			wantErr: true,
		},
		{
			name:    "foreign key",
			key:     "clipkeeper:tab:42",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoKey(tt.key)

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("key = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeRecordEmptyList(t *testing.T) {
	for _, list := range [][]domain.Bookmark{nil, {}} {
		data, err := encodeRecord(list)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("encoded empty record = %s, want []", data)
		}
	}
}

func TestRecordCodec(t *testing.T) {
	list := []domain.Bookmark{
		{Time: 12.5, Desc: "hook"},
		{Time: 93.25, Desc: ""},
	}

	data, err := encodeRecord(list)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `[{"time":12.5,"desc":"hook"},{"time":93.25,"desc":""}]`
	if string(data) != want {
		t.Errorf("encoded = %s, want %s", data, want)
	}

	decoded, err := decodeRecord(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(list) {
		t.Fatalf("decoded len = %d, want %d", len(decoded), len(list))
	}
	for i := range list {
		if decoded[i] != list[i] {
			t.Errorf("entry %d = %+v, want %+v", i, decoded[i], list[i])
		}
	}
}

func TestDecodeRecordNullBody(t *testing.T) {
	list, err := decodeRecord([]byte("null"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("decoded = %v, want empty list", list)
	}
}
