package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	content := `
abc123:
  - time: 12.5
    desc: "hook starts"
  - time: 93.25
    desc: ""
xyz789:
  - time: 4
    desc: "cold open"
`
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(file) != 2 {
		t.Fatalf("videos = %d, want 2", len(file))
	}

	entries := file["abc123"]
	if len(entries) != 2 {
		t.Fatalf("abc123 entries = %d, want 2", len(entries))
	}
	if entries[0].Time != 12.5 || entries[0].Desc != "hook starts" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Desc != "" {
		t.Errorf("entry 1 desc = %q, want empty", entries[1].Desc)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoaderInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("abc123: [time: {"), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
