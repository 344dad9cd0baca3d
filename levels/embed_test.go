package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSourceRead(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{"tutorial", TutorialFile, nil},
		{"without_extension", "level1", nil},
		{"with_dir_prefix", "levels/level2.json", nil},
		{"animations", AnimationsFile, nil},
		{"missing", "nope.json", ErrUnknownLevel},
		{"empty", "", ErrUnknownLevel},
	}

	src := NewSource("")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := src.Read(tc.file)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("read %s: %v", tc.file, err)
			}
			if len(data) == 0 {
				t.Fatalf("expected data for %s", tc.file)
			}
		})
	}
}

func TestSourceDiskOverride(t *testing.T) {
	dir := t.TempDir()
	src := NewSource(dir)
	if err := src.Write(TutorialFile, []byte(`{"objects":[]}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := src.Read("tutorial")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"objects":[]}` {
		t.Fatalf("expected disk copy, got %s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, TutorialFile)); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
}

func TestSourceWriteWithoutDir(t *testing.T) {
	if err := NewSource("").Write(TutorialFile, nil); err == nil {
		t.Fatalf("expected error writing without a directory")
	}
}

func TestListIncludesShippedLevels(t *testing.T) {
	got := map[string]bool{}
	for _, name := range List() {
		got[name] = true
	}
	for _, want := range []string{CommonFile, TutorialFile, Level1File, Level2File, AnimationsFile} {
		if !got[want] {
			t.Fatalf("expected %s in %v", want, List())
		}
	}
}
