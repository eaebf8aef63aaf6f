package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathComponents(t *testing.T) {
	components := Path("show1/season 02/show1 - S02E01.mkv").components()
	if len(components) != 3 || components[0] != "show1" || components[2] != "show1 - S02E01.mkv" {
		t.Errorf("unexpected components: %v", components)
	}
	if components := Path("").components(); components != nil {
		t.Errorf("empty path must have no components, got %v", components)
	}
}

func TestFileKindDetection(t *testing.T) {
	cases := []struct {
		path     Path
		video    bool
		subtitle bool
	}{
		{"a/movie1.mp4", true, false},
		{"a/movie1.MKV", true, false},
		{"a/movie1.en.srt", false, true},
		{"a/movie1.ASS", false, true},
		{"a/cover.jpg", false, false},
		{"a/.hidden.mkv", false, false},
	}
	for _, c := range cases {
		if got := c.path.isVideoFile(); got != c.video {
			t.Errorf("isVideoFile(%q) = %v, want %v", c.path, got, c.video)
		}
		if got := c.path.isSubtitleFile(); got != c.subtitle {
			t.Errorf("isSubtitleFile(%q) = %v, want %v", c.path, got, c.subtitle)
		}
	}
}

func TestCollectLibraryFiles(t *testing.T) {
	root := Path(t.TempDir())
	for _, rel := range []string{
		"show1/season 02/show1 - S02E01.mkv",
		"show1/season 02/subs/S02E01.en.srt",
		"show1/cover.jpg",
		".stversions/show1 - S02E01.mkv",
	} {
		full := filepath.Join(string(root), rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectLibraryFiles(root)
	if err != nil {
		t.Fatal(err)
	}

	want := map[Path]bool{
		Path(filepath.Join("show1", "season 02", "show1 - S02E01.mkv")):    true,
		Path(filepath.Join("show1", "season 02", "subs", "S02E01.en.srt")): true,
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), files)
	}
	for _, file := range files {
		if !want[file] {
			t.Errorf("unexpected file collected: %q", file)
		}
	}
}
