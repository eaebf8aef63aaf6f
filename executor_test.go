package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSourceFile(t *testing.T, root Path, rel Path) {
	t.Helper()
	full := root.appendingPathComponent(string(rel))
	if err := os.MkdirAll(string(full.removingLastPathComponent()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(string(full), []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}
}

func testRunResult() *RunResult {
	unit := &ResolvedUnit{
		MediaUnit: MediaUnit{
			Kind:        Movie,
			Title:       "movie1",
			Year:        2014,
			SourcePaths: []Path{"some dir/movie1.mp4"},
		},
		CatalogID:  "42",
		Confidence: 1.0,
	}
	entries, _ := buildPlan([]*ResolvedUnit{unit})
	return &RunResult{Resolved: []*ResolvedUnit{unit}, Entries: entries}
}

func TestApplyPlanMovesFiles(t *testing.T) {
	libraryRoot := Path(t.TempDir())
	outputRoot := Path(t.TempDir())
	writeSourceFile(t, libraryRoot, "some dir/movie1.mp4")

	if err := applyPlan(testRunResult(), libraryRoot, outputRoot, false); err != nil {
		t.Fatal(err)
	}

	moved := outputRoot.appendingPathComponent("movie1 (2014) [identifier=42]/movie1.mp4")
	if !moved.exists() {
		t.Errorf("expected %q to exist", moved)
	}
	original := libraryRoot.appendingPathComponent("some dir/movie1.mp4")
	if original.exists() {
		t.Errorf("expected the source to be gone after the move")
	}
}

func TestApplyPlanCopiesSharedSubtitleToEveryDestination(t *testing.T) {
	shared := SubtitleFile{Path: "subs/E01.srt", Language: "en"}
	units := []*ResolvedUnit{
		{MediaUnit: MediaUnit{Kind: Episode, Title: "show1", Season: 1, Episode: EpisodeRange{Start: 1, End: 1},
			SourcePaths: []Path{"show1 - E01.mkv"}, Subtitles: []SubtitleFile{shared}}},
		{MediaUnit: MediaUnit{Kind: Episode, Title: "show2", Season: 1, Episode: EpisodeRange{Start: 1, End: 1},
			SourcePaths: []Path{"show2 - E01.mkv"}, Subtitles: []SubtitleFile{shared}}},
	}
	entries, collisions := buildPlan(units)
	if len(collisions) != 0 {
		t.Fatalf("unexpected collisions: %+v", collisions)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 2 video + 2 subtitle entries, got %+v", entries)
	}

	libraryRoot := Path(t.TempDir())
	outputRoot := Path(t.TempDir())
	writeSourceFile(t, libraryRoot, "show1 - E01.mkv")
	writeSourceFile(t, libraryRoot, "show2 - E01.mkv")
	writeSourceFile(t, libraryRoot, shared.Path)

	result := &RunResult{Resolved: units, Entries: entries}
	if err := applyPlan(result, libraryRoot, outputRoot, false); err != nil {
		t.Fatal(err)
	}

	for _, dest := range []Path{
		"show1/season 01/show1 - S01E01.en.srt",
		"show2/season 01/show2 - S01E01.en.srt",
	} {
		if !outputRoot.appendingPathComponent(string(dest)).exists() {
			t.Errorf("expected the subtitle materialized at %q", dest)
		}
	}
	if libraryRoot.appendingPathComponent(string(shared.Path)).exists() {
		t.Error("the shared source must be gone once every destination is written")
	}
}

func TestApplyPlanDryRunWritesMarkers(t *testing.T) {
	libraryRoot := Path(t.TempDir())
	outputRoot := Path(t.TempDir())
	writeSourceFile(t, libraryRoot, "some dir/movie1.mp4")

	if err := applyPlan(testRunResult(), libraryRoot, outputRoot, true); err != nil {
		t.Fatal(err)
	}

	original := libraryRoot.appendingPathComponent("some dir/movie1.mp4")
	if !original.exists() {
		t.Error("a dry run must not touch the source")
	}

	marker := outputRoot.appendingPathComponent("movie1 (2014) [identifier=42]/movie1.mp4.txt")
	content, err := os.ReadFile(string(marker))
	if err != nil {
		t.Fatalf("expected a marker file: %v", err)
	}
	text := string(content)
	for _, want := range []string{
		"source: " + filepath.Join("some dir", "movie1.mp4"),
		"title: movie1",
		"year: 2014",
		"catalog id: 42",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("marker missing %q:\n%s", want, text)
		}
	}
}
