package main

import (
	"errors"
	"testing"
)

func TestRunEngineShowPipeline(t *testing.T) {
	search := &fakeSearcher{results: map[string][]Candidate{
		"show1": {{ID: "99", DisplayName: "show1", Year: 2018}},
	}}
	resolver := &Resolver{Search: search}

	files := []Path{
		"show1/season 02/show1 - S02E01-02.mkv",
		"show1/season 02/subs/S02E01.en.srt",
		"show1/season 02/extras/behind the scenes.iso",
	}
	result, err := runEngine(files, Episode, resolver)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Resolved) != 1 {
		t.Fatalf("expected one unit, got %d", len(result.Resolved))
	}
	unit := result.Resolved[0]
	if unit.CatalogID != "99" {
		t.Errorf("expected catalog id '99', got %q", unit.CatalogID)
	}
	if len(unit.Subtitles) != 1 {
		t.Errorf("expected the pooled subtitle attached, got %+v", unit.Subtitles)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected video + subtitle plan entries, got %+v", result.Entries)
	}
	if len(result.Unparseable) != 0 || len(result.Orphans) != 0 || len(result.Collisions) != 0 {
		t.Errorf("expected a clean run, got %+v", result)
	}
	if len(search.queries) != 1 || search.queries[0] != "show1" {
		t.Errorf("expected one grouped search query, got %v", search.queries)
	}
}

func TestRunEngineCollectsDiagnostics(t *testing.T) {
	search := &fakeSearcher{results: map[string][]Candidate{
		"show1": {{ID: "99", DisplayName: "show1"}},
	}}
	resolver := &Resolver{Search: search}

	files := []Path{
		"show1/show1 - S01E01.mkv",
		"show1/random clip.mkv",
		"show1/subs/S09E09.srt",
	}
	result, err := runEngine(files, Episode, resolver)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Unparseable) != 1 || result.Unparseable[0].Path != "show1/random clip.mkv" {
		t.Errorf("expected the clip reported unparseable, got %+v", result.Unparseable)
	}
	if len(result.Orphans) != 1 || result.Orphans[0].Path != "show1/subs/S09E09.srt" {
		t.Errorf("expected the stray subtitle orphaned, got %+v", result.Orphans)
	}
}

func TestRunEngineUnresolvedUnitsStayInResult(t *testing.T) {
	search := &fakeSearcher{results: map[string][]Candidate{
		"movie1": {{ID: "42", DisplayName: "movie1"}},
	}}
	resolver := &Resolver{Search: search}

	files := []Path{
		"movie1/movie1.mp4",
		"obscure film/obscure film.mp4",
	}
	result, err := runEngine(files, Movie, resolver)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Resolved) != 2 {
		t.Fatalf("expected both units in the result, got %d", len(result.Resolved))
	}
	if len(result.Unresolved) != 1 || result.Unresolved[0].Title != "obscure film" {
		t.Errorf("expected the miss listed unresolved, got %+v", result.Unresolved)
	}
	// the miss still gets a plan entry, just without a catalog tag
	if len(result.Entries) != 2 {
		t.Errorf("expected plan entries for both units, got %+v", result.Entries)
	}
}

func TestRunEngineTotalOutageIsFatal(t *testing.T) {
	resolver := &Resolver{Search: &fakeSearcher{err: errors.New("dial tcp: timeout")}}

	files := []Path{
		"movie1/movie1.mp4",
		"movie2/movie2.mp4",
	}
	if _, err := runEngine(files, Movie, resolver); err == nil {
		t.Fatal("expected a fatal error when every search fails")
	}
}

func TestRunEnginePartialOutageIsNot(t *testing.T) {
	search := &partialSearcher{good: map[string][]Candidate{
		"movie1": {{ID: "42", DisplayName: "movie1"}},
	}}
	resolver := &Resolver{Search: search}

	files := []Path{
		"movie1/movie1.mp4",
		"movie2/movie2.mp4",
	}
	result, err := runEngine(files, Movie, resolver)
	if err != nil {
		t.Fatalf("a partial outage must not abort the run: %v", err)
	}
	if len(result.Unresolved) != 1 {
		t.Errorf("expected the failed unit unresolved, got %+v", result.Unresolved)
	}
}

// partialSearcher fails every title it has no canned answer for.
type partialSearcher struct {
	good map[string][]Candidate
}

func (p *partialSearcher) Search(title string, year int, kind MediaKind) ([]Candidate, error) {
	if candidates, ok := p.good[title]; ok {
		return candidates, nil
	}
	return nil, errors.New("service unavailable")
}
