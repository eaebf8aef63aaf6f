package main

import "fmt"

type MediaKind int

const (
	Movie MediaKind = iota
	Episode
)

func (k MediaKind) String() string {
	if k == Movie {
		return "movie"
	}
	return "episode"
}

// EpisodeRange covers multi-episode files such as "S02E01-02".
// Single-episode files have Start == End.
type EpisodeRange struct {
	Start int
	End   int
}

func (r EpisodeRange) contains(episode int) bool {
	return episode >= r.Start && episode <= r.End
}

func (r EpisodeRange) String() string {
	if r.End > r.Start {
		return fmt.Sprintf("E%02d-%02d", r.Start, r.End)
	}
	return fmt.Sprintf("E%02d", r.Start)
}

type SubtitleFile struct {
	Path     Path
	Language string
}

// MediaUnit is one logical movie or episode group inferred from the
// source tree, before any catalog lookup happens.
type MediaUnit struct {
	Kind    MediaKind
	Title   string
	Year    int // 0 when the path carried no year
	Season  int // episodes only
	Episode EpisodeRange

	// CatalogHint is a catalog id already embedded in the source path
	// by a previous run. The resolver prefers a candidate with this id,
	// which keeps repeated runs from re-tagging correct items.
	CatalogHint string

	SourcePaths []Path
	Subtitles   []SubtitleFile
}

// sameIdentity reports whether two units describe the same movie or
// episode group. Years are compared only when both units carry one.
func (u *MediaUnit) sameIdentity(other *MediaUnit) bool {
	if u.Kind != other.Kind || !equalFoldTitle(u.Title, other.Title) {
		return false
	}
	if u.Year != 0 && other.Year != 0 && u.Year != other.Year {
		return false
	}
	if u.Kind == Episode {
		return u.Season == other.Season && u.Episode == other.Episode
	}
	return true
}

func (u *MediaUnit) describe() string {
	s := u.Title
	if u.Year != 0 {
		s += fmt.Sprintf(" (%d)", u.Year)
	}
	if u.Kind == Episode {
		s += fmt.Sprintf(" S%02d%s", u.Season, u.Episode)
	}
	return s
}

// ResolvedUnit is a MediaUnit with the outcome of catalog resolution
// attached. CatalogID stays empty on a miss or an operator skip; the
// original descriptor is kept for diagnostics either way.
type ResolvedUnit struct {
	MediaUnit
	CatalogID  string
	Confidence float64
	Ambiguous  bool
}

type RenamePlanEntry struct {
	Source      Path
	Destination Path

	// unit that produced this entry, used by the dry-run writer to
	// materialize metadata markers.
	unit *ResolvedUnit
}

// Diagnostics. All of these are recoverable per item; the run always
// completes with the best achievable plan.

type UnparseableUnit struct {
	Path   Path
	Reason string
}

type OrphanSubtitle struct {
	Path    Path
	Season  int
	Episode int
}

type CollisionReport struct {
	Destination Path
	Sources     []Path
}
