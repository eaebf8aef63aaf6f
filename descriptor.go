package main

import (
	"errors"
)

var (
	errNoTitle   = errors.New("no title found in path")
	errNoEpisode = errors.New("no episode marker found in path")
)

// buildMediaUnit aggregates the per-segment tokens of one media file
// into a MediaUnit. The show/movie name is first in the path, so the
// first segment carrying a title token fixes the title and later
// title-like text is treated as noise. The year may appear anywhere;
// the season comes from the deepest segment carrying one; the episode
// range comes from the filename segment.
func buildMediaUnit(rel Path, tokens [][]pathToken, kind MediaKind) (*MediaUnit, error) {
	unit := &MediaUnit{Kind: kind, SourcePaths: []Path{rel}}

	for idx, segment := range tokens {
		leaf := idx == len(tokens)-1
		for _, token := range segment {
			switch token.kind {
			case tokenTitle:
				if unit.Title == "" {
					unit.Title = token.text
				}
			case tokenYear:
				if unit.Year == 0 {
					unit.Year = token.number
				}
			case tokenSeason:
				unit.Season = token.number
			case tokenEpisode:
				if leaf {
					unit.Episode = EpisodeRange{Start: token.number, End: token.endNumber}
				}
			case tokenCatalogID:
				if unit.CatalogHint == "" {
					unit.CatalogHint = token.text
				}
			}
		}
	}

	if unit.Title == "" {
		return nil, errNoTitle
	}
	if kind == Movie {
		unit.Season = 0
		unit.Episode = EpisodeRange{}
		return unit, nil
	}

	if unit.Episode.Start == 0 {
		return nil, errNoEpisode
	}
	if unit.Season == 0 {
		// no season marker anywhere on the path: single implicit season
		unit.Season = 1
	}
	return unit, nil
}

// groupMediaUnits builds one MediaUnit per distinct title/year/season/
// episode-range identity, collecting the source files that share it.
// When two files differ only in year presence, the year-bearing unit
// wins and absorbs the other.
func groupMediaUnits(files []Path, kind MediaKind) ([]*MediaUnit, []UnparseableUnit) {
	var units []*MediaUnit
	var unparseable []UnparseableUnit

	for _, rel := range files {
		unit, err := buildMediaUnit(rel, tokenizePath(rel), kind)
		if err != nil {
			unparseable = append(unparseable, UnparseableUnit{Path: rel, Reason: err.Error()})
			continue
		}

		merged := false
		for _, existing := range units {
			if !existing.sameIdentity(unit) {
				continue
			}
			existing.SourcePaths = append(existing.SourcePaths, rel)
			if existing.Year == 0 {
				existing.Year = unit.Year
			}
			if existing.CatalogHint == "" {
				existing.CatalogHint = unit.CatalogHint
			}
			merged = true
			break
		}
		if !merged {
			units = append(units, unit)
		}
	}
	return units, unparseable
}
