package main

import (
	"fmt"
)

// RunResult is the full outcome of one identification run: the
// executable plan plus every diagnostic the run produced. Nothing is
// dropped silently; an item either has a plan entry or shows up in one
// of the report lists.
type RunResult struct {
	Resolved    []*ResolvedUnit
	Entries     []RenamePlanEntry
	Unparseable []UnparseableUnit
	Orphans     []OrphanSubtitle
	Collisions  []CollisionReport
	Unresolved  []*ResolvedUnit
}

// runEngine drives the single-pass pipeline over a tree snapshot:
// tokenize, build units, associate subtitles, resolve, plan. Units are
// resolved strictly in discovery order; the only suspension point is
// the resolver's Chooser callback. The plan is fully computed in memory
// before anything touches the filesystem.
func runEngine(files []Path, kind MediaKind, resolver *Resolver) (*RunResult, error) {
	var mediaFiles, subtitleFiles []Path
	for _, rel := range files {
		switch {
		case rel.isSubtitleFile():
			subtitleFiles = append(subtitleFiles, rel)
		case rel.isVideoFile():
			mediaFiles = append(mediaFiles, rel)
		}
	}

	units, unparseable := groupMediaUnits(mediaFiles, kind)
	orphans := associateSubtitles(units, subtitleFiles)

	result := &RunResult{Unparseable: unparseable, Orphans: orphans}

	searchFailures := 0
	for _, unit := range units {
		resolved, err := resolver.Resolve(*unit)
		if err != nil {
			Warn("search failed for", unit.describe(), ":", err)
			searchFailures++
		}
		r := resolved
		result.Resolved = append(result.Resolved, &r)
		if r.CatalogID == "" {
			result.Unresolved = append(result.Unresolved, &r)
		}
	}
	// partial outages leave individual units untagged; a total outage
	// makes the rest of the run meaningless
	if len(units) > 0 && searchFailures == len(units) {
		return nil, fmt.Errorf("search service unreachable: all %d queries failed", searchFailures)
	}

	result.Entries, result.Collisions = buildPlan(result.Resolved)
	return result, nil
}

func (r *RunResult) report() {
	for _, item := range r.Unparseable {
		Warn("⚠️ could not parse:", item.Path, "(", item.Reason, ")")
	}
	for _, orphan := range r.Orphans {
		Warn("⚠️ orphaned subtitle:", orphan.Path)
	}
	for _, collision := range r.Collisions {
		Warn("💥 destination collision:", collision.Destination)
		for _, source := range collision.Sources {
			Warn("   from:", source)
		}
	}
	for _, unit := range r.Unresolved {
		Warn("🚫 unresolved:", unit.describe())
	}
	Logf("%d units (%d unresolved), %d plan entries, %d unparseable, %d orphaned subtitles, %d collisions",
		len(r.Resolved), len(r.Unresolved), len(r.Entries), len(r.Unparseable), len(r.Orphans), len(r.Collisions))
}
