package main

import (
	"fmt"
)

// catalogTag renders the destination tag for a resolved unit. It is a
// deterministic function of the id alone and absent when resolution
// failed, so untagged items stay easy to spot after a run.
func catalogTag(catalogID string) string {
	if catalogID == "" {
		return ""
	}
	return fmt.Sprintf(" [identifier=%s]", catalogID)
}

// destinationDir is the directory a unit's files land in, relative to
// the output root: "{title} ({year}) [identifier=id]" for movies, with
// a "season NN" component below it for episode groups.
func (u *ResolvedUnit) destinationDir() Path {
	dir := sanitizeFilename(u.Title)
	if u.Year != 0 {
		dir += fmt.Sprintf(" (%d)", u.Year)
	}
	dir += catalogTag(u.CatalogID)

	path := Path(dir)
	if u.Kind == Episode {
		path = path.appendingPathComponent(fmt.Sprintf("season %02d", u.Season))
	}
	return path
}

// destinationStem is the canonical file name without extension:
// "{title}" for movies, "{title} - SxxEyy[-zz]" for episode groups.
func (u *ResolvedUnit) destinationStem() string {
	title := sanitizeFilename(u.Title)
	if u.Kind == Movie {
		return title
	}
	return fmt.Sprintf("%s - S%02d%s", title, u.Season, u.Episode)
}

// buildPlan computes the destination for every source file of every
// unit, subtitles included. Subtitle destinations mirror their unit's
// directory, keeping the language hint in the file name. Two distinct
// sources mapping to one destination are withheld from the plan and
// reported as a collision, never silently overwritten.
func buildPlan(units []*ResolvedUnit) ([]RenamePlanEntry, []CollisionReport) {
	var proposed []RenamePlanEntry
	seen := make(map[RenamePlanEntry]bool)

	propose := func(entry RenamePlanEntry) {
		key := RenamePlanEntry{Source: entry.Source, Destination: entry.Destination}
		if seen[key] {
			// the same subtitle attached to overlapping units can
			// legitimately produce the same entry twice
			return
		}
		seen[key] = true
		proposed = append(proposed, entry)
	}

	for _, unit := range units {
		dir := unit.destinationDir()
		stem := unit.destinationStem()

		for _, source := range unit.SourcePaths {
			dest := dir.appendingPathComponent(stem).appendingPathExtension(source.extension())
			propose(RenamePlanEntry{Source: source, Destination: dest, unit: unit})
		}
		for _, subtitle := range unit.Subtitles {
			name := stem
			if subtitle.Language != "" {
				name += "." + subtitle.Language
			}
			dest := dir.appendingPathComponent(name).appendingPathExtension(subtitle.Path.extension())
			propose(RenamePlanEntry{Source: subtitle.Path, Destination: dest, unit: unit})
		}
	}

	destSources := make(map[Path][]Path)
	for _, entry := range proposed {
		destSources[entry.Destination] = append(destSources[entry.Destination], entry.Source)
	}

	var entries []RenamePlanEntry
	var collisions []CollisionReport
	reported := make(map[Path]bool)
	for _, entry := range proposed {
		sources := destSources[entry.Destination]
		if len(sources) > 1 {
			if !reported[entry.Destination] {
				reported[entry.Destination] = true
				collisions = append(collisions, CollisionReport{Destination: entry.Destination, Sources: sources})
			}
			continue
		}
		entries = append(entries, entry)
	}
	return entries, collisions
}
