package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// applyPlan executes the computed plan under outputRoot. In dry-run
// mode every destination becomes a ".txt" marker encoding the source
// path and the unit's inferred metadata, mirroring the final layout
// without touching the media; otherwise files are moved into place.
// A source shared by several entries (a subtitle attached to more than
// one unit) is copied to each destination and removed only after all
// of them are written.
func applyPlan(result *RunResult, libraryRoot, outputRoot Path, dryRun bool) error {
	sourceUses := make(map[Path]int)
	for _, entry := range result.Entries {
		sourceUses[entry.Source]++
	}

	for _, entry := range result.Entries {
		dest := outputRoot.appendingPathComponent(string(entry.Destination))
		if err := os.MkdirAll(string(dest.removingLastPathComponent()), 0755); err != nil {
			return err
		}

		if dryRun {
			if err := writeMarkerFile(dest.appendingPathExtension("txt"), entry); err != nil {
				return err
			}
			continue
		}

		source := libraryRoot.appendingPathComponent(string(entry.Source))
		if sourceUses[entry.Source] > 1 {
			Log("copying", source, "->", dest)
			if err := copyFile(source, dest); err != nil {
				return err
			}
			continue
		}
		Log("moving", source, "->", dest)
		if err := os.Rename(string(source), string(dest)); err != nil {
			return err
		}
	}
	if dryRun {
		return nil
	}

	for source, uses := range sourceUses {
		if uses > 1 {
			if err := os.Remove(string(libraryRoot.appendingPathComponent(string(source)))); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(source, dest Path) error {
	in, err := os.Open(string(source))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(string(dest))
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeMarkerFile(path Path, entry RenamePlanEntry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n", entry.Source)
	fmt.Fprintf(&b, "destination: %s\n", entry.Destination)
	if unit := entry.unit; unit != nil {
		fmt.Fprintf(&b, "kind: %s\n", unit.Kind)
		fmt.Fprintf(&b, "title: %s\n", unit.Title)
		if unit.Year != 0 {
			fmt.Fprintf(&b, "year: %d\n", unit.Year)
		}
		if unit.Kind == Episode {
			fmt.Fprintf(&b, "season: %d\n", unit.Season)
			fmt.Fprintf(&b, "episodes: %d-%d\n", unit.Episode.Start, unit.Episode.End)
		}
		if unit.CatalogID != "" {
			fmt.Fprintf(&b, "catalog id: %s\n", unit.CatalogID)
			fmt.Fprintf(&b, "confidence: %.2f\n", unit.Confidence)
		}
	}
	return os.WriteFile(string(path), []byte(b.String()), 0644)
}
