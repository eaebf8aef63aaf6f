package main

import "strings"

// directory names that hold pooled subtitles; never a show title
var subtitleFolderWords = map[string]bool{"sub": true, "subs": true, "subtitles": true}

// subtitleInfo is the parsed form of one subtitle file. Season and
// episode come from the subtitle's own path; a missing season inherits
// from the nearest ancestor segment carrying one, which covers pooled
// "subs/" directories living next to the episode files.
type subtitleInfo struct {
	rel      Path
	title    string
	year     int
	season   int
	episode  int
	language string
}

func parseSubtitle(rel Path) subtitleInfo {
	info := subtitleInfo{rel: rel}
	for _, segment := range tokenizePath(rel) {
		for _, token := range segment {
			switch token.kind {
			case tokenTitle:
				if info.title == "" && !subtitleFolderWords[strings.ToLower(token.text)] {
					info.title = token.text
				}
			case tokenYear:
				if info.year == 0 {
					info.year = token.number
				}
			case tokenSeason:
				info.season = token.number
			case tokenEpisode:
				info.episode = token.number
			case tokenLanguage:
				info.language = token.text
			}
		}
	}
	return info
}

// associateSubtitles attaches each subtitle file to every unit whose
// identity it matches. Episode subtitles need a season and an episode
// number falling inside the unit's range; movie subtitles match on
// title (and year, when both sides know it). A subtitle matching
// several multi-episode units is attached to all of them; duplicating
// a subtitle beats silently losing one. Files matching nothing are
// reported, not dropped.
func associateSubtitles(units []*MediaUnit, subtitleFiles []Path) []OrphanSubtitle {
	var orphans []OrphanSubtitle

	for _, rel := range subtitleFiles {
		info := parseSubtitle(rel)
		matched := false
		for _, unit := range units {
			if !subtitleMatchesUnit(info, unit) {
				continue
			}
			unit.Subtitles = append(unit.Subtitles, SubtitleFile{Path: rel, Language: info.language})
			matched = true
		}
		if !matched {
			orphans = append(orphans, OrphanSubtitle{Path: rel, Season: info.season, Episode: info.episode})
		}
	}
	return orphans
}

func subtitleMatchesUnit(info subtitleInfo, unit *MediaUnit) bool {
	// a pooled subtitle directory at the library root has no title
	// segment of its own; such files match on season/episode alone
	if info.title != "" && !equalFoldTitle(info.title, unit.Title) {
		return false
	}
	if unit.Kind == Movie {
		if info.year != 0 && unit.Year != 0 && info.year != unit.Year {
			return false
		}
		return info.title != ""
	}

	if info.episode == 0 {
		return false
	}
	season := info.season
	if season == 0 {
		season = 1
	}
	return season == unit.Season && unit.Episode.contains(info.episode)
}
