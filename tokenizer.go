package main

import (
	"regexp"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenTitle tokenKind = iota
	tokenYear
	tokenSeason
	tokenEpisode
	tokenLanguage
	tokenSubtitleMarker
	tokenCatalogID
	tokenResolution
)

// pathToken is one recognized fragment of a path segment. A segment can
// produce several tokens (e.g. "show1 - S02E01-02" gives season, episode
// and title tokens).
type pathToken struct {
	kind      tokenKind
	text      string // title text, language code, catalog id, resolution
	number    int    // year, season, or episode start
	endNumber int    // episode range end; equals number for single episodes
}

// Pattern rules, applied per segment in this priority order. The
// original naming conventions are loose, so these are heuristics: an
// explicit SxxEyy marker always beats a bare season marker, and a
// 4-digit number is a year only when parenthesized (an unparenthesized
// one stays part of the title).
var (
	catalogTagRE    = regexp.MustCompile(`\[identifier=([^\[\]\s]+)\]`)
	parenYearRE     = regexp.MustCompile(`[(\[]((?:19|20)\d\d)[)\]]`)
	episodeRangeRE  = regexp.MustCompile(`(?i)\bS(\d{1,2})\s*E(\d{1,3})\s*-\s*E?(\d{1,3})\b`)
	seasonEpisodeRE = regexp.MustCompile(`(?i)\bS(\d{1,2})\s*E(\d{1,3})\b`)
	seasonWordRE    = regexp.MustCompile(`(?i)\bseason\s*(\d{1,2})\b`)
	seasonShortRE   = regexp.MustCompile(`(?i)\bS(\d{1,2})\b`)
	episodeWordRE   = regexp.MustCompile(`(?i)\bE(?:p|pisode)?\s*(\d{1,3})\b`)
	resolutionRE    = regexp.MustCompile(`(?i)\b(8k|4k|4320p|2160p|1080p|720p|480p)\b`)
	danglingRE      = regexp.MustCompile(`^[\s\-\[\]()]+|[\s\-\[\]()]+$`)
)

// takeMatch removes the first match of re from s and returns the
// remaining text (whitespace collapsed) together with the submatches.
func takeMatch(re *regexp.Regexp, s string) (string, []string) {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return s, nil
	}
	loc := re.FindStringIndex(s)
	rest := multiSpaceRE.ReplaceAllString(s[:loc[0]]+" "+s[loc[1]:], " ")
	return strings.TrimSpace(rest), match
}

// tokenizePath applies the pattern rules to every segment of a relative
// library path. The leaf's extension is stripped first; subtitle leaves
// additionally get a marker token and a trailing language hint when one
// is present. Pure function of the path text.
func tokenizePath(rel Path) [][]pathToken {
	isSubtitle := rel.isSubtitleFile()
	segments := rel.removingPathExtension().components()

	tokens := make([][]pathToken, len(segments))
	for idx, segment := range segments {
		leaf := idx == len(segments)-1
		tokens[idx] = tokenizeSegment(segment, leaf && isSubtitle)
	}
	return tokens
}

func tokenizeSegment(segment string, subtitleLeaf bool) []pathToken {
	var tokens []pathToken
	s := cleanSegment(segment)

	if rest, match := takeMatch(catalogTagRE, s); match != nil {
		tokens = append(tokens, pathToken{kind: tokenCatalogID, text: match[1]})
		s = rest
	}

	if rest, match := takeMatch(parenYearRE, s); match != nil {
		year, _ := strconv.Atoi(match[1])
		tokens = append(tokens, pathToken{kind: tokenYear, number: year})
		s = rest
	}

	haveSeason := false
	haveEpisode := false
	if rest, match := takeMatch(episodeRangeRE, s); match != nil {
		season, _ := strconv.Atoi(match[1])
		start, _ := strconv.Atoi(match[2])
		end, _ := strconv.Atoi(match[3])
		if end < start {
			end = start
		}
		tokens = append(tokens,
			pathToken{kind: tokenSeason, number: season},
			pathToken{kind: tokenEpisode, number: start, endNumber: end})
		s, haveSeason, haveEpisode = rest, true, true
	} else if rest, match := takeMatch(seasonEpisodeRE, s); match != nil {
		season, _ := strconv.Atoi(match[1])
		episode, _ := strconv.Atoi(match[2])
		tokens = append(tokens,
			pathToken{kind: tokenSeason, number: season},
			pathToken{kind: tokenEpisode, number: episode, endNumber: episode})
		s, haveSeason, haveEpisode = rest, true, true
	}

	// bare season markers; still stripped from the residual when an
	// SxxEyy marker already fixed the season
	if rest, match := takeMatch(seasonWordRE, s); match != nil {
		if !haveSeason {
			season, _ := strconv.Atoi(match[1])
			tokens = append(tokens, pathToken{kind: tokenSeason, number: season})
			haveSeason = true
		}
		s = rest
	} else if rest, match := takeMatch(seasonShortRE, s); match != nil {
		if !haveSeason {
			season, _ := strconv.Atoi(match[1])
			tokens = append(tokens, pathToken{kind: tokenSeason, number: season})
			haveSeason = true
		}
		s = rest
	}

	if rest, match := takeMatch(episodeWordRE, s); match != nil {
		if !haveEpisode {
			episode, _ := strconv.Atoi(match[1])
			tokens = append(tokens, pathToken{kind: tokenEpisode, number: episode, endNumber: episode})
		}
		s = rest
	}

	if rest, match := takeMatch(resolutionRE, s); match != nil {
		tokens = append(tokens, pathToken{kind: tokenResolution, text: strings.ToLower(match[1])})
		s = rest
	}

	if subtitleLeaf {
		tokens = append(tokens, pathToken{kind: tokenSubtitleMarker})
		rest, language := takeTrailingLanguage(s)
		if language != "" {
			tokens = append(tokens, pathToken{kind: tokenLanguage, text: language})
		}
		s = rest
	}

	s = strings.TrimSpace(danglingRE.ReplaceAllString(s, ""))
	if s != "" {
		tokens = append(tokens, pathToken{kind: tokenTitle, text: s})
	}
	return tokens
}

// takeTrailingLanguage consumes a language code or name from the end of
// a subtitle stem, skipping over "sdh"/"forced" markers.
func takeTrailingLanguage(s string) (string, string) {
	words := strings.Fields(s)
	for len(words) > 0 {
		last := strings.ToLower(words[len(words)-1])
		if last == "sdh" || last == "forced" {
			words = words[:len(words)-1]
			continue
		}
		if code, ok := languageHintFromWord(last); ok {
			return strings.Join(words[:len(words)-1], " "), code
		}
		break
	}
	return strings.Join(words, " "), ""
}

func findToken(tokens []pathToken, kind tokenKind) (pathToken, bool) {
	for _, token := range tokens {
		if token.kind == kind {
			return token, true
		}
	}
	return pathToken{}, false
}
