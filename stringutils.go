package main

import (
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/unicode/norm"
)

var (
	separatorRE     = regexp.MustCompile(`[._\s]+`)
	disallowedRE    = regexp.MustCompile(`[^\p{L}\p{N}\s()\[\]\-=']`)
	nonAlphaNumRE   = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	multiSpaceRE    = regexp.MustCompile(`\s+`)
	invalidFilename = regexp.MustCompile(`[:*?"<>|]`)
)

// cleanSegment prepares a raw path segment for token matching:
// separators become single spaces, characters that never carry meaning
// are dropped, whitespace is collapsed.
func cleanSegment(s string) string {
	s = norm.NFC.String(s)
	s = separatorRE.ReplaceAllString(s, " ")
	s = disallowedRE.ReplaceAllString(s, "")
	s = multiSpaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// normalizeTitle reduces a title to the form used for similarity
// scoring: NFC, punctuation collapsed to spaces, trimmed. The same
// normalization is applied to queries and catalog candidates so scores
// stay comparable.
func normalizeTitle(title string) string {
	title = norm.NFC.String(title)
	title = nonAlphaNumRE.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}

// titleSimilarity is a normalized edit-distance ratio in [0,1], 1.0 for
// an exact match after normalization.
func titleSimilarity(title1, title2 string) float64 {
	title1 = normalizeTitle(title1)
	title2 = normalizeTitle(title2)
	if title1 == "" || title2 == "" {
		return 0
	}

	metric := &metrics.Levenshtein{
		CaseSensitive: false,
		InsertCost:    1,
		DeleteCost:    1,
		ReplaceCost:   1,
	}
	return strutil.Similarity(title1, title2, metric)
}

func equalFoldTitle(title1, title2 string) bool {
	return strings.EqualFold(normalizeTitle(title1), normalizeTitle(title2))
}

// sanitizeFilename strips characters that cannot appear in destination
// file names. Brackets survive, the catalog tag depends on them.
func sanitizeFilename(s string) string {
	return strings.TrimSpace(invalidFilename.ReplaceAllString(s, ""))
}

func Coalesce(str1, str2 string) string {
	if str1 == "" {
		return str2
	}
	return str1
}
