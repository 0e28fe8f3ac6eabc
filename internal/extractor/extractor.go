// Package extractor turns raw social posts into candidate store records.
// The rules are deliberately simple heuristics; they never fail.
package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ggorockee/cookiemap/internal/models"
)

const (
	unknownName   = "Unknown"
	maxNameLength = 50
)

var (
	// "at Grace Street in NYC", "from Bear Donut, ...", "@ Seoul Sweets."
	placePattern = regexp.MustCompile(`(?i)\b(?:at|from|@)\s+([A-Za-z0-9\s&'-]+?)(?:\s+in\s|\s*[,.]|$)`)

	sentenceBreak = regexp.MustCompile(`[.!?\n]`)
)

// Parse extracts one candidate per post, in input order
func Parse(posts []models.RawPost) []models.ParsedCandidate {
	parsed := make([]models.ParsedCandidate, 0, len(posts))
	for _, post := range posts {
		parsed = append(parsed, ParsePost(post))
	}
	return parsed
}

// ParsePost extracts a single candidate
func ParsePost(post models.RawPost) models.ParsedCandidate {
	city, state := SplitLocation(post.LocationHint)

	return models.ParsedCandidate{
		Name:            ExtractName(post.Caption),
		City:            city,
		State:           state,
		SourceHandle:    NormalizeHandle(post.Author),
		PostURL:         post.Permalink,
		ConfidenceScore: models.DefaultConfidence,
	}
}

// SplitLocation "New York, NY" -> ("New York", "NY"). The last comma segment is
// the region code; a hint without a comma is all city.
func SplitLocation(hint string) (city, state string) {
	if strings.TrimSpace(hint) == "" {
		return "", ""
	}

	parts := strings.Split(hint, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) >= 2 {
		return strings.Join(parts[:len(parts)-1], ", "), parts[len(parts)-1]
	}
	return parts[0], ""
}

// ExtractName place name from a caption: the "at/from/@ <name>" phrase, else the
// first sentence cut to 50 characters, else "Unknown".
func ExtractName(caption string) string {
	if m := placePattern.FindStringSubmatch(caption); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
		return unknownName
	}

	first := strings.TrimSpace(sentenceBreak.Split(caption, 2)[0])
	if name := strings.TrimSpace(truncate(first, maxNameLength)); name != "" {
		return name
	}
	return unknownName
}

// NormalizeHandle always starts with "@"
func NormalizeHandle(handle string) string {
	if strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
