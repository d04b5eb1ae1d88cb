package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Match sequences of non-alphanumeric characters
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Match leading/trailing hyphens
	trimHyphens = regexp.MustCompile(`^-+|-+$`)
)

// Slug lowercases s, strips accents and joins the remaining alphanumeric
// runs with hyphens: "Dragón Blanco!" becomes "dragon-blanco".
func Slug(s string) string {
	s = Fold(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return trimHyphens.ReplaceAllString(s, "")
}

// SlugWords splits the slug of s into words. Returns nil for an empty slug.
func SlugWords(s string) []string {
	slug := Slug(s)
	if slug == "" {
		return nil
	}
	return strings.Split(slug, "-")
}

// Fold lowercases s and removes diacritical marks.
func Fold(s string) string {
	// Decompose unicode characters (NFD normalization)
	result := norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	for _, r := range result {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing
			b.WriteRune(r)
		}
	}

	return b.String()
}

// MatchesQuery reports whether the words of query appear, in order and
// adjacent, among the words of any of the fields. Case and accents are
// ignored. An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	needle := Slug(query)
	if needle == "" {
		return true
	}
	for _, field := range fields {
		hay := Slug(field)
		if hay == needle || strings.HasPrefix(hay, needle+"-") ||
			strings.HasSuffix(hay, "-"+needle) || strings.Contains(hay, "-"+needle+"-") {
			return true
		}
	}
	return false
}
