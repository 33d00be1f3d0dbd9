package mpd

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchFields selects which track fields feed the queue search index.
type SearchFields struct {
	File   bool `koanf:"file"`
	Title  bool `koanf:"title"`
	Artist bool `koanf:"artist"`
	Album  bool `koanf:"album"`
}

// DefaultSearchFields is used for any field the config leaves unset.
var DefaultSearchFields = SearchFields{
	File:   false,
	Title:  true,
	Artist: true,
	Album:  true,
}

// SearchIndex holds one normalized searchable string per queue track, in
// queue order. It is always rebuilt together with the queue.
type SearchIndex []string

// Match returns the positions whose entry contains the normalized query.
func (idx SearchIndex) Match(query string) []int {
	q := Normalize(query)
	matches := make([]int, 0, len(idx))
	for i, s := range idx {
		if strings.Contains(s, q) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Retain returns the positions of from whose entry contains the normalized
// query, keeping their order.
func (idx SearchIndex) Retain(from []int, query string) []int {
	q := Normalize(query)
	kept := make([]int, 0, len(from))
	for _, i := range from {
		if i >= 0 && i < len(idx) && strings.Contains(idx[i], q) {
			kept = append(kept, i)
		}
	}
	return kept
}

// Normalize lowercases s and strips combining marks so "Beyoncé" matches
// "beyonce".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func searchString(t *Track, fields SearchFields) string {
	var b strings.Builder
	b.Grow(64)

	if fields.File {
		b.WriteString(Normalize(t.File))
		b.WriteByte('\n')
	}
	if fields.Title && t.Title != nil {
		b.WriteString(Normalize(*t.Title))
		b.WriteByte('\n')
	}
	if fields.Artist && t.Artist != nil {
		b.WriteString(Normalize(*t.Artist))
		b.WriteByte('\n')
	}
	if fields.Album && t.Album != nil {
		b.WriteString(Normalize(*t.Album))
	}

	return b.String()
}
