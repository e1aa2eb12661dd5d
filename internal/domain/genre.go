package domain

import (
	"errors"
	"fmt"
	"strings"
)

// GenreKeySeparator joins words inside a genre key (sci_fi).
const GenreKeySeparator = "_"

// Genre is one row of the curated table.
type Genre struct {
	Key    string
	Titles []string
}

// Phrases returns the substrings that select this genre: the key itself and,
// when it contains the separator, the key with spaces instead.
func (g Genre) Phrases() []string {
	phrases := []string{g.Key}
	if spaced := strings.ReplaceAll(g.Key, GenreKeySeparator, " "); spaced != g.Key {
		phrases = append(phrases, spaced)
	}
	return phrases
}

// GenreTable is an immutable, ordered genre lookup. Declaration order is
// match order. Safe for concurrent reads.
type GenreTable struct {
	genres     []Genre
	defaultKey string
}

// NewGenreTable validates and copies the rows. Every genre needs exactly
// size titles and the default key must be present.
func NewGenreTable(genres []Genre, defaultKey string, size int) (GenreTable, error) {
	if len(genres) == 0 {
		return GenreTable{}, errors.New("genre table is empty")
	}
	seen := make(map[string]struct{}, len(genres))
	rows := make([]Genre, 0, len(genres))
	for _, g := range genres {
		key := strings.ToLower(strings.TrimSpace(g.Key))
		if key == "" {
			return GenreTable{}, errors.New("genre key cannot be empty")
		}
		if _, dup := seen[key]; dup {
			return GenreTable{}, fmt.Errorf("duplicate genre key %q", key)
		}
		seen[key] = struct{}{}
		if len(g.Titles) != size {
			return GenreTable{}, fmt.Errorf("genre %q has %d titles, want %d", key, len(g.Titles), size)
		}
		titles := make([]string, len(g.Titles))
		for i, title := range g.Titles {
			title = strings.TrimSpace(title)
			if title == "" {
				return GenreTable{}, fmt.Errorf("genre %q has an empty title", key)
			}
			titles[i] = title
		}
		rows = append(rows, Genre{Key: key, Titles: titles})
	}
	if _, ok := seen[defaultKey]; !ok {
		return GenreTable{}, fmt.Errorf("default genre %q not in table", defaultKey)
	}
	return GenreTable{genres: rows, defaultKey: defaultKey}, nil
}

// Genres returns the rows in declaration order.
func (t GenreTable) Genres() []Genre {
	out := make([]Genre, len(t.genres))
	for i, g := range t.genres {
		out[i] = Genre{Key: g.Key, Titles: append([]string(nil), g.Titles...)}
	}
	return out
}

// Default returns the genre used when nothing matches.
func (t GenreTable) Default() Genre {
	g, _ := t.Lookup(t.defaultKey)
	return g
}

// Lookup finds a genre by key.
func (t GenreTable) Lookup(key string) (Genre, bool) {
	for _, g := range t.genres {
		if g.Key == key {
			return Genre{Key: g.Key, Titles: append([]string(nil), g.Titles...)}, true
		}
	}
	return Genre{}, false
}

// Match returns the first declared genre whose phrase occurs in the
// preference, or the default genre. The second value is false for the default.
func (t GenreTable) Match(preference string) (Genre, bool) {
	lowered := strings.ToLower(preference)
	for _, g := range t.genres {
		for _, phrase := range g.Phrases() {
			if strings.Contains(lowered, phrase) {
				return Genre{Key: g.Key, Titles: append([]string(nil), g.Titles...)}, true
			}
		}
	}
	return t.Default(), false
}

// Len returns the number of genres.
func (t GenreTable) Len() int {
	return len(t.genres)
}
