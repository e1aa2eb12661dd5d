package ai

import (
	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// KeywordRecommender is the offline fallback: it picks a curated list by
// keyword. It never fails and never touches the network.
type KeywordRecommender struct {
	table domain.GenreTable
}

// NewKeywordRecommender uses the given table.
func NewKeywordRecommender(table domain.GenreTable) *KeywordRecommender {
	return &KeywordRecommender{table: table}
}

// NewCuratedRecommender uses the built-in genre table.
func NewCuratedRecommender() *KeywordRecommender {
	return NewKeywordRecommender(CuratedGenreTable())
}

// Recommend returns the comma-joined titles of the first matching genre.
func (r *KeywordRecommender) Recommend(preference string) string {
	genre, _ := r.table.Match(preference)
	return domain.JoinMovies(genre.Titles)
}

// Explain reports which genre a preference selects and whether it was a
// keyword match rather than the default.
func (r *KeywordRecommender) Explain(preference string) (string, bool) {
	genre, matched := r.table.Match(preference)
	return genre.Key, matched
}

var _ ports.FallbackRecommender = (*KeywordRecommender)(nil)
