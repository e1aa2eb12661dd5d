package ai

import "github.com/doeshing/movierec-go/internal/domain"

// DefaultGenreKey answers preferences that match no genre.
const DefaultGenreKey = "drama"

// curatedGenres is declared in match order: a preference naming two genres
// resolves to the one listed first here.
var curatedGenres = []domain.Genre{
	{Key: "action", Titles: []string{"John Wick", "Mission Impossible", "Fast & Furious", "Top Gun Maverick", "The Matrix Resurrections"}},
	{Key: "comedy", Titles: []string{"The Grand Budapest Hotel", "Superbad", "Knives Out", "Juno", "Bridesmaids"}},
	{Key: "romance", Titles: []string{"The Notebook", "Titanic", "La La Land", "Pride and Prejudice", "Me Before You"}},
	{Key: "horror", Titles: []string{"The Shining", "Get Out", "A Quiet Place", "Hereditary", "Insidious"}},
	{Key: "drama", Titles: []string{"Forrest Gump", "The Shawshank Redemption", "Parasite", "Moonlight", "Oppenheimer"}},
	{Key: "sci_fi", Titles: []string{"Inception", "Interstellar", "Blade Runner 2049", "Dune", "The Matrix Resurrections"}},
	{Key: "animation", Titles: []string{"Spider-Man: Across the Spider-Verse", "Spirited Away", "Coco", "Inside Out 2", "Frozen"}},
	{Key: "thriller", Titles: []string{"Zodiac", "The Sixth Sense", "Se7en", "Shutter Island", "Gone Girl"}},
	{Key: "adventure", Titles: []string{"Indiana Jones", "Avatar", "Pirates of the Caribbean", "The Lord of the Rings", "Jurassic World"}},
	{Key: "fantasy", Titles: []string{"The Lord of the Rings", "Harry Potter", "Game of Thrones", "The Witcher", "Dune"}},
}

// CuratedGenreTable returns the built-in table.
func CuratedGenreTable() domain.GenreTable {
	table, err := domain.NewGenreTable(curatedGenres, DefaultGenreKey, domain.DefaultRecommendationSize)
	if err != nil {
		panic("ai: curated genre table invalid: " + err.Error())
	}
	return table
}
