package books

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "books.db"), database.WithLogLevel("silent"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func seedBooks(t *testing.T, repo *Repository, books ...entities.Book) []entities.Book {
	t.Helper()
	for i := range books {
		require.NoError(t, repo.CreateBook(&books[i]))
	}
	return books
}

func TestCreateBook(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("trims fields and assigns an ID", func(t *testing.T) {
		book := &entities.Book{Title: "  Dune ", Author: " Frank Herbert", Year: intPtr(1965)}
		require.NoError(t, repo.CreateBook(book))

		assert.NotZero(t, book.ID)
		stored, err := repo.GetBookByID(book.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", stored.Title)
		assert.Equal(t, "Frank Herbert", stored.Author)
		assert.Equal(t, 1965, *stored.Year)
	})

	t.Run("year is optional", func(t *testing.T) {
		book := &entities.Book{Title: "Beowulf", Author: "Unknown"}
		require.NoError(t, repo.CreateBook(book))

		stored, err := repo.GetBookByID(book.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.Year)
	})

	t.Run("rejects invalid input without writing", func(t *testing.T) {
		before, err := repo.CountBooks()
		require.NoError(t, err)

		err = repo.CreateBook(&entities.Book{Title: "   ", Author: "Someone", Year: intPtr(999)})
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
		assert.Contains(t, verr.Fields, "year")

		after, err := repo.CountBooks()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestGetBookByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetBookByID(42)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListBooks(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("empty collection", func(t *testing.T) {
		books, total, err := repo.ListBooks(database.NewPage(1, 10))
		require.NoError(t, err)
		assert.Empty(t, books)
		assert.NotNil(t, books)
		assert.Zero(t, total)
	})

	for i := 0; i < 25; i++ {
		seedBooks(t, repo, entities.Book{Title: "Volume", Author: "Series Author", Year: intPtr(2000 + i)})
	}

	t.Run("first page is ordered by id", func(t *testing.T) {
		books, total, err := repo.ListBooks(database.NewPage(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		require.Len(t, books, 10)
		for i := 1; i < len(books); i++ {
			assert.Less(t, books[i-1].ID, books[i].ID)
		}
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		books, total, err := repo.ListBooks(database.NewPage(3, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Len(t, books, 5)
	})

	t.Run("page past the end is empty but keeps the total", func(t *testing.T) {
		books, total, err := repo.ListBooks(database.NewPage(9, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Empty(t, books)
	})
}

func TestSearchBooks(t *testing.T) {
	repo := setupTestRepo(t)
	seedBooks(t, repo,
		entities.Book{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: intPtr(1937)},
		entities.Book{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Year: intPtr(1954)},
		entities.Book{Title: "Dune", Author: "Frank Herbert", Year: intPtr(1965)},
		entities.Book{Title: "100% Pure", Author: "Anon"},
	)
	page := database.NewPage(1, 10)

	tests := []struct {
		name   string
		filter entities.BookFilter
		titles []string
	}{
		{"title is case-insensitive substring", entities.BookFilter{Title: "HOBBIT"}, []string{"The Hobbit"}},
		{"author substring", entities.BookFilter{Author: "tolkien"}, []string{"The Hobbit", "The Lord of the Rings"}},
		{"exact year", entities.BookFilter{Year: intPtr(1965)}, []string{"Dune"}},
		{"year range", entities.BookFilter{YearFrom: intPtr(1940), YearTo: intPtr(1970)}, []string{"The Lord of the Rings", "Dune"}},
		{"lower bound only", entities.BookFilter{YearFrom: intPtr(1950)}, []string{"The Lord of the Rings", "Dune"}},
		{"upper bound only", entities.BookFilter{YearTo: intPtr(1940)}, []string{"The Hobbit"}},
		{"criteria are combined", entities.BookFilter{Author: "tolkien", YearFrom: intPtr(1950)}, []string{"The Lord of the Rings"}},
		{"wildcards match literally", entities.BookFilter{Title: "%"}, []string{"100% Pure"}},
		{"no match", entities.BookFilter{Title: "Neuromancer"}, nil},
		{"no criteria returns everything", entities.BookFilter{}, []string{"The Hobbit", "The Lord of the Rings", "Dune", "100% Pure"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, total, err := repo.SearchBooks(tt.filter, page)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.titles)), total)

			var titles []string
			for _, b := range books {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestUpdateBook(t *testing.T) {
	repo := setupTestRepo(t)
	book := seedBooks(t, repo, entities.Book{Title: "Dune", Author: "Frank Herbert", Year: intPtr(1965)})[0]

	t.Run("changes only supplied fields", func(t *testing.T) {
		updated, err := repo.UpdateBook(book.ID, entities.BookPatch{Title: strPtr(" Dune Messiah ")})
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", updated.Title)
		assert.Equal(t, "Frank Herbert", updated.Author)
		assert.Equal(t, 1965, *updated.Year)
	})

	t.Run("empty patch returns the current book", func(t *testing.T) {
		updated, err := repo.UpdateBook(book.ID, entities.BookPatch{})
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", updated.Title)
	})

	t.Run("invalid patch leaves the row untouched", func(t *testing.T) {
		_, err := repo.UpdateBook(book.ID, entities.BookPatch{Author: strPtr(""), Year: intPtr(1969)})
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)

		stored, err := repo.GetBookByID(book.ID)
		require.NoError(t, err)
		assert.Equal(t, "Frank Herbert", stored.Author)
		assert.Equal(t, 1965, *stored.Year)
	})

	t.Run("missing book", func(t *testing.T) {
		_, err := repo.UpdateBook(book.ID+100, entities.BookPatch{Title: strPtr("Nope")})
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	repo := setupTestRepo(t)
	book := seedBooks(t, repo, entities.Book{Title: "Dune", Author: "Frank Herbert"})[0]

	require.NoError(t, repo.DeleteBook(book.ID))

	_, err := repo.GetBookByID(book.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteBook(book.ID), database.ErrNotFound)
}
