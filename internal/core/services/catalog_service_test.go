package services

import (
	"os"
	"path/filepath"
	"testing"

	"campus-libsys/internal/adapters/persistence/repositories"
	"campus-libsys/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*CatalogService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.txt")
	repo := repositories.NewBookRepository(path)
	return NewCatalogService(repo), path
}

func TestAddBook(t *testing.T) {
	svc, _ := newCatalogFixture(t)

	book, err := svc.AddBook(&AddBookInput{ID: 7, Title: "The Pragmatic Programmer", Author: "Hunt", TotalCopies: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, book.AvailableCopies)

	detail, err := svc.GetBook(7)
	require.NoError(t, err)
	assert.Equal(t, "The Pragmatic Programmer", detail.Title)
	assert.Equal(t, 0, detail.WaitingCount)
	assert.Equal(t, 0, detail.IssuedCount)
}

func TestAddBookValidation(t *testing.T) {
	svc, _ := newCatalogFixture(t)

	testCases := []struct {
		name  string
		input AddBookInput
	}{
		{"zero id", AddBookInput{ID: 0, Title: "t", Author: "a", TotalCopies: 1}},
		{"negative id", AddBookInput{ID: -3, Title: "t", Author: "a", TotalCopies: 1}},
		{"zero copies", AddBookInput{ID: 1, Title: "t", Author: "a", TotalCopies: 0}},
		{"negative copies", AddBookInput{ID: 1, Title: "t", Author: "a", TotalCopies: -2}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddBook(&tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAddBookDuplicateID(t *testing.T) {
	svc, _ := newCatalogFixture(t)

	_, err := svc.AddBook(&AddBookInput{ID: 1, Title: "t", Author: "a", TotalCopies: 1})
	require.NoError(t, err)

	_, err = svc.AddBook(&AddBookInput{ID: 1, Title: "t2", Author: "a2", TotalCopies: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestDeleteBook(t *testing.T) {
	svc, _ := newCatalogFixture(t)

	_, err := svc.AddBook(&AddBookInput{ID: 1, Title: "t", Author: "a", TotalCopies: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(1))
	assert.ErrorIs(t, svc.DeleteBook(1), domain.ErrBookNotFound)
	assert.Empty(t, svc.ListBooks())
}

func TestSearchByField(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	_, err := svc.AddBook(&AddBookInput{ID: 1, Title: "Go in Action", Author: "Kennedy", TotalCopies: 1})
	require.NoError(t, err)
	_, err = svc.AddBook(&AddBookInput{ID: 2, Title: "Designing Data-Intensive Applications", Author: "Kleppmann", TotalCopies: 1})
	require.NoError(t, err)

	matches, err := svc.Search("Action", "title")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].ID)

	matches, err = svc.Search("Kleppmann", "author")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].ID)

	// No match is an empty result, not an error.
	matches, err = svc.Search("Rust", "title")
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = svc.Search("x", "publisher")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	svc, path := newCatalogFixture(t)
	_, err := svc.AddBook(&AddBookInput{ID: 2, Title: "b", Author: "x", TotalCopies: 2})
	require.NoError(t, err)
	_, err = svc.AddBook(&AddBookInput{ID: 1, Title: "a", Author: "y", TotalCopies: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1|a|y|1|1\n2|b|x|2|2\n", string(data))

	require.NoError(t, svc.Load())
	books := svc.ListBooks()
	require.Len(t, books, 2)
	assert.Equal(t, 1, books[0].ID)
	assert.Equal(t, 2, books[1].ID)
}
