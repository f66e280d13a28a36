package catalog

import (
	"testing"

	"campus-libsys/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSortedKeepsAscendingOrder(t *testing.T) {
	c := New()
	for _, id := range []int{42, 7, 19, 1, 100, 3} {
		require.NoError(t, c.InsertSorted(domain.NewBook(id, "t", "a", 1)))
	}

	books := c.Books()
	require.Len(t, books, 6)
	for i := 1; i < len(books); i++ {
		assert.Greater(t, books[i].ID, books[i-1].ID)
	}
}

func TestInsertSortedRejectsDuplicateID(t *testing.T) {
	c := New()
	require.NoError(t, c.InsertSorted(domain.NewBook(5, "first", "a", 1)))

	err := c.InsertSorted(domain.NewBook(5, "second", "b", 1))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "first", c.FindByID(5).Title)
}

func TestFindByID(t *testing.T) {
	c := New()
	require.NoError(t, c.InsertSorted(domain.NewBook(1, "t", "a", 1)))
	require.NoError(t, c.InsertSorted(domain.NewBook(3, "t", "a", 1)))

	assert.NotNil(t, c.FindByID(3))
	assert.Nil(t, c.FindByID(2))
}

func TestDeleteByID(t *testing.T) {
	c := New()
	for _, id := range []int{1, 2, 3} {
		require.NoError(t, c.InsertSorted(domain.NewBook(id, "t", "a", 1)))
	}

	assert.True(t, c.DeleteByID(2))
	assert.False(t, c.DeleteByID(2))
	assert.Nil(t, c.FindByID(2))
	assert.Equal(t, 2, c.Len())

	books := c.Books()
	assert.Equal(t, 1, books[0].ID)
	assert.Equal(t, 3, books[1].ID)
}

func TestSortInvariantUnderChurn(t *testing.T) {
	c := New()
	for _, id := range []int{8, 2, 9, 4, 6, 1, 7} {
		require.NoError(t, c.InsertSorted(domain.NewBook(id, "t", "a", 1)))
	}
	c.DeleteByID(4)
	c.DeleteByID(8)
	require.NoError(t, c.InsertSorted(domain.NewBook(5, "t", "a", 1)))
	require.NoError(t, c.InsertSorted(domain.NewBook(3, "t", "a", 1)))

	books := c.Books()
	for i := 1; i < len(books); i++ {
		assert.Greater(t, books[i].ID, books[i-1].ID)
	}
}

func TestSearch(t *testing.T) {
	c := New()
	require.NoError(t, c.InsertSorted(domain.NewBook(1, "The Go Programming Language", "Alan Donovan", 1)))
	require.NoError(t, c.InsertSorted(domain.NewBook(2, "Learning Go", "Jon Bodner", 1)))
	require.NoError(t, c.InsertSorted(domain.NewBook(3, "The C Programming Language", "Brian Kernighan", 1)))

	testCases := []struct {
		name     string
		keyword  string
		field    SearchField
		expected []int
	}{
		{"title substring", "Programming", FieldTitle, []int{1, 3}},
		{"title exact word", "Learning", FieldTitle, []int{2}},
		{"author substring", "Donovan", FieldAuthor, []int{1}},
		{"case sensitive", "programming", FieldTitle, nil},
		{"no match", "Rust", FieldTitle, nil},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for _, b := range c.Search(tt.keyword, tt.field) {
				got = append(got, b.ID)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSearchField(t *testing.T) {
	f, err := ParseSearchField("title")
	require.NoError(t, err)
	assert.Equal(t, FieldTitle, f)

	f, err = ParseSearchField("author")
	require.NoError(t, err)
	assert.Equal(t, FieldAuthor, f)

	_, err = ParseSearchField("isbn")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
