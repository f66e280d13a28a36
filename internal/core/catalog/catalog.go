package catalog

import (
	"sort"
	"strings"

	"campus-libsys/internal/core/domain"
)

// SearchField selects which book attribute a keyword search matches against.
type SearchField string

const (
	FieldTitle  SearchField = "title"
	FieldAuthor SearchField = "author"
)

// ParseSearchField validates a field name from the boundary.
func ParseSearchField(s string) (SearchField, error) {
	switch SearchField(s) {
	case FieldTitle, FieldAuthor:
		return SearchField(s), nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// Catalog is the ordered set of books, ascending by id at all times. New
// entries are inserted in position, never appended and re-sorted.
type Catalog struct {
	books []*domain.Book
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// FindByID returns the book with the given id, or nil.
func (c *Catalog) FindByID(id int) *domain.Book {
	i := sort.Search(len(c.books), func(i int) bool { return c.books[i].ID >= id })
	if i < len(c.books) && c.books[i].ID == id {
		return c.books[i]
	}
	return nil
}

// InsertSorted places b at its ordered position. An id collision is rejected
// with ErrDuplicateID.
func (c *Catalog) InsertSorted(b *domain.Book) error {
	i := sort.Search(len(c.books), func(i int) bool { return c.books[i].ID >= b.ID })
	if i < len(c.books) && c.books[i].ID == b.ID {
		return domain.ErrDuplicateID
	}
	c.books = append(c.books, nil)
	copy(c.books[i+1:], c.books[i:])
	c.books[i] = b
	return nil
}

// DeleteByID removes the book together with its waiting list and ledger.
// Returns false when the id is unknown.
func (c *Catalog) DeleteByID(id int) bool {
	i := sort.Search(len(c.books), func(i int) bool { return c.books[i].ID >= id })
	if i >= len(c.books) || c.books[i].ID != id {
		return false
	}
	c.books = append(c.books[:i], c.books[i+1:]...)
	return true
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns the catalog in ascending-id order.
func (c *Catalog) Books() []*domain.Book {
	out := make([]*domain.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Search returns every book whose field contains keyword as a case-sensitive
// substring, in catalog order. No match is an empty result, not an error.
func (c *Catalog) Search(keyword string, field SearchField) []*domain.Book {
	var out []*domain.Book
	for _, b := range c.books {
		var value string
		switch field {
		case FieldTitle:
			value = b.Title
		case FieldAuthor:
			value = b.Author
		}
		if strings.Contains(value, keyword) {
			out = append(out, b)
		}
	}
	return out
}
