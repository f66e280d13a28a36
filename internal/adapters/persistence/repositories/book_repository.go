package repositories

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"campus-libsys/internal/core/catalog"
	"campus-libsys/internal/core/domain"
)

// bookRepository implements BookRepository over an in-memory catalog backed
// by a pipe-delimited flat file: id|title|author|totalCopies|availableCopies.
type bookRepository struct {
	mu      sync.Mutex
	path    string
	catalog *catalog.Catalog
}

// NewBookRepository creates a book repository backed by the file at path.
func NewBookRepository(path string) BookRepository {
	return &bookRepository{
		path:    path,
		catalog: catalog.New(),
	}
}

// GetByID gets a book by id
func (r *bookRepository) GetByID(id int) (*domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.catalog.FindByID(id)
	if b == nil {
		return nil, domain.ErrBookNotFound
	}
	return b, nil
}

// Insert adds a new book at its sorted position
func (r *bookRepository) Insert(book *domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.InsertSorted(book)
}

// Delete removes a book together with its waiting list and ledger
func (r *bookRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.catalog.DeleteByID(id) {
		return domain.ErrBookNotFound
	}
	return nil
}

// List returns the whole catalog in ascending-id order
func (r *bookRepository) List() []*domain.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.Books()
}

// Search returns matching books in catalog order
func (r *bookRepository) Search(keyword string, field catalog.SearchField) []*domain.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.Search(keyword, field)
}

// Update runs fn on the addressed book under the store lock
func (r *bookRepository) Update(id int, fn func(*domain.Book) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.catalog.FindByID(id)
	if b == nil {
		return domain.ErrBookNotFound
	}
	return fn(b)
}

// LoadAll replaces the in-memory catalog with the file contents. A missing
// file is the empty catalog, not an error. Lines that fail to parse are
// skipped one by one; the rest of the file still loads.
func (r *bookRepository) LoadAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No book file at %s, starting with an empty catalog", r.path)
			r.catalog = catalog.New()
			return nil
		}
		return err
	}
	defer f.Close()

	loaded := catalog.New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		book := parseBookLine(line)
		if book == nil {
			continue
		}
		if err := loaded.InsertSorted(book); err != nil {
			log.Printf("⚠️ Skipping book line with duplicate id %d", book.ID)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	r.catalog = loaded
	return nil
}

// SaveAll writes the catalog wholesale in ascending-id order. Waiting lists
// and loan ledgers are session state and are not written.
func (r *bookRepository) SaveAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, b := range r.catalog.Books() {
		if _, err := fmt.Fprintln(w, formatBookLine(b)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// formatBookLine renders one book as id|title|author|total|available. The
// delimiter is not escaped inside fields.
func formatBookLine(b *domain.Book) string {
	return fmt.Sprintf("%d|%s|%s|%d|%d", b.ID, b.Title, b.Author, b.TotalCopies, b.AvailableCopies)
}

// parseBookLine parses one flat-file line. An empty leading field skips the
// whole line; integer fields that fail to parse come back as zero.
func parseBookLine(line string) *domain.Book {
	parts := strings.Split(line, "|")
	if parts[0] == "" {
		return nil
	}

	field := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	return &domain.Book{
		ID:              atoi(field(0)),
		Title:           field(1),
		Author:          field(2),
		TotalCopies:     atoi(field(3)),
		AvailableCopies: atoi(field(4)),
	}
}

// atoi parses an integer field, yielding zero for anything unparseable.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
