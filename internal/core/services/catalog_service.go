package services

import (
	"log"

	"campus-libsys/internal/adapters/persistence/repositories"
	"campus-libsys/internal/core/catalog"
	"campus-libsys/internal/core/domain"
)

// CatalogService handles catalog maintenance: add, delete, search, listing
// and the wholesale load/save points.
type CatalogService struct {
	bookRepo repositories.BookRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(bookRepo repositories.BookRepository) *CatalogService {
	return &CatalogService{
		bookRepo: bookRepo,
	}
}

// AddBookInput represents an add-book request
type AddBookInput struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	TotalCopies int    `json:"total_copies"`
}

// BookDetail is the full view of one title including session lending state.
type BookDetail struct {
	*domain.Book
	WaitingCount int `json:"waiting_count"`
	IssuedCount  int `json:"issued_count"`
}

// AddBook inserts a new title. All copies start on the shelf.
func (s *CatalogService) AddBook(input *AddBookInput) (*domain.Book, error) {
	if input.ID <= 0 || input.TotalCopies <= 0 {
		return nil, domain.ErrInvalidInput
	}

	book := domain.NewBook(input.ID, input.Title, input.Author, input.TotalCopies)
	if err := s.bookRepo.Insert(book); err != nil {
		return nil, err
	}

	log.Printf("✅ Book added: %d %q by %q (%d copies)", book.ID, book.Title, book.Author, book.TotalCopies)
	return book, nil
}

// DeleteBook removes a title and frees its waiting list and ledger.
func (s *CatalogService) DeleteBook(id int) error {
	if err := s.bookRepo.Delete(id); err != nil {
		return err
	}

	log.Printf("✅ Book deleted: %d", id)
	return nil
}

// GetBook returns one title with its waiting and issued counts.
func (s *CatalogService) GetBook(id int) (*BookDetail, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	return &BookDetail{
		Book:         book,
		WaitingCount: book.WaitingCount(),
		IssuedCount:  book.Loans.Count(),
	}, nil
}

// ListBooks returns the whole catalog in ascending-id order.
func (s *CatalogService) ListBooks() []*domain.Book {
	return s.bookRepo.List()
}

// Search returns books matching the keyword on the given field, in catalog
// order. No match is an empty result, not an error.
func (s *CatalogService) Search(keyword, field string) ([]*domain.Book, error) {
	f, err := catalog.ParseSearchField(field)
	if err != nil {
		return nil, err
	}
	return s.bookRepo.Search(keyword, f), nil
}

// Load replaces the in-memory catalog from the book file.
func (s *CatalogService) Load() error {
	return s.bookRepo.LoadAll()
}

// Save writes the catalog back to the book file wholesale.
func (s *CatalogService) Save() error {
	if err := s.bookRepo.SaveAll(); err != nil {
		return err
	}

	log.Println("✅ Catalog saved")
	return nil
}
