package repositories

import (
	"campus-libsys/internal/core/catalog"
	"campus-libsys/internal/core/domain"
)

// BookRepository defines the catalog store interface. The catalog lives in
// memory and is loaded and saved wholesale against a flat file.
type BookRepository interface {
	GetByID(id int) (*domain.Book, error)
	Insert(book *domain.Book) error
	Delete(id int) error
	List() []*domain.Book
	Search(keyword string, field catalog.SearchField) []*domain.Book
	// Update runs fn on the addressed book under the store lock, so
	// check-then-mutate sequences in the lending flow are one atomic step.
	Update(id int, fn func(*domain.Book) error) error
	LoadAll() error
	SaveAll() error
}

// UserRepository defines the operator-account store interface backing the
// access-control layer.
type UserRepository interface {
	GetByUsername(username string) (*domain.User, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *domain.User) error
	EnsureDefaults() error
}
