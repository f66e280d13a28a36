package handlers

import (
	"errors"

	"campus-libsys/internal/core/domain"
	"campus-libsys/internal/core/services"
	"campus-libsys/internal/pkg/pagination"
	"campus-libsys/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles catalog maintenance endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// List returns the catalog in ascending-id order. Without page/limit query
// params the full listing is returned.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	books := h.catalogService.ListBooks()
	page := pagination.Slice(books, params)

	return response.Success(c, "Books retrieved successfully",
		pagination.NewResponse(page, params, len(books)))
}

// Get returns one title with its waiting and issued counts
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid book id")
	}

	detail, err := h.catalogService.GetBook(id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return response.NotFound(c, "Book not found")
		}
		return response.InternalServerError(c, "Failed to retrieve book")
	}

	return response.Success(c, "Book retrieved successfully", detail)
}

// Search returns books whose chosen field contains the keyword
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("q")
	field := c.Query("field", "title")

	if keyword == "" {
		return response.BadRequest(c, "Query parameter 'q' is required")
	}

	books, err := h.catalogService.Search(keyword, field)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Field must be 'title' or 'author'")
		}
		return response.InternalServerError(c, "Failed to search books")
	}

	return response.Success(c, "Search completed successfully", fiber.Map{
		"books": books,
		"count": len(books),
	})
}

// Create adds a new title to the catalog
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var input services.AddBookInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	book, err := h.catalogService.AddBook(&input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Book id and total copies must be positive")
		case errors.Is(err, domain.ErrDuplicateID):
			return response.Conflict(c, "A book with this id already exists")
		default:
			return response.InternalServerError(c, "Failed to add book")
		}
	}

	return response.Created(c, "Book added successfully", book)
}

// Delete removes a title from the catalog
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid book id")
	}

	if err := h.catalogService.DeleteBook(id); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return response.NotFound(c, "Book not found")
		}
		return response.InternalServerError(c, "Failed to delete book")
	}

	return response.Success(c, "Book deleted successfully", nil)
}

// Save writes the catalog back to the book file on demand
func (h *CatalogHandler) Save(c *fiber.Ctx) error {
	if err := h.catalogService.Save(); err != nil {
		return response.InternalServerError(c, "Failed to save catalog")
	}

	return response.Success(c, "Catalog saved successfully", nil)
}
