package handlers

import (
	"errors"

	"campus-libsys/internal/core/domain"
	"campus-libsys/internal/core/services"
	"campus-libsys/internal/pkg/calendar"
	"campus-libsys/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LendingHandler handles issue and return endpoints
type LendingHandler struct {
	lendingService *services.LendingService
}

// NewLendingHandler creates a new lending handler
func NewLendingHandler(lendingService *services.LendingService) *LendingHandler {
	return &LendingHandler{
		lendingService: lendingService,
	}
}

// LendingRequest represents an issue or return request body. Students act
// for themselves, so their borrower_id is taken from the session instead.
type LendingRequest struct {
	BookID     int           `json:"book_id"`
	BorrowerID string        `json:"borrower_id"`
	Date       calendar.Date `json:"date"`
}

// resolveBorrower picks the borrower id for the request. A STUDENT always
// acts as themselves; librarians and admins name the borrower in the body.
func resolveBorrower(c *fiber.Ctx, req *LendingRequest) (string, error) {
	role, _ := c.Locals("role").(string)
	if role == string(domain.RoleStudent) {
		username, ok := c.Locals("username").(string)
		if !ok || username == "" {
			return "", errors.New("missing session user")
		}
		return username, nil
	}

	if req.BorrowerID == "" {
		return "", errors.New("borrower_id is required")
	}
	return req.BorrowerID, nil
}

// Issue grants a copy to the borrower, or queues them when no copy is free
func (h *LendingHandler) Issue(c *fiber.Ctx) error {
	var req LendingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	borrowerID, err := resolveBorrower(c, &req)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.lendingService.Issue(req.BookID, borrowerID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return response.NotFound(c, "Book not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid borrower or date")
		case errors.Is(err, domain.ErrAlreadyIssued):
			return response.Conflict(c, "Borrower already holds a copy of this book")
		case errors.Is(err, domain.ErrAlreadyQueued):
			return response.Conflict(c, "Borrower is already on the waiting list")
		default:
			return response.InternalServerError(c, "Failed to issue book")
		}
	}

	if result.Status == services.StatusQueued {
		return response.Success(c, "All copies are out, borrower added to waiting list", result)
	}
	return response.Success(c, "Book issued successfully", result)
}

// Return takes the borrower's copy back and reports any late fine
func (h *LendingHandler) Return(c *fiber.Ctx) error {
	var req LendingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	borrowerID, err := resolveBorrower(c, &req)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.lendingService.Return(req.BookID, borrowerID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return response.NotFound(c, "Book not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid borrower or date")
		case errors.Is(err, domain.ErrNoActiveLoan):
			return response.Conflict(c, "Borrower has no active loan for this book")
		default:
			return response.InternalServerError(c, "Failed to return book")
		}
	}

	return response.Success(c, "Book returned successfully", result)
}
