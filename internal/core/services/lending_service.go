package services

import (
	"log"

	"campus-libsys/internal/adapters/persistence/repositories"
	"campus-libsys/internal/config"
	"campus-libsys/internal/core/domain"
	"campus-libsys/internal/pkg/calendar"
)

// Issue outcome statuses
const (
	StatusIssued = "ISSUED"
	StatusQueued = "QUEUED"
)

// LendingService applies the issue/return state machine to the catalog.
// For a given (book, borrower) pair the only legal transitions are
// none→issued, none→queued, queued→issued and issued→none.
type LendingService struct {
	bookRepo   repositories.BookRepository
	loanDays   int
	finePerDay int
}

// NewLendingService creates a new lending service
func NewLendingService(bookRepo repositories.BookRepository, cfg *config.Config) *LendingService {
	return &LendingService{
		bookRepo:   bookRepo,
		loanDays:   cfg.Lending.LoanDays,
		finePerDay: cfg.Lending.FinePerDay,
	}
}

// IssueResult reports the outcome of an issue request: a due date when a
// copy was granted, or a 1-based waiting-list position when all copies are
// out.
type IssueResult struct {
	Status        string         `json:"status"`
	BookID        int            `json:"book_id"`
	BorrowerID    string         `json:"borrower_id"`
	DueDate       *calendar.Date `json:"due_date,omitempty"`
	QueuePosition int            `json:"queue_position,omitempty"`
}

// ReturnResult reports the fine and, when someone was waiting, the hand-off.
type ReturnResult struct {
	BookID      int            `json:"book_id"`
	BorrowerID  string         `json:"borrower_id"`
	DaysLate    int            `json:"days_late"`
	Fine        int            `json:"fine"`
	HandedOffTo string         `json:"handed_off_to,omitempty"`
	NewDueDate  *calendar.Date `json:"new_due_date,omitempty"`
}

// Issue grants a copy of the book to the borrower, or appends them to the
// waiting list when no copy is free.
func (s *LendingService) Issue(bookID int, borrowerID string, issueDate calendar.Date) (*IssueResult, error) {
	if borrowerID == "" || !calendar.Valid(issueDate) {
		return nil, domain.ErrInvalidInput
	}

	result := &IssueResult{BookID: bookID, BorrowerID: borrowerID}
	err := s.bookRepo.Update(bookID, func(b *domain.Book) error {
		if b.Loans.Find(borrowerID) != nil {
			return domain.ErrAlreadyIssued
		}

		if b.IsAvailable() {
			due := calendar.AddDays(issueDate, s.loanDays)
			b.IssueTo(borrowerID, issueDate, due)
			result.Status = StatusIssued
			result.DueDate = &due
			return nil
		}

		if b.WaitList.Contains(borrowerID) {
			return domain.ErrAlreadyQueued
		}
		b.WaitList.Enqueue(borrowerID)
		result.Status = StatusQueued
		result.QueuePosition = b.WaitList.Size()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Status == StatusIssued {
		log.Printf("✅ Book %d issued to %s, due %s", bookID, borrowerID, result.DueDate)
	} else {
		log.Printf("✅ Borrower %s queued for book %d at position %d", borrowerID, bookID, result.QueuePosition)
	}
	return result, nil
}

// Return takes the borrower's copy back, computes the late fine, and either
// hands the copy straight to the next waiting borrower or puts it back on
// the shelf.
func (s *LendingService) Return(bookID int, borrowerID string, returnDate calendar.Date) (*ReturnResult, error) {
	if borrowerID == "" || !calendar.Valid(returnDate) {
		return nil, domain.ErrInvalidInput
	}

	result := &ReturnResult{BookID: bookID, BorrowerID: borrowerID}
	err := s.bookRepo.Update(bookID, func(b *domain.Book) error {
		loan := b.Loans.Find(borrowerID)
		if loan == nil {
			return domain.ErrNoActiveLoan
		}

		if delay := calendar.DaysBetween(loan.DueDate, returnDate); delay > 0 {
			result.DaysLate = delay
			result.Fine = delay * s.finePerDay
		}

		if next, ok := b.WaitList.Dequeue(); ok {
			// The freed copy goes straight to the head of the queue and
			// never counts as available in between.
			due := calendar.AddDays(returnDate, s.loanDays)
			b.HandOffTo(borrowerID, next, returnDate, due)
			result.HandedOffTo = next
			result.NewDueDate = &due
			return nil
		}

		b.ReleaseFrom(borrowerID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.HandedOffTo != "" {
		log.Printf("✅ Book %d returned by %s (fine %d), handed off to %s, due %s",
			bookID, borrowerID, result.Fine, result.HandedOffTo, result.NewDueDate)
	} else {
		log.Printf("✅ Book %d returned by %s (fine %d)", bookID, borrowerID, result.Fine)
	}
	return result, nil
}
