package domain

import "campus-libsys/internal/pkg/calendar"

// Book is one catalog entry together with its waiting list and active loans.
// The waiting list and ledger are session state: they are not persisted and
// start empty after a reload.
type Book struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`

	WaitList WaitQueue  `json:"-"`
	Loans    LoanLedger `json:"-"`
}

// NewBook creates a catalog entry with all copies on the shelf.
func NewBook(id int, title, author string, totalCopies int) *Book {
	return &Book{
		ID:              id,
		Title:           title,
		Author:          author,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
	}
}

// IsAvailable reports whether at least one copy is on the shelf.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// IssueTo records a loan and takes one copy off the shelf. The ledger insert
// and the counter decrement always happen together, keeping
// TotalCopies - AvailableCopies == Loans.Count().
func (b *Book) IssueTo(borrowerID string, issueDate, dueDate calendar.Date) {
	b.Loans.Add(borrowerID, issueDate, dueDate)
	b.AvailableCopies--
}

// ReleaseFrom removes the borrower's loan and puts the copy back on the
// shelf.
func (b *Book) ReleaseFrom(borrowerID string) (LoanRecord, bool) {
	rec, ok := b.Loans.Remove(borrowerID)
	if !ok {
		return LoanRecord{}, false
	}
	b.AvailableCopies++
	return rec, true
}

// HandOffTo moves a returned copy straight to the next waiting borrower.
// The copy never counts as available in between.
func (b *Book) HandOffTo(from, to string, issueDate, dueDate calendar.Date) (LoanRecord, bool) {
	rec, ok := b.Loans.Remove(from)
	if !ok {
		return LoanRecord{}, false
	}
	b.Loans.Add(to, issueDate, dueDate)
	return rec, true
}

// WaitingCount returns the length of the waiting list.
func (b *Book) WaitingCount() int {
	return b.WaitList.Size()
}
