package domain

import "campus-libsys/internal/pkg/calendar"

// LoanRecord is one active loan of one book copy.
type LoanRecord struct {
	BorrowerID string        `json:"borrower_id"`
	IssueDate  calendar.Date `json:"issue_date"`
	DueDate    calendar.Date `json:"due_date"`
}

// LoanLedger holds the active loans of one book, at most one record per
// borrower.
type LoanLedger struct {
	records []LoanRecord
}

// Find returns the borrower's active loan, or nil.
func (l *LoanLedger) Find(borrowerID string) *LoanRecord {
	for i := range l.records {
		if l.records[i].BorrowerID == borrowerID {
			return &l.records[i]
		}
	}
	return nil
}

// Add inserts a new active loan. Callers guarantee the borrower has no
// existing record.
func (l *LoanLedger) Add(borrowerID string, issueDate, dueDate calendar.Date) {
	l.records = append(l.records, LoanRecord{
		BorrowerID: borrowerID,
		IssueDate:  issueDate,
		DueDate:    dueDate,
	})
}

// Remove deletes and returns the borrower's loan. The second return is false
// when the borrower has no active loan.
func (l *LoanLedger) Remove(borrowerID string) (LoanRecord, bool) {
	for i := range l.records {
		if l.records[i].BorrowerID == borrowerID {
			rec := l.records[i]
			l.records = append(l.records[:i], l.records[i+1:]...)
			return rec, true
		}
	}
	return LoanRecord{}, false
}

// Count returns the number of active loans.
func (l *LoanLedger) Count() int {
	return len(l.records)
}

// Records returns a copy of the active loans.
func (l *LoanLedger) Records() []LoanRecord {
	out := make([]LoanRecord, len(l.records))
	copy(out, l.records)
	return out
}
