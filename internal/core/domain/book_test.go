package domain

import (
	"testing"

	"campus-libsys/internal/pkg/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitQueueFIFO(t *testing.T) {
	var q WaitQueue

	q.Enqueue("S1")
	q.Enqueue("S2")
	q.Enqueue("S3")
	assert.Equal(t, 3, q.Size())
	assert.True(t, q.Contains("S2"))
	assert.False(t, q.Contains("S4"))

	for _, expected := range []string{"S1", "S2", "S3"} {
		id, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, expected, id)
	}

	_, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Size())
}

func TestLoanLedger(t *testing.T) {
	var l LoanLedger
	issue := calendar.Date{Day: 1, Month: 1, Year: 2024}
	due := calendar.AddDays(issue, 14)

	assert.Nil(t, l.Find("S1"))
	l.Add("S1", issue, due)
	l.Add("S2", issue, due)
	assert.Equal(t, 2, l.Count())

	rec := l.Find("S1")
	require.NotNil(t, rec)
	assert.Equal(t, due, rec.DueDate)

	removed, ok := l.Remove("S1")
	require.True(t, ok)
	assert.Equal(t, "S1", removed.BorrowerID)
	assert.Equal(t, 1, l.Count())
	assert.Nil(t, l.Find("S1"))

	_, ok = l.Remove("S1")
	assert.False(t, ok)
}

// copyInvariant asserts total - available == active loans, which must hold
// after every book mutation.
func copyInvariant(t *testing.T, b *Book) {
	t.Helper()
	assert.Equal(t, b.TotalCopies-b.AvailableCopies, b.Loans.Count())
	assert.GreaterOrEqual(t, b.AvailableCopies, 0)
	assert.LessOrEqual(t, b.AvailableCopies, b.TotalCopies)
}

func TestBookIssueAndRelease(t *testing.T) {
	b := NewBook(1, "The Go Programming Language", "Donovan", 2)
	issue := calendar.Date{Day: 1, Month: 1, Year: 2024}
	due := calendar.AddDays(issue, 14)

	assert.True(t, b.IsAvailable())
	copyInvariant(t, b)

	b.IssueTo("S1", issue, due)
	copyInvariant(t, b)
	assert.Equal(t, 1, b.AvailableCopies)

	b.IssueTo("S2", issue, due)
	copyInvariant(t, b)
	assert.False(t, b.IsAvailable())

	rec, ok := b.ReleaseFrom("S1")
	require.True(t, ok)
	assert.Equal(t, "S1", rec.BorrowerID)
	copyInvariant(t, b)
	assert.True(t, b.IsAvailable())

	_, ok = b.ReleaseFrom("S1")
	assert.False(t, ok)
	copyInvariant(t, b)
}

func TestBookHandOffKeepsCopyOffShelf(t *testing.T) {
	b := NewBook(1, "Clean Code", "Martin", 1)
	issue := calendar.Date{Day: 1, Month: 1, Year: 2024}
	due := calendar.AddDays(issue, 14)

	b.IssueTo("S1", issue, due)
	assert.Equal(t, 0, b.AvailableCopies)

	ret := calendar.Date{Day: 10, Month: 1, Year: 2024}
	newDue := calendar.AddDays(ret, 14)
	rec, ok := b.HandOffTo("S1", "S2", ret, newDue)
	require.True(t, ok)
	assert.Equal(t, "S1", rec.BorrowerID)

	// The copy went straight to S2 without ever becoming available.
	assert.Equal(t, 0, b.AvailableCopies)
	copyInvariant(t, b)

	loan := b.Loans.Find("S2")
	require.NotNil(t, loan)
	assert.Equal(t, ret, loan.IssueDate)
	assert.Equal(t, newDue, loan.DueDate)
}
