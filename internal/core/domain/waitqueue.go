package domain

// WaitQueue is the FIFO of borrower ids waiting for a copy of one book.
// A borrower appears at most once; callers check Contains before Enqueue.
type WaitQueue struct {
	ids []string
}

// Contains reports whether borrowerID is anywhere in the queue.
func (q *WaitQueue) Contains(borrowerID string) bool {
	for _, id := range q.ids {
		if id == borrowerID {
			return true
		}
	}
	return false
}

// Enqueue appends borrowerID at the tail.
func (q *WaitQueue) Enqueue(borrowerID string) {
	q.ids = append(q.ids, borrowerID)
}

// Dequeue removes and returns the head of the queue. The second return is
// false when the queue is empty.
func (q *WaitQueue) Dequeue() (string, bool) {
	if len(q.ids) == 0 {
		return "", false
	}
	head := q.ids[0]
	q.ids = q.ids[1:]
	return head, true
}

// Size returns the number of waiting borrowers. A borrower's 1-based queue
// position right after Enqueue equals Size.
func (q *WaitQueue) Size() int {
	return len(q.ids)
}
