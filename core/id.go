package core

// ID identifies a Point or a Link; one sequence serves both kinds
type ID uint64

// IDAllocator hands out monotonically increasing ids
// Owned by a session, never shared between sessions
type IDAllocator struct {
	start ID
	next  ID
}

// NewIDAllocator creates an allocator whose first id is start
func NewIDAllocator(start ID) *IDAllocator {
	return &IDAllocator{start: start, next: start}
}

// Next returns a fresh id
func (a *IDAllocator) Next() ID {
	id := a.next
	a.next++
	return id
}

// Peek returns the id the next call to Next will return
func (a *IDAllocator) Peek() ID {
	return a.next
}

// Reset rewinds to the seeded start, only valid when no entity from the previous run survives
func (a *IDAllocator) Reset() {
	a.next = a.start
}
