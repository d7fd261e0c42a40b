package queue

import "iter"

var _ Queue[int] = (*Ring[int])(nil)

// minRingCap is the smallest capacity a Ring can be created with.
const minRingCap = 1

// Ring is a fixed-capacity FIFO queue backed by a circular slice.
// Unlike buffer rings it never grows: Enqueue on a full ring fails.
// It is NOT thread-safe.
type Ring[T any] struct {
	items []T
	front int // next position to dequeue from
	back  int // next position to enqueue into
	count int // number of live items
}

// NewRing creates a Ring holding at most capacity items.
// The capacity is exact; values below 1 are raised to 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < minRingCap {
		capacity = minRingCap
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Enqueue appends item at the back. Returns false if the ring is full.
func (r *Ring[T]) Enqueue(item T) bool {
	if r.IsFull() {
		return false
	}

	r.items[r.back] = item
	r.back = r.wrapIndex(r.back + 1)
	r.count++
	return true
}

// Dequeue removes and returns the item at the front.
// Returns (zero, false) if the ring is empty.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.IsEmpty() {
		return zero, false
	}

	item := r.items[r.front]
	r.items[r.front] = zero // drop the reference
	r.front = r.wrapIndex(r.front + 1)
	r.count--
	return item, true
}

// Peek returns the item at the front without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.IsEmpty() {
		var zero T
		return zero, false
	}
	return r.items[r.front], true
}

// Len returns the number of queued items.
func (r *Ring[T]) Len() int {
	return r.count
}

// Capacity returns the maximum number of items the ring can hold.
func (r *Ring[T]) Capacity() uint64 {
	return uint64(len(r.items))
}

// Available returns the number of free slots.
func (r *Ring[T]) Available() int {
	return len(r.items) - r.count
}

// IsEmpty reports whether the ring holds no items.
func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the ring holds Capacity items.
func (r *Ring[T]) IsFull() bool {
	return r.count == len(r.items)
}

// All iterates over the queued items from front to back.
// The index yielded is the logical position, 0 being the front.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := r.front
		for i := 0; i < r.count; i++ {
			if !yield(i, r.items[idx]) {
				return
			}
			idx = r.wrapIndex(idx + 1)
		}
	}
}

// Items returns a copy of the queued items in front-to-back order.
func (r *Ring[T]) Items() []T {
	if r.IsEmpty() {
		return nil
	}

	result := make([]T, 0, r.count)
	for _, item := range r.All() {
		result = append(result, item)
	}
	return result
}

// Reset clears the ring and resets all indices.
func (r *Ring[T]) Reset() {
	clear(r.items)
	r.front = 0
	r.back = 0
	r.count = 0
}

// wrapIndex returns the index wrapped within the ring capacity.
func (r *Ring[T]) wrapIndex(idx int) int {
	return idx % len(r.items)
}
