// Package ring provides a fixed-capacity FIFO buffer.
package ring

// Buffer holds the most recent Cap() values pushed into it. Once full,
// each Push evicts the oldest value.
type Buffer[T any] struct {
	data []T
	pos  int
	full bool
}

// New creates a Buffer with the given capacity. Capacity below one is
// treated as one.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// Push appends v, evicting the oldest value when the buffer is full.
func (b *Buffer[T]) Push(v T) {
	b.data[b.pos] = v
	b.pos++
	if b.pos >= len(b.data) {
		b.pos = 0
		b.full = true
	}
}

// Len returns the number of values held.
func (b *Buffer[T]) Len() int {
	if b.full {
		return len(b.data)
	}
	return b.pos
}

func (b *Buffer[T]) Cap() int { return len(b.data) }

// At returns the i-th value in chronological order, 0 being the oldest.
func (b *Buffer[T]) At(i int) T {
	if b.full {
		return b.data[(b.pos+i)%len(b.data)]
	}
	return b.data[i]
}

// Last returns the newest value and false when the buffer is empty.
func (b *Buffer[T]) Last() (T, bool) {
	var zero T
	n := b.Len()
	if n == 0 {
		return zero, false
	}
	return b.At(n - 1), true
}

// Slice returns the buffer contents in insertion order.
func (b *Buffer[T]) Slice() []T {
	n := b.Len()
	out := make([]T, n)
	if b.full {
		copy(out, b.data[b.pos:])
		copy(out[len(b.data)-b.pos:], b.data[:b.pos])
	} else {
		copy(out, b.data[:b.pos])
	}
	return out
}

// Reset empties the buffer without releasing its storage.
func (b *Buffer[T]) Reset() {
	b.pos = 0
	b.full = false
}
