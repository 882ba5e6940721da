package target

// ring is a fixed-capacity circular buffer. When full, a push overwrites the
// oldest entry, so the buffer always holds the most recent values.
type ring[T any] struct {
	data  []T
	head  int
	count int
	size  int
}

// newRing creates a ring buffer with the specified capacity.
func newRing[T any](size int) *ring[T] {
	return &ring[T]{
		data: make([]T, size),
		size: size,
	}
}

// push adds a value, evicting the oldest entry when the buffer is full.
func (r *ring[T]) push(value T) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// last returns the last count values in chronological order (oldest first).
// Returns fewer values if not enough history is available.
func (r *ring[T]) last(count int) []T {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]T, count)

	// head points to the next write position, so the most recent value is at
	// head-1 and the window of 'count' values ends there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}

// all returns every stored value in chronological order.
func (r *ring[T]) all() []T {
	return r.last(r.count)
}

// len returns the number of stored values.
func (r *ring[T]) len() int {
	return r.count
}
