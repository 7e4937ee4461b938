package game

// queue is a FIFO ring buffer. Only the front can be inspected or removed,
// which is what restricts judgement and timeouts to the oldest note.
type queue[T any] struct {
	items []T
	head  int
	size  int
}

func newQueue[T any](capacity int) *queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &queue[T]{items: make([]T, capacity)}
}

func (q *queue[T]) Len() int {
	return q.size
}

func (q *queue[T]) PushBack(v T) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = v
	q.size++
}

func (q *queue[T]) Front() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	return q.items[q.head], true
}

func (q *queue[T]) PopFront() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return v, true
}

// Each visits every element front to back.
func (q *queue[T]) Each(fn func(T)) {
	for i := 0; i < q.size; i++ {
		fn(q.items[(q.head+i)%len(q.items)])
	}
}

func (q *queue[T]) grow() {
	items := make([]T, len(q.items)*2)
	for i := 0; i < q.size; i++ {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items = items
	q.head = 0
}
