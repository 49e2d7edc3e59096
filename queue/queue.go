package queue

import "github.com/mgnsk/collections/linkedlist"

// Queue is a first in, first out container.
//
// The zero value is a ready to use empty queue.
type Queue[V any] struct {
	elements linkedlist.List[V]
}

// Len returns the number of values in the queue.
func (q *Queue[V]) Len() int {
	return q.elements.Len()
}

// IsEmpty reports whether the queue is empty.
func (q *Queue[V]) IsEmpty() bool {
	return q.elements.Len() == 0
}

// Enqueue adds a value to the back of the queue.
func (q *Queue[V]) Enqueue(value V) {
	q.elements.PushBack(value)
}

// Dequeue removes and returns the value at the front of the queue,
// or a zero value and false if the queue is empty.
func (q *Queue[V]) Dequeue() (V, bool) {
	return q.elements.PopFront()
}

// PeekFront returns the value at the front of the queue,
// or a zero value and false if the queue is empty.
func (q *Queue[V]) PeekFront() (V, bool) {
	if e := q.elements.Front(); e != nil {
		return e.Value, true
	}

	var zero V
	return zero, false
}

// PeekBack returns the value at the back of the queue,
// or a zero value and false if the queue is empty.
func (q *Queue[V]) PeekBack() (V, bool) {
	if e := q.elements.Back(); e != nil {
		return e.Value, true
	}

	var zero V
	return zero, false
}

// Drain removes all values from the queue.
func (q *Queue[V]) Drain() {
	q.elements.Clear()
}
