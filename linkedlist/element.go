package linkedlist

// Element is a list element.
//
// A detached element has nil links. Once linked into a list,
// an element's links are repaired on every insert and remove
// so that next and prev always point to the current neighbors.
type Element[V any] struct {
	next, prev *Element[V]
	Value      V
}

// NewElement creates a detached list element.
func NewElement[V any](v V) *Element[V] {
	return &Element[V]{
		Value: v,
	}
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the previous element or nil if e is the first element in its list.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// insertBefore links a detached element s into the chain before e.
// s's own links are written before the neighbors' links so that a
// half-applied splice is never reachable from the chain.
func (e *Element[V]) insertBefore(s *Element[V]) {
	s.prev = e.prev
	s.next = e
	if e.prev != nil {
		e.prev.next = s
	}
	e.prev = s
}

// insertAfter links a detached element s into the chain after e.
func (e *Element[V]) insertAfter(s *Element[V]) {
	s.next = e.next
	s.prev = e
	if e.next != nil {
		e.next.prev = s
	}
	e.next = s
}

// unlink removes e from its chain and detaches e's own links
// so that a removed element cannot reach the chain.
func (e *Element[V]) unlink() {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.next = nil
	e.prev = nil
}
