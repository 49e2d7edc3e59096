package linkedlist

import (
	"fmt"
	"strings"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head *Element[V]
	tail *Element[V]
	len  int
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := NewElement(value)
	if l.head != nil {
		l.head.insertBefore(e)
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
	return e
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	if l.tail != nil {
		l.tail.insertAfter(e)
	} else {
		l.head = e
	}
	l.tail = e
	l.len++
	return e
}

// Insert inserts a value at position index, shifting the elements
// at index and after it one position towards the back.
// Index 0 inserts at the front and index Len() appends at the back.
// It returns ErrIndexOutOfRange without modifying the list
// if index is negative or greater than Len().
func (l *List[V]) Insert(index int, value V) error {
	if index < 0 || index > l.len {
		return ErrIndexOutOfRange
	}

	switch index {
	case 0:
		l.PushFront(value)

	case l.len:
		l.PushBack(value)

	default:
		// The new element's successor. The walk stays strictly inside
		// the chain: 0 < index < len.
		succ := l.head
		for i := 0; i < index; i++ {
			succ = succ.next
		}

		succ.insertBefore(NewElement(value))
		l.len++
	}

	return nil
}

// PopFront removes the first element of the list and returns its value,
// or a zero value and false if the list is empty.
func (l *List[V]) PopFront() (V, bool) {
	if l.head == nil {
		var zero V
		return zero, false
	}

	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	}
	e.unlink()
	l.len--

	return e.Value, true
}

// PopBack removes the last element of the list and returns its value,
// or a zero value and false if the list is empty.
func (l *List[V]) PopBack() (V, bool) {
	if l.tail == nil {
		var zero V
		return zero, false
	}

	e := l.tail
	l.tail = e.prev
	if l.tail == nil {
		l.head = nil
	}
	e.unlink()
	l.len--

	return e.Value, true
}

// Remove removes the element at position index and returns its value.
// Index 0 removes the front element. Both Len()-1 and Len() address
// the back element: removing at index Len() is accepted as "remove last".
// It returns ErrIndexOutOfRange without modifying the list if index is
// negative or greater than Len(), and ErrEmptyList if the list is empty.
func (l *List[V]) Remove(index int) (V, error) {
	var zero V

	if index < 0 || index > l.len {
		return zero, ErrIndexOutOfRange
	}

	if l.len == 0 {
		return zero, ErrEmptyList
	}

	switch index {
	case 0:
		v, _ := l.PopFront()
		return v, nil

	case l.len:
		v, _ := l.PopBack()
		return v, nil

	default:
		e := l.head
		for i := 0; i < index; i++ {
			e = e.next
		}

		if e == l.tail {
			l.tail = e.prev
		}
		e.unlink()
		l.len--

		return e.Value, nil
	}
}

// Get returns the value at position index,
// or a zero value and false if index is out of range.
func (l *List[V]) Get(index int) (V, bool) {
	if index < 0 || index >= l.len {
		var zero V
		return zero, false
	}

	e := l.head
	for i := 0; i < index; i++ {
		e = e.next
	}

	return e.Value, true
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.head; e != nil; e = e.next {
		if !f(e) {
			return
		}
	}
}

// Values returns the values of the list in forward order.
func (l *List[V]) Values() []V {
	if l.len == 0 {
		return nil
	}

	values := make([]V, 0, l.len)
	for e := l.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}

	return values
}

// String renders the values of the list in forward order,
// separated by comma and space. An empty list renders as "".
func (l *List[V]) String() string {
	var sb strings.Builder

	for e := l.head; e != nil; e = e.next {
		if e != l.head {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e.Value)
	}

	return sb.String()
}

// Clear removes all elements from the list by popping from the front
// until the list is empty, detaching every element from the chain.
func (l *List[V]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			return
		}
	}
}
