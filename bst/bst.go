package bst

import "cmp"

// Tree is a binary search tree.
//
// The zero value is a ready to use empty tree.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	len  int
}

type node[T cmp.Ordered] struct {
	left, right *node[T]
	value       T
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	return t.len
}

// Insert adds a value to the tree. Duplicate values are kept.
func (t *Tree[T]) Insert(value T) {
	t.root = insert(t.root, value)
	t.len++
}

func insert[T cmp.Ordered](n *node[T], value T) *node[T] {
	if n == nil {
		return &node[T]{value: value}
	}

	if value < n.value {
		n.left = insert(n.left, value)
	} else {
		n.right = insert(n.right, value)
	}

	return n
}

// Search reports whether value is in the tree.
func (t *Tree[T]) Search(value T) bool {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(value, n.value); {
		case c == 0:
			return true

		case c < 0:
			n = n.left

		default:
			n = n.right
		}
	}

	return false
}

// Min returns the smallest value in the tree,
// or a zero value and false if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.value, true
}

// Max returns the largest value in the tree,
// or a zero value and false if the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, true
}

// Floor returns the largest value in the tree that is less than or
// equal to value, or a zero value and false if no such value exists.
func (t *Tree[T]) Floor(value T) (T, bool) {
	if n := floor(t.root, value); n != nil {
		return n.value, true
	}

	var zero T
	return zero, false
}

func floor[T cmp.Ordered](n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}

	switch c := cmp.Compare(n.value, value); {
	case c == 0:
		return n

	case c > 0:
		return floor(n.left, value)

	default:
		// n.value < value: a closer candidate may exist in the right
		// subtree, otherwise n itself is the floor.
		if r := floor(n.right, value); r != nil {
			return r
		}
		return n
	}
}

// Ceil returns the smallest value in the tree that is greater than or
// equal to value, or a zero value and false if no such value exists.
func (t *Tree[T]) Ceil(value T) (T, bool) {
	if n := ceil(t.root, value); n != nil {
		return n.value, true
	}

	var zero T
	return zero, false
}

func ceil[T cmp.Ordered](n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}

	switch c := cmp.Compare(n.value, value); {
	case c == 0:
		return n

	case c < 0:
		return ceil(n.right, value)

	default:
		if l := ceil(n.left, value); l != nil {
			return l
		}
		return n
	}
}

// Do calls function f on each value in the tree, in ascending order.
// If f returns false, Do stops the iteration.
// f must not change t.
func (t *Tree[T]) Do(f func(value T) bool) {
	// In-order traversal with an explicit node stack.
	var stack []*node[T]

	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(n.value) {
			return
		}

		n = n.right
	}
}

// Values returns the values of the tree in ascending order.
func (t *Tree[T]) Values() []T {
	if t.len == 0 {
		return nil
	}

	values := make([]T, 0, t.len)
	t.Do(func(value T) bool {
		values = append(values, value)
		return true
	})

	return values
}
