package linkedlist

import "errors"

// ErrIndexOutOfRange indicates an index outside the valid range for the list's length.
var ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

// ErrEmptyList indicates a removal from an empty list.
var ErrEmptyList = errors.New("linkedlist: empty list")
