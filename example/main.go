package main

import (
	"fmt"

	"github.com/mgnsk/collections/bst"
	"github.com/mgnsk/collections/linkedlist"
	"github.com/mgnsk/collections/queue"
)

func main() {
	var l linkedlist.List[int]

	l.PushBack(1)
	l.PushBack(3)
	l.PushFront(0)

	// Splice a value into the middle of the chain.
	if err := l.Insert(2, 2); err != nil {
		panic(err)
	}

	fmt.Println(l.String()) // 0, 1, 2, 3

	if v, ok := l.Get(2); ok {
		fmt.Println(v) // 2
	}

	var q queue.Queue[string]

	q.Enqueue("first")
	q.Enqueue("second")

	if v, ok := q.Dequeue(); ok {
		fmt.Println(v) // first
	}

	var t bst.Tree[int]

	for _, v := range []int{5, 3, 8, 1, 4} {
		t.Insert(v)
	}

	fmt.Println(t.Values()) // [1 3 4 5 8]

	if v, ok := t.Floor(7); ok {
		fmt.Println(v) // 5
	}
}
