package bst_test

import (
	"testing"

	"github.com/mgnsk/collections/bst"
	. "github.com/mgnsk/collections/internal/testing"
)

func newFruitTree() *bst.Tree[string] {
	var t bst.Tree[string]

	t.Insert("mango")
	t.Insert("grape")
	t.Insert("peach")
	t.Insert("apple")
	t.Insert("kiwi")
	t.Insert("plum")
	t.Insert("lemon")

	return &t
}

func TestSearch(t *testing.T) {
	tree := newFruitTree()

	True(t, tree.Search("mango"))
	True(t, tree.Search("apple"))
	True(t, tree.Search("plum"))
	True(t, tree.Search("lemon"))

	False(t, tree.Search("banana"))
	False(t, tree.Search("melon"))
	False(t, tree.Search(""))
}

func TestMinAndMax(t *testing.T) {
	tree := newFruitTree()

	min, ok := tree.Min()
	True(t, ok)
	Equal(t, min, "apple")

	max, ok := tree.Max()
	True(t, ok)
	Equal(t, max, "plum")
}

func TestMinAndMaxNumeric(t *testing.T) {
	var tree bst.Tree[int]

	_, ok := tree.Min()
	False(t, ok)
	_, ok = tree.Max()
	False(t, ok)

	tree.Insert(0)

	min, _ := tree.Min()
	Equal(t, min, 0)
	max, _ := tree.Max()
	Equal(t, max, 0)

	tree.Insert(-5)

	min, _ = tree.Min()
	Equal(t, min, -5)
	max, _ = tree.Max()
	Equal(t, max, 0)

	tree.Insert(5)

	min, _ = tree.Min()
	Equal(t, min, -5)
	max, _ = tree.Max()
	Equal(t, max, 5)
}

func TestFloor(t *testing.T) {
	tree := newFruitTree()

	v, ok := tree.Floor("kiwi")
	True(t, ok)
	Equal(t, v, "kiwi")

	v, ok = tree.Floor("melon")
	True(t, ok)
	Equal(t, v, "mango")

	v, ok = tree.Floor("zebra")
	True(t, ok)
	Equal(t, v, "plum")

	_, ok = tree.Floor("aardvark")
	False(t, ok)
}

func TestCeil(t *testing.T) {
	tree := newFruitTree()

	v, ok := tree.Ceil("kiwi")
	True(t, ok)
	Equal(t, v, "kiwi")

	v, ok = tree.Ceil("melon")
	True(t, ok)
	Equal(t, v, "peach")

	v, ok = tree.Ceil("aardvark")
	True(t, ok)
	Equal(t, v, "apple")

	_, ok = tree.Ceil("zebra")
	False(t, ok)
}

func TestInOrder(t *testing.T) {
	tree := newFruitTree()

	Equal(t, tree.Values(), []string{
		"apple", "grape", "kiwi", "lemon", "mango", "peach", "plum",
	})

	t.Run("early stop", func(t *testing.T) {
		var values []string
		tree.Do(func(value string) bool {
			values = append(values, value)
			return len(values) < 2
		})

		Equal(t, values, []string{"apple", "grape"})
	})
}

func TestDuplicates(t *testing.T) {
	var tree bst.Tree[int]

	tree.Insert(3)
	tree.Insert(3)

	Equal(t, tree.Len(), 2)
	Equal(t, tree.Values(), []int{3, 3})
	True(t, tree.Search(3))
}

func TestEmptyTree(t *testing.T) {
	var tree bst.Tree[int]

	Equal(t, tree.Len(), 0)
	Equal(t, tree.Values(), nil)
	False(t, tree.Search(1))

	_, ok := tree.Floor(1)
	False(t, ok)
	_, ok = tree.Ceil(1)
	False(t, ok)
}
