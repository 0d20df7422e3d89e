package containers

import (
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func collect[T comparable](l *LinkedList[T]) []T {
	return slices.Collect(l.All())
}

func checkChain[T comparable](t *testing.T, l *LinkedList[T]) {
	t.Helper()
	assert.NotError(t, l.c.verify())
}

func TestLinkedList(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		l := &LinkedList[string]{}
		check.True(t, l.IsEmpty())

		for _, v := range []string{"One", "Two", "Three", "Four", "Five"} {
			l.Append(v)
		}
		checkChain(t, l)

		check.True(t, !l.IsEmpty())
		check.Equal(t, 5, l.Len())
		first, ok := l.First()
		check.True(t, ok)
		check.Equal(t, "One", first)
		last, ok := l.Last()
		check.True(t, ok)
		check.Equal(t, "Five", last)
		item, ok := l.ItemAt(4)
		check.True(t, ok)
		check.Equal(t, "Five", item)
		item, ok = l.ItemAt(2)
		check.True(t, ok)
		check.Equal(t, "Three", item)

		check.True(t, l.RemoveItem("Three"))
		check.True(t, !l.RemoveItem("Six"))
		checkChain(t, l)
		first, _ = l.First()
		last, _ = l.Last()
		check.Equal(t, "One", first)
		check.Equal(t, "Five", last)

		l.Reverse()
		checkChain(t, l)
		first, _ = l.First()
		last, _ = l.Last()
		check.Equal(t, "Five", first)
		check.Equal(t, "One", last)

		l.RemoveAll()
		check.True(t, l.IsEmpty())
		check.Equal(t, 0, l.Len())
		checkChain(t, l)

		l.Append("One")
		l.Append("Two")
		l.Append("Three")
		check.True(t, l.InsertItem("test", 0))
		check.Equal(t, 4, l.Len())
		first, _ = l.First()
		last, _ = l.Last()
		check.Equal(t, "test", first)
		check.Equal(t, "Three", last)
		checkChain(t, l)
	})

	t.Run("Empty", func(t *testing.T) {
		l := NewLinkedList[int]()
		_, ok := l.First()
		check.True(t, !ok)
		_, ok = l.Last()
		check.True(t, !ok)
		_, ok = l.ItemAt(0)
		check.True(t, !ok)
		check.True(t, !l.RemoveItem(1))
		check.Equal(t, "", l.String())
		check.Equal(t, 0, len(collect(l)))
		l.Reverse()
		check.True(t, l.IsEmpty())
		checkChain(t, l)
	})

	t.Run("Append", func(t *testing.T) {
		for _, n := range []int{1, 2, 7, 50} {
			l := &LinkedList[int]{}
			want := make([]int, 0, n)
			for i := range n {
				l.Append(i * 3)
				want = append(want, i*3)
			}
			check.Equal(t, n, l.Len())
			first, _ := l.First()
			last, _ := l.Last()
			check.Equal(t, want[0], first)
			check.Equal(t, want[n-1], last)
			check.True(t, slices.Equal(want, collect(l)))
			checkChain(t, l)
		}
	})

	t.Run("Constructors", func(t *testing.T) {
		l := NewLinkedList("a", "b", "c")
		check.True(t, slices.Equal([]string{"a", "b", "c"}, collect(l)))

		fromSeq := LinkedListFromSeq(slices.Values([]int{4, 5, 6}))
		check.True(t, slices.Equal([]int{4, 5, 6}, collect(fromSeq)))
		check.Equal(t, 3, fromSeq.Len())
	})

	t.Run("ItemAt", func(t *testing.T) {
		l := NewLinkedList(10, 20, 30)
		for i, want := range []int{10, 20, 30} {
			v, ok := l.ItemAt(i)
			check.True(t, ok)
			check.Equal(t, want, v)
		}
		_, ok := l.ItemAt(-1)
		check.True(t, !ok)
		_, ok = l.ItemAt(3)
		check.True(t, !ok)
	})

	t.Run("Insert", func(t *testing.T) {
		t.Run("Head", func(t *testing.T) {
			l := NewLinkedList(2, 3)
			check.True(t, l.InsertItem(1, 0))
			check.True(t, slices.Equal([]int{1, 2, 3}, collect(l)))
			check.True(t, slices.Equal([]int{3, 2, 1}, slices.Collect(l.Backward())))
			checkChain(t, l)
		})

		t.Run("Interior", func(t *testing.T) {
			l := NewLinkedList(1, 3, 4)
			check.True(t, l.InsertItem(2, 1))
			check.True(t, slices.Equal([]int{1, 2, 3, 4}, collect(l)))
			check.True(t, slices.Equal([]int{4, 3, 2, 1}, slices.Collect(l.Backward())))
			checkChain(t, l)
		})

		t.Run("AtEndMovesTail", func(t *testing.T) {
			l := NewLinkedList(1, 2)
			check.True(t, l.InsertItem(3, l.Len()))
			last, _ := l.Last()
			check.Equal(t, 3, last)
			l.Append(4)
			check.True(t, slices.Equal([]int{1, 2, 3, 4}, collect(l)))
			checkChain(t, l)
		})

		t.Run("IntoEmpty", func(t *testing.T) {
			l := &LinkedList[int]{}
			check.True(t, l.InsertItem(9, 0))
			first, _ := l.First()
			last, _ := l.Last()
			check.Equal(t, 9, first)
			check.Equal(t, 9, last)
			checkChain(t, l)
		})

		t.Run("OutOfRange", func(t *testing.T) {
			l := NewLinkedList(1, 2)
			check.True(t, !l.InsertItem(5, -1))
			check.True(t, !l.InsertItem(5, 3))
			check.Equal(t, 2, l.Len())
			check.True(t, slices.Equal([]int{1, 2}, collect(l)))
			checkChain(t, l)
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Run("Head", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			check.True(t, l.RemoveItem(1))
			check.True(t, slices.Equal([]int{2, 3}, collect(l)))
			checkChain(t, l)
		})

		t.Run("Tail", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			check.True(t, l.RemoveItem(3))
			last, _ := l.Last()
			check.Equal(t, 2, last)
			l.Append(4)
			check.True(t, slices.Equal([]int{1, 2, 4}, collect(l)))
			checkChain(t, l)
		})

		t.Run("Interior", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			check.True(t, l.RemoveItem(2))
			check.True(t, slices.Equal([]int{3, 1}, slices.Collect(l.Backward())))
			checkChain(t, l)
		})

		t.Run("OnlyNode", func(t *testing.T) {
			l := NewLinkedList(1)
			check.True(t, l.RemoveItem(1))
			check.True(t, l.IsEmpty())
			checkChain(t, l)
		})

		t.Run("FirstOccurrence", func(t *testing.T) {
			l := NewLinkedList("a", "b", "a", "c")
			check.True(t, l.RemoveItem("a"))
			check.Equal(t, 3, l.Len())
			check.True(t, slices.Equal([]string{"b", "a", "c"}, collect(l)))
			checkChain(t, l)
		})

		t.Run("Absent", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			check.True(t, !l.RemoveItem(4))
			check.Equal(t, 3, l.Len())
			checkChain(t, l)
		})

		t.Run("ClearsSlot", func(t *testing.T) {
			l := NewLinkedList("x", "y", "z")
			idx := l.find("y")
			check.True(t, l.RemoveItem("y"))
			check.Equal(t, "", l.c.slots[idx].Value)
			check.Equal(t, none, l.c.slots[idx].prev)
			check.Equal(t, idx, l.c.free)
		})

		t.Run("ReusesSlots", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			arena := len(l.c.slots)
			check.True(t, l.RemoveItem(2))
			check.True(t, l.RemoveItem(1))
			l.Append(4)
			l.Append(5)
			check.Equal(t, arena, len(l.c.slots))
			check.True(t, slices.Equal([]int{3, 4, 5}, collect(l)))
			checkChain(t, l)
		})

		t.Run("All", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			l.RemoveAll()
			check.True(t, l.IsEmpty())
			check.Equal(t, 0, l.Len())
			l.RemoveAll()
			check.True(t, l.IsEmpty())
			l.Append(7)
			check.True(t, slices.Equal([]int{7}, collect(l)))
			checkChain(t, l)
		})
	})

	t.Run("Reverse", func(t *testing.T) {
		t.Run("Involution", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3, 4, 5)
			l.Reverse()
			check.True(t, slices.Equal([]int{5, 4, 3, 2, 1}, collect(l)))
			checkChain(t, l)
			l.Reverse()
			check.True(t, slices.Equal([]int{1, 2, 3, 4, 5}, collect(l)))
			first, _ := l.First()
			last, _ := l.Last()
			check.Equal(t, 1, first)
			check.Equal(t, 5, last)
			checkChain(t, l)
		})

		t.Run("Single", func(t *testing.T) {
			l := NewLinkedList(1)
			l.Reverse()
			first, _ := l.First()
			last, _ := l.Last()
			check.Equal(t, 1, first)
			check.Equal(t, 1, last)
			checkChain(t, l)
		})

		t.Run("ThenMutate", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			l.Reverse()
			l.Append(0)
			check.True(t, l.InsertItem(9, 1))
			check.True(t, l.RemoveItem(1))
			check.True(t, slices.Equal([]int{3, 9, 2, 0}, collect(l)))
			checkChain(t, l)
		})
	})

	t.Run("Iterate", func(t *testing.T) {
		t.Run("Restartable", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3)
			seq := l.All()
			check.True(t, slices.Equal([]int{1, 2, 3}, slices.Collect(seq)))
			check.True(t, slices.Equal([]int{1, 2, 3}, slices.Collect(seq)))
		})

		t.Run("EarlyExit", func(t *testing.T) {
			l := NewLinkedList(1, 2, 3, 4)
			var seen []int
			for v := range l.All() {
				if v == 3 {
					break
				}
				seen = append(seen, v)
			}
			check.True(t, slices.Equal([]int{1, 2}, seen))
		})

		t.Run("Nodes", func(t *testing.T) {
			l := NewLinkedList("a", "b")
			var rendered []string
			for n := range l.Nodes() {
				rendered = append(rendered, n.String())
			}
			check.True(t, slices.Equal([]string{"[a]", "[b]"}, rendered))
		})
	})

	t.Run("Display", func(t *testing.T) {
		check.Equal(t, "One -> Two -> Three", NewLinkedList("One", "Two", "Three").String())
		check.Equal(t, "1", NewLinkedList(1).String())
	})

	t.Run("Container", func(t *testing.T) {
		l := NewLinkedList(1, 2)
		check.Equal(t, 2, l.Size())
		check.True(t, !l.Empty())
		check.True(t, slices.Equal([]interface{}{1, 2}, l.Values()))
		check.True(t, l.Contains(2))
		check.True(t, !l.Contains(3))
		l.Clear()
		check.True(t, l.Empty())
	})
}

func TestNode(t *testing.T) {
	check.True(t, EqualNodes(Node[int]{Value: 1}, Node[int]{Value: 1, next: 3}))
	check.True(t, !EqualNodes(Node[int]{Value: 1}, Node[int]{Value: 2}))
	check.Equal(t, "[42]", Node[int]{Value: 42}.String())
}
