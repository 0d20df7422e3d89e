package containers

import (
	"fmt"
	"iter"
	"strings"
)

// LinkedList is a doubly-linked list backed by a slot arena. The zero value is
// an empty list ready to use. It is not safe for concurrent use.
type LinkedList[T comparable] struct {
	c chain[T]
}

func NewLinkedList[T comparable](elems ...T) *LinkedList[T] {
	l := new(LinkedList[T])
	for _, e := range elems {
		l.Append(e)
	}
	return l
}

func LinkedListFromSeq[T comparable](seq iter.Seq[T]) *LinkedList[T] {
	l := new(LinkedList[T])
	for e := range seq {
		l.Append(e)
	}
	return l
}

func (l *LinkedList[T]) Len() int {
	return l.c.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.c.head == none
}

func (l *LinkedList[T]) First() (T, bool) {
	return l.c.front()
}

func (l *LinkedList[T]) Last() (T, bool) {
	return l.c.back()
}

// Append adds value after the current tail.
func (l *LinkedList[T]) Append(value T) {
	l.c.pushBack(value)
}

// InsertItem inserts value so that it ends up at index. Any index in
// [0, Len()] is accepted; Len() appends and moves the tail.
func (l *LinkedList[T]) InsertItem(value T, index int) bool {
	if index == l.c.size {
		l.c.pushBack(value)
		return true
	}
	next := l.c.at(index)
	if next == none {
		return false
	}
	l.c.linkBefore(value, next)
	return true
}

// ItemAt walks from the head and returns the value at index.
func (l *LinkedList[T]) ItemAt(index int) (value T, ok bool) {
	idx := l.c.at(index)
	if idx == none {
		return value, false
	}
	return l.c.slots[idx].Value, true
}

func (l *LinkedList[T]) RemoveAll() {
	l.c.reset()
}

// RemoveItem unlinks the first node holding value.
func (l *LinkedList[T]) RemoveItem(value T) bool {
	idx := l.find(value)
	if idx == none {
		return false
	}
	l.c.unlink(idx)
	return true
}

func (l *LinkedList[T]) find(value T) int {
	for idx := l.c.head; idx != none; idx = l.c.slots[idx].next {
		if l.c.slots[idx].Value == value {
			return idx
		}
	}
	return none
}

// Contains reports whether any node holds value.
func (l *LinkedList[T]) Contains(value T) bool {
	return l.find(value) != none
}

func (l *LinkedList[T]) Reverse() {
	l.c.reverse()
}

// All yields the values from head to tail. Mutating the list while ranging
// over it gives undefined results.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := l.c.head; idx != none; idx = l.c.slots[idx].next {
			if !yield(l.c.slots[idx].Value) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head following the back references.
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := l.c.tail; idx != none; idx = l.c.slots[idx].prev {
			if !yield(l.c.slots[idx].Value) {
				return
			}
		}
	}
}

// Nodes yields copies of the nodes from head to tail.
func (l *LinkedList[T]) Nodes() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for idx := l.c.head; idx != none; idx = l.c.slots[idx].next {
			if !yield(Node[T]{Value: l.c.slots[idx].Value}) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Empty() bool {
	return l.IsEmpty()
}

func (l *LinkedList[T]) Size() int {
	return l.Len()
}

func (l *LinkedList[T]) Clear() {
	l.RemoveAll()
}

func (l *LinkedList[T]) Values() []interface{} {
	return l.c.values()
}

func (l *LinkedList[T]) String() string {
	s := new(strings.Builder)
	for idx := l.c.head; idx != none; idx = l.c.slots[idx].next {
		if idx != l.c.head {
			s.WriteString(" -> ")
		}
		fmt.Fprint(s, l.c.slots[idx].Value)
	}
	return s.String()
}
