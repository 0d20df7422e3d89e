package containers

import (
	"fmt"
	"strings"
)

// Stack is a LIFO over a node chain. The tail is the top; Pop steps back
// through the previous link.
type Stack[T any] struct {
	c chain[T]
}

func NewStack[T any](elems ...T) *Stack[T] {
	s := new(Stack[T])
	for _, e := range elems {
		s.Push(e)
	}
	return s
}

func (s *Stack[T]) Size() int {
	return s.c.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.c.head == none
}

func (s *Stack[T]) TopItem() (T, bool) {
	return s.c.back()
}

func (s *Stack[T]) Push(value T) {
	s.c.pushBack(value)
}

func (s *Stack[T]) Pop() (T, bool) {
	return s.c.popBack()
}

func (s *Stack[T]) Clear() {
	s.c.reset()
}

func (s *Stack[T]) Empty() bool {
	return s.IsEmpty()
}

func (s *Stack[T]) Values() []interface{} {
	return s.c.values()
}

// String lists the values bottom to top, one per line.
func (s *Stack[T]) String() string {
	b := new(strings.Builder)
	for idx := s.c.head; idx != none; idx = s.c.slots[idx].next {
		if idx != s.c.head {
			b.WriteRune('\n')
		}
		fmt.Fprint(b, s.c.slots[idx].Value)
	}
	return b.String()
}
