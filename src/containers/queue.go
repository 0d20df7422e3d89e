package containers

import (
	"fmt"
	"strings"
)

// Queue is a FIFO over a node chain: values enter at the tail and leave from
// the head.
type Queue[T any] struct {
	c chain[T]
}

func NewQueue[T any](elems ...T) *Queue[T] {
	q := new(Queue[T])
	for _, e := range elems {
		q.EnQueue(e)
	}
	return q
}

func (q *Queue[T]) Size() int {
	return q.c.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.c.head == none
}

func (q *Queue[T]) EnQueue(value T) {
	q.c.pushBack(value)
}

func (q *Queue[T]) DeQueue() (T, bool) {
	return q.c.popFront()
}

func (q *Queue[T]) Peek() (T, bool) {
	return q.c.front()
}

func (q *Queue[T]) Clear() {
	q.c.reset()
}

func (q *Queue[T]) Empty() bool {
	return q.IsEmpty()
}

func (q *Queue[T]) Values() []interface{} {
	return q.c.values()
}

func (q *Queue[T]) String() string {
	s := new(strings.Builder)
	for idx := q.c.head; idx != none; idx = q.c.slots[idx].next {
		if idx != q.c.head {
			s.WriteRune(',')
		}
		fmt.Fprint(s, q.c.slots[idx].Value)
	}
	return s.String()
}
