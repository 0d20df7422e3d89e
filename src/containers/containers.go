// Package containers provides a doubly-linked list, a FIFO queue and a LIFO
// stack built on a slot arena with integer links instead of pointers.
package containers

import gods "github.com/emirpasic/gods/containers"

var (
	_ gods.Container = (*LinkedList[int])(nil)
	_ gods.Container = (*Queue[int])(nil)
	_ gods.Container = (*Stack[int])(nil)
)
