package containers

import "fmt"

// Node is a single cell of a chain. next and prev are slot indices into the
// owning arena; prev is only a navigation aid and never keeps a slot alive.
type Node[T any] struct {
	Value T
	next  int
	prev  int
}

func (n Node[T]) String() string {
	return fmt.Sprintf("[%v]", n.Value)
}

// EqualNodes reports whether two nodes hold equal values.
func EqualNodes[T comparable](a, b Node[T]) bool {
	return a.Value == b.Value
}
