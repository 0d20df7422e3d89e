package containers

import "fmt"

// none marks a missing link. Slot 0 is never handed out so the zero chain is empty.
const none = 0

type chain[T any] struct {
	slots []Node[T]
	free  int
	head  int
	tail  int
	size  int
}

// alloc takes a slot from the free list or grows the arena.
func (c *chain[T]) alloc(value T) int {
	if c.free != none {
		idx := c.free
		c.free = c.slots[idx].next
		c.slots[idx] = Node[T]{Value: value, next: none, prev: none}
		return idx
	}
	if len(c.slots) == 0 {
		c.slots = append(c.slots, Node[T]{})
	}
	c.slots = append(c.slots, Node[T]{Value: value, next: none, prev: none})
	return len(c.slots) - 1
}

// release clears the slot links and value before putting it on the free list.
func (c *chain[T]) release(idx int) {
	var zero T
	c.slots[idx] = Node[T]{Value: zero, next: c.free, prev: none}
	c.free = idx
}

func (c *chain[T]) pushBack(value T) {
	idx := c.alloc(value)
	if c.tail != none {
		c.slots[idx].prev = c.tail
		c.slots[c.tail].next = idx
	} else {
		c.head = idx
	}
	c.tail = idx
	c.size++
}

// linkBefore splices a new node in front of at. at must be a live slot.
func (c *chain[T]) linkBefore(value T, at int) {
	idx := c.alloc(value)
	prev := c.slots[at].prev
	c.slots[idx].next = at
	c.slots[idx].prev = prev
	c.slots[at].prev = idx
	if prev == none {
		c.head = idx
	} else {
		c.slots[prev].next = idx
	}
	c.size++
}

// unlink removes idx from the chain and returns its value.
func (c *chain[T]) unlink(idx int) T {
	n := c.slots[idx]
	switch {
	case n.next == none && n.prev == none:
		c.head, c.tail = none, none
	case n.next == none:
		c.tail = n.prev
		c.slots[n.prev].next = none
	case n.prev == none:
		c.head = n.next
		c.slots[n.next].prev = none
	default:
		c.slots[n.prev].next = n.next
		c.slots[n.next].prev = n.prev
	}
	c.release(idx)
	c.size--
	return n.Value
}

func (c *chain[T]) popFront() (value T, ok bool) {
	if c.head == none {
		return value, false
	}
	return c.unlink(c.head), true
}

func (c *chain[T]) popBack() (value T, ok bool) {
	if c.tail == none {
		return value, false
	}
	return c.unlink(c.tail), true
}

func (c *chain[T]) front() (value T, ok bool) {
	if c.head == none {
		return value, false
	}
	return c.slots[c.head].Value, true
}

func (c *chain[T]) back() (value T, ok bool) {
	if c.tail == none {
		return value, false
	}
	return c.slots[c.tail].Value, true
}

func (c *chain[T]) at(index int) int {
	if index < 0 || index >= c.size {
		return none
	}
	idx := c.head
	for i := 0; i < index; i++ {
		idx = c.slots[idx].next
	}
	return idx
}

func (c *chain[T]) reset() {
	*c = chain[T]{}
}

func (c *chain[T]) reverse() {
	idx := c.head
	c.tail = c.head
	for idx != none {
		n := &c.slots[idx]
		next := n.next
		n.next, n.prev = n.prev, n.next
		c.head = idx
		idx = next
	}
}

func (c *chain[T]) values() []interface{} {
	values := make([]interface{}, 0, c.size)
	for idx := c.head; idx != none; idx = c.slots[idx].next {
		values = append(values, c.slots[idx].Value)
	}
	return values
}

// verify walks the chain in both directions and reports the first broken link.
func (c *chain[T]) verify() error {
	if c.head == none || c.tail == none {
		if c.head != c.tail || c.size != 0 {
			return fmt.Errorf("head %d, tail %d with size %d", c.head, c.tail, c.size)
		}
		return nil
	}
	if c.slots[c.head].prev != none {
		return fmt.Errorf("head %d has previous %d", c.head, c.slots[c.head].prev)
	}
	if c.slots[c.tail].next != none {
		return fmt.Errorf("tail %d has next %d", c.tail, c.slots[c.tail].next)
	}

	reachable, last := 0, none
	for idx := c.head; idx != none; idx = c.slots[idx].next {
		if c.slots[idx].prev != last {
			return fmt.Errorf("node %d has previous %d, expected %d", idx, c.slots[idx].prev, last)
		}
		reachable++
		if reachable > len(c.slots) {
			return fmt.Errorf("cycle detected after %d nodes", reachable)
		}
		last = idx
	}
	if last != c.tail {
		return fmt.Errorf("forward walk ends at %d, tail is %d", last, c.tail)
	}
	if reachable != c.size {
		return fmt.Errorf("%d reachable nodes, size is %d", reachable, c.size)
	}

	backward := 0
	for idx := c.tail; idx != none; idx = c.slots[idx].prev {
		backward++
		if backward > reachable {
			return fmt.Errorf("backward walk longer than forward walk")
		}
	}
	if backward != reachable {
		return fmt.Errorf("backward walk visits %d nodes, forward %d", backward, reachable)
	}
	return nil
}
