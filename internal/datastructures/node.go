package datastructures

// handle is a stable reference to a slot in a DoublyLinkedList arena.
// Slots are numbered from 1 so that the zero handle means "no node".
type handle int

const nilHandle handle = 0

// node is a storage cell of the doubly linked list arena.
type node[E any] struct {
	data     E
	next     handle
	previous handle
}

func (n *node[E]) hasNext() bool {
	return n.next != nilHandle
}

func (n *node[E]) hasPrevious() bool {
	return n.previous != nilHandle
}

// singlyNode is a storage cell of the singly linked list.
type singlyNode[E any] struct {
	data E
	next *singlyNode[E]
}

func (n *singlyNode[E]) hasNext() bool {
	return n.next != nil
}
