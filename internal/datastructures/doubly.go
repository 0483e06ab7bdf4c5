package datastructures

// DoublyLinkedList is a positional list with O(1) access to both ends.
//
// Nodes live in an arena slice and refer to each other by handle. Slots
// released by removals are kept on a free list and reused by later inserts.
// Index lookups walk from whichever end is closer to the index.
//
// A DoublyLinkedList is not safe for concurrent use.
type DoublyLinkedList[E any] struct {
	nodes []node[E]
	free  []handle
	head  handle
	tail  handle
	size  int
	equal EqualFunc[E]
}

// NewDoublyLinkedList creates an empty list whose elements are compared with ==.
func NewDoublyLinkedList[E comparable]() *DoublyLinkedList[E] {
	return &DoublyLinkedList[E]{equal: equalComparable[E]}
}

// NewDoublyLinkedListFunc creates an empty list that compares elements with eq.
// A nil eq is allowed when Remove, Contains and IndexOf are never called.
func NewDoublyLinkedListFunc[E any](eq EqualFunc[E]) *DoublyLinkedList[E] {
	return &DoublyLinkedList[E]{equal: eq}
}

func (l *DoublyLinkedList[E]) node(h handle) *node[E] {
	return &l.nodes[h-1]
}

// alloc stores a new node and returns its handle. Pointers obtained from
// node() before a call to alloc must not be used after it.
func (l *DoublyLinkedList[E]) alloc(e E, previous, next handle) handle {
	n := node[E]{data: e, previous: previous, next: next}
	if k := len(l.free); k > 0 {
		h := l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[h-1] = n
		return h
	}
	l.nodes = append(l.nodes, n)
	return handle(len(l.nodes))
}

func (l *DoublyLinkedList[E]) release(h handle) {
	l.nodes[h-1] = node[E]{}
	l.free = append(l.free, h)
}

// nodeAt resolves index i, which must be in [0, size), to a handle.
func (l *DoublyLinkedList[E]) nodeAt(i int) handle {
	if i >= l.size/2 {
		h := l.tail
		for j := l.size - 1; j > i; j-- {
			h = l.node(h).previous
		}
		return h
	}
	h := l.head
	for j := 0; j < i; j++ {
		h = l.node(h).next
	}
	return h
}

// unlink detaches the node at h from its neighbours and returns its data.
func (l *DoublyLinkedList[E]) unlink(h handle) E {
	n := l.node(h)
	p, q := n.previous, n.next
	data := n.data

	if n.hasPrevious() {
		l.node(p).next = q
	} else {
		l.head = q
	}
	if n.hasNext() {
		l.node(q).previous = p
	} else {
		l.tail = p
	}

	l.release(h)
	l.size--
	return data
}

// Size returns the number of elements in the list.
func (l *DoublyLinkedList[E]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *DoublyLinkedList[E]) IsEmpty() bool {
	return l.size == 0
}

// Clear removes all elements from the list without visiting them.
func (l *DoublyLinkedList[E]) Clear() {
	l.nodes = nil
	l.free = nil
	l.head = nilHandle
	l.tail = nilHandle
	l.size = 0
}

// Get returns the element at index i.
func (l *DoublyLinkedList[E]) Get(i int) (E, error) {
	if i < 0 || i >= l.size {
		var zero E
		return zero, indexError(i, l.size)
	}
	return l.node(l.nodeAt(i)).data, nil
}

// GetFirst returns the head element.
func (l *DoublyLinkedList[E]) GetFirst() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrEmptyCollection
	}
	return l.node(l.head).data, nil
}

// GetLast returns the tail element.
func (l *DoublyLinkedList[E]) GetLast() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrEmptyCollection
	}
	return l.node(l.tail).data, nil
}

// Add appends e after the tail.
func (l *DoublyLinkedList[E]) Add(e E) {
	h := l.alloc(e, l.tail, nilHandle)
	if l.tail == nilHandle {
		l.head = h
	} else {
		l.node(l.tail).next = h
	}
	l.tail = h
	l.size++
}

// AddFirst inserts e before the head.
func (l *DoublyLinkedList[E]) AddFirst(e E) {
	h := l.alloc(e, nilHandle, l.head)
	if l.head == nilHandle {
		l.tail = h
	} else {
		l.node(l.head).previous = h
	}
	l.head = h
	l.size++
}

// Insert places e at index i, shifting the element previously at i one position towards the tail.
func (l *DoublyLinkedList[E]) Insert(i int, e E) error {
	if i < 0 || i > l.size {
		return indexError(i, l.size)
	}

	switch i {
	case 0:
		l.AddFirst(e)
	case l.size:
		l.Add(e)
	default:
		after := l.nodeAt(i)
		before := l.node(after).previous
		h := l.alloc(e, before, after)
		l.node(before).next = h
		l.node(after).previous = h
		l.size++
	}
	return nil
}

// RemoveFirst unlinks and returns the head element.
func (l *DoublyLinkedList[E]) RemoveFirst() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, emptyRemoveError()
	}
	return l.unlink(l.head), nil
}

// RemoveLast unlinks and returns the tail element.
func (l *DoublyLinkedList[E]) RemoveLast() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, emptyRemoveError()
	}
	return l.unlink(l.tail), nil
}

// RemoveAt unlinks and returns the element at index i.
func (l *DoublyLinkedList[E]) RemoveAt(i int) (E, error) {
	if i < 0 || i >= l.size {
		var zero E
		return zero, indexError(i, l.size)
	}
	return l.unlink(l.nodeAt(i)), nil
}

// Remove unlinks the first element equal to e and reports whether one was found.
func (l *DoublyLinkedList[E]) Remove(e E) bool {
	eq := mustEqual(l.equal)
	for h := l.head; h != nilHandle; h = l.node(h).next {
		if eq(l.node(h).data, e) {
			l.unlink(h)
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first element equal to e, or -1.
func (l *DoublyLinkedList[E]) IndexOf(e E) int {
	eq := mustEqual(l.equal)
	i := 0
	for h := l.head; h != nilHandle; h = l.node(h).next {
		if eq(l.node(h).data, e) {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether an element equal to e is in the list.
func (l *DoublyLinkedList[E]) Contains(e E) bool {
	return l.IndexOf(e) >= 0
}

// Values returns a copy of the elements from head to tail.
func (l *DoublyLinkedList[E]) Values() []E {
	values := make([]E, 0, l.size)
	for h := l.head; h != nilHandle; h = l.node(h).next {
		values = append(values, l.node(h).data)
	}
	return values
}
