package datastructures

// SinglyLinkedList is a forward-only positional list. The tail is cached so
// Add is O(1); every other positional operation walks from the head.
type SinglyLinkedList[E any] struct {
	head  *singlyNode[E]
	tail  *singlyNode[E]
	size  int
	equal EqualFunc[E]
}

// NewSinglyLinkedList creates an empty list whose elements are compared with ==.
func NewSinglyLinkedList[E comparable]() *SinglyLinkedList[E] {
	return &SinglyLinkedList[E]{equal: equalComparable[E]}
}

// NewSinglyLinkedListFunc creates an empty list that compares elements with eq.
func NewSinglyLinkedListFunc[E any](eq EqualFunc[E]) *SinglyLinkedList[E] {
	return &SinglyLinkedList[E]{equal: eq}
}

func (l *SinglyLinkedList[E]) nodeAt(i int) *singlyNode[E] {
	n := l.head
	for j := 0; j < i; j++ {
		n = n.next
	}
	return n
}

// unlinkAfter removes the successor of prev, or the head when prev is nil.
func (l *SinglyLinkedList[E]) unlinkAfter(prev *singlyNode[E]) E {
	var victim *singlyNode[E]
	if prev == nil {
		victim = l.head
		l.head = victim.next
	} else {
		victim = prev.next
		prev.next = victim.next
	}
	if victim == l.tail {
		l.tail = prev
	}
	victim.next = nil
	l.size--
	return victim.data
}

// Size returns the number of elements in the list.
func (l *SinglyLinkedList[E]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *SinglyLinkedList[E]) IsEmpty() bool {
	return l.size == 0
}

// Clear removes all elements from the list.
func (l *SinglyLinkedList[E]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Get returns the element at index i, walking from the head.
func (l *SinglyLinkedList[E]) Get(i int) (E, error) {
	if i < 0 || i >= l.size {
		var zero E
		return zero, indexError(i, l.size)
	}
	return l.nodeAt(i).data, nil
}

// GetFirst returns the head element.
func (l *SinglyLinkedList[E]) GetFirst() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrEmptyCollection
	}
	return l.head.data, nil
}

// GetLast returns the tail element.
func (l *SinglyLinkedList[E]) GetLast() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, ErrEmptyCollection
	}
	return l.tail.data, nil
}

// Add appends e after the tail.
func (l *SinglyLinkedList[E]) Add(e E) {
	n := &singlyNode[E]{data: e}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// AddFirst inserts e before the head.
func (l *SinglyLinkedList[E]) AddFirst(e E) {
	l.head = &singlyNode[E]{data: e, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// Insert places e at index i, shifting the element previously at i one position towards the tail.
func (l *SinglyLinkedList[E]) Insert(i int, e E) error {
	if i < 0 || i > l.size {
		return indexError(i, l.size)
	}

	switch i {
	case 0:
		l.AddFirst(e)
	case l.size:
		l.Add(e)
	default:
		prev := l.nodeAt(i - 1)
		prev.next = &singlyNode[E]{data: e, next: prev.next}
		l.size++
	}
	return nil
}

// RemoveFirst unlinks and returns the head element.
func (l *SinglyLinkedList[E]) RemoveFirst() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, emptyRemoveError()
	}
	return l.unlinkAfter(nil), nil
}

// RemoveLast unlinks and returns the tail element. It is O(n): the
// predecessor of the tail has to be found from the head.
func (l *SinglyLinkedList[E]) RemoveLast() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, emptyRemoveError()
	}
	if l.size == 1 {
		return l.unlinkAfter(nil), nil
	}
	return l.unlinkAfter(l.nodeAt(l.size - 2)), nil
}

// RemoveAt unlinks and returns the element at index i.
func (l *SinglyLinkedList[E]) RemoveAt(i int) (E, error) {
	if i < 0 || i >= l.size {
		var zero E
		return zero, indexError(i, l.size)
	}
	if i == 0 {
		return l.unlinkAfter(nil), nil
	}
	return l.unlinkAfter(l.nodeAt(i - 1)), nil
}

// Remove unlinks the first element equal to e and reports whether one was found.
func (l *SinglyLinkedList[E]) Remove(e E) bool {
	eq := mustEqual(l.equal)
	var prev *singlyNode[E]
	for n := l.head; n != nil; prev, n = n, n.next {
		if eq(n.data, e) {
			l.unlinkAfter(prev)
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first element equal to e, or -1.
func (l *SinglyLinkedList[E]) IndexOf(e E) int {
	eq := mustEqual(l.equal)
	i := 0
	for n := l.head; n != nil; n = n.next {
		if eq(n.data, e) {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether an element equal to e is in the list.
func (l *SinglyLinkedList[E]) Contains(e E) bool {
	return l.IndexOf(e) >= 0
}

// Values returns a copy of the elements from head to tail.
func (l *SinglyLinkedList[E]) Values() []E {
	values := make([]E, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}
