package datastructures

// Deque represents a double-ended queue backed by a DoublyLinkedList.
type Deque[T any] struct {
	list *DoublyLinkedList[T]
}

// NewDeque creates an empty Deque.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{list: NewDoublyLinkedListFunc[T](nil)}
}

// PushFront adds an element to the front of the deque.
func (d *Deque[T]) PushFront(value T) {
	d.list.AddFirst(value)
}

// PushBack adds an element to the back of the deque.
func (d *Deque[T]) PushBack(value T) {
	d.list.Add(value)
}

// PopFront removes an element from the front of the deque.
func (d *Deque[T]) PopFront() (T, error) {
	if d.list.IsEmpty() {
		var zeroValue T
		return zeroValue, ErrEmptyCollection
	}
	return d.list.RemoveFirst()
}

// PopBack removes an element from the back of the deque.
func (d *Deque[T]) PopBack() (T, error) {
	if d.list.IsEmpty() {
		var zeroValue T
		return zeroValue, ErrEmptyCollection
	}
	return d.list.RemoveLast()
}

// Front returns the element at the front of the deque.
func (d *Deque[T]) Front() (T, error) {
	return d.list.GetFirst()
}

// Back returns the element at the back of the deque.
func (d *Deque[T]) Back() (T, error) {
	return d.list.GetLast()
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.list.Size()
}

// Empty checks if the deque is empty.
func (d *Deque[T]) Empty() bool {
	return d.list.IsEmpty()
}
