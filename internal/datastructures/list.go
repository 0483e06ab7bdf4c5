package datastructures

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside the valid bounds of a list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyCollection is returned when an element is requested from an empty container.
	ErrEmptyCollection = errors.New("collection is empty")
)

// EqualFunc reports whether two elements are equal. It is used for removal and lookup by value.
type EqualFunc[E any] func(a, b E) bool

// List is the positional list contract shared by the linked lists in this package.
type List[E any] interface {
	// Size returns the number of elements in the list.
	Size() int
	// IsEmpty reports whether the list has no elements.
	IsEmpty() bool
	// Clear removes all elements from the list.
	Clear()
	// Contains reports whether an element equal to e is in the list.
	Contains(e E) bool
	// IndexOf returns the index of the first element equal to e, or -1.
	IndexOf(e E) int
	// Get returns the element at index i.
	Get(i int) (E, error)
	// GetFirst returns the head element.
	GetFirst() (E, error)
	// GetLast returns the tail element.
	GetLast() (E, error)
	// Add appends e after the tail.
	Add(e E)
	// AddFirst inserts e before the head.
	AddFirst(e E)
	// Insert places e so that Get(i) returns e afterwards. i may equal Size.
	Insert(i int, e E) error
	// RemoveFirst unlinks and returns the head element.
	RemoveFirst() (E, error)
	// RemoveLast unlinks and returns the tail element.
	RemoveLast() (E, error)
	// RemoveAt unlinks and returns the element at index i.
	RemoveAt(i int) (E, error)
	// Remove unlinks the first element equal to e, scanning from the head.
	// It reports whether such an element was found.
	Remove(e E) bool
	// Values returns a copy of the elements from head to tail.
	Values() []E
}

var (
	_ List[int] = (*DoublyLinkedList[int])(nil)
	_ List[int] = (*SinglyLinkedList[int])(nil)
)

func equalComparable[E comparable](a, b E) bool {
	return a == b
}

// indexError wraps ErrIndexOutOfRange with the offending index and the list size.
func indexError(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size)
}

// emptyRemoveError matches both ErrEmptyCollection and ErrIndexOutOfRange,
// since removing from either end of an empty list is both.
func emptyRemoveError() error {
	return fmt.Errorf("%w: %w", ErrEmptyCollection, ErrIndexOutOfRange)
}

func mustEqual[E any](eq EqualFunc[E]) EqualFunc[E] {
	if eq == nil {
		panic("datastructures: list was created without an equality function")
	}
	return eq
}
