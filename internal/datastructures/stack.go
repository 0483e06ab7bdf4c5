package datastructures

// Stack is a LIFO container backed by the tail of a DoublyLinkedList.
type Stack[E any] struct {
	list *DoublyLinkedList[E]
}

// NewStack creates an empty stack.
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{list: NewDoublyLinkedListFunc[E](nil)}
}

// Push adds e to the top of the stack.
func (s *Stack[E]) Push(e E) {
	s.list.Add(e)
}

// Pop removes and returns the top element.
func (s *Stack[E]) Pop() (E, error) {
	top, err := s.list.GetLast()
	if err != nil {
		return top, err
	}
	if _, err := s.list.RemoveLast(); err != nil {
		return top, err
	}
	return top, nil
}

// Peek returns the top element without removing it.
func (s *Stack[E]) Peek() (E, error) {
	return s.list.GetLast()
}

func (s *Stack[E]) Size() int {
	return s.list.Size()
}

func (s *Stack[E]) IsEmpty() bool {
	return s.list.IsEmpty()
}
