package core

import (
	"errors"
	"sort"
	"sync"

	"github.com/vskvj3/seqlist/internal/datastructures"
	"github.com/vskvj3/seqlist/internal/utils"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrWrongType   = errors.New("operation against a key holding the wrong kind of value")
	ErrEmptyKey    = errors.New("key cannot be empty")
)

// Database stores named lists and stacks. The containers are not safe for
// concurrent use, so every access goes through the database mutex.
type Database struct {
	mu       sync.Mutex
	listKind string
	lists    map[string]datastructures.List[string]
	stacks   map[string]*datastructures.Stack[string]
}

// Create a new database instance. listKind selects the list implementation
// used for new keys (utils.ListKindDoubly or utils.ListKindSingly).
func NewDatabase(listKind string) *Database {
	return &Database{
		listKind: listKind,
		lists:    make(map[string]datastructures.List[string]),
		stacks:   make(map[string]*datastructures.Stack[string]),
	}
}

func (db *Database) newList() datastructures.List[string] {
	if db.listKind == utils.ListKindSingly {
		return datastructures.NewSinglyLinkedList[string]()
	}
	return datastructures.NewDoublyLinkedList[string]()
}

// list returns the list at key. With create set, a missing key gets a new
// list that is only stored once the caller's write succeeds.
func (db *Database) list(key string, create bool) (l datastructures.List[string], store func(), err error) {
	if key == "" {
		return nil, nil, ErrEmptyKey
	}
	if _, ok := db.stacks[key]; ok {
		return nil, nil, ErrWrongType
	}
	if l, ok := db.lists[key]; ok {
		return l, func() {}, nil
	}
	if !create {
		return nil, nil, ErrKeyNotFound
	}
	l = db.newList()
	return l, func() { db.lists[key] = l }, nil
}

func (db *Database) stack(key string, create bool) (*datastructures.Stack[string], error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if _, ok := db.lists[key]; ok {
		return nil, ErrWrongType
	}
	s, ok := db.stacks[key]
	if !ok {
		if !create {
			return nil, ErrKeyNotFound
		}
		s = datastructures.NewStack[string]()
		db.stacks[key] = s
	}
	return s, nil
}

// LPush inserts value at the head of the list and returns the new length.
func (db *Database) LPush(key, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, store, err := db.list(key, true)
	if err != nil {
		return 0, err
	}
	l.AddFirst(value)
	store()
	return l.Size(), nil
}

// RPush appends value at the tail of the list and returns the new length.
func (db *Database) RPush(key, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, store, err := db.list(key, true)
	if err != nil {
		return 0, err
	}
	l.Add(value)
	store()
	return l.Size(), nil
}

// LInsert places value at index and returns the new length.
func (db *Database) LInsert(key string, index int, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, store, err := db.list(key, true)
	if err != nil {
		return 0, err
	}
	if err := l.Insert(index, value); err != nil {
		return 0, err
	}
	store()
	return l.Size(), nil
}

// LIndex returns the element at index.
func (db *Database) LIndex(key string, index int) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	return l.Get(index)
}

func (db *Database) LFirst(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	return l.GetFirst()
}

func (db *Database) LLast(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	return l.GetLast()
}

// LPop removes and returns the head of the list.
func (db *Database) LPop(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	return l.RemoveFirst()
}

// RPop removes and returns the tail of the list.
func (db *Database) RPop(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	return l.RemoveLast()
}

// LRemAt removes and returns the element at index.
func (db *Database) LRemAt(key string, index int) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	return l.RemoveAt(index)
}

// LRem removes the first occurrence of value and reports whether it was present.
func (db *Database) LRem(key, value string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return false, err
	}
	return l.Remove(value), nil
}

func (db *Database) LContains(key, value string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return false, err
	}
	return l.Contains(value), nil
}

func (db *Database) LLen(key string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return 0, err
	}
	return l.Size(), nil
}

// LRange returns all elements of the list from head to tail.
func (db *Database) LRange(key string) ([]string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return nil, err
	}
	return l.Values(), nil
}

// LClear empties the list. The key stays present.
func (db *Database) LClear(key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, _, err := db.list(key, false)
	if err != nil {
		return err
	}
	l.Clear()
	return nil
}

// SPush pushes value onto the stack and returns the new size.
func (db *Database) SPush(key, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, err := db.stack(key, true)
	if err != nil {
		return 0, err
	}
	s.Push(value)
	return s.Size(), nil
}

func (db *Database) SPop(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, err := db.stack(key, false)
	if err != nil {
		return "", err
	}
	return s.Pop()
}

func (db *Database) SPeek(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, err := db.stack(key, false)
	if err != nil {
		return "", err
	}
	return s.Peek()
}

func (db *Database) SLen(key string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, err := db.stack(key, false)
	if err != nil {
		return 0, err
	}
	return s.Size(), nil
}

// Keys returns every stored key in sorted order.
func (db *Database) Keys() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	keys := make([]string, 0, len(db.lists)+len(db.stacks))
	for k := range db.lists {
		keys = append(keys, k)
	}
	for k := range db.stacks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
