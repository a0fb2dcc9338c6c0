package cache

type node[K comparable] struct {
	key  K
	prev *node[K]
	next *node[K]
}

// List is a doubly-linked recency list.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used, tail is least recently used.
type List[K comparable] struct {
	head *node[K]
	tail *node[K]
	len  int
}

// NewList creates an empty recency list.
func NewList[K comparable]() *List[K] {
	return &List[K]{}
}

// Len returns the number of keys in the list.
func (l *List[K]) Len() int {
	return l.len
}

// PushFront adds key at the front (most recently used).
func (l *List[K]) PushFront(key K) {
	n := &node[K]{key: key}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.len++
}

// RemoveOldest removes and returns the least recently used key.
// Returns zero value and false if list is empty.
func (l *List[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}

	n := l.tail
	l.unlink(n)
	return n.key, true
}

// RemoveNewest removes and returns the most recently used key.
// Returns zero value and false if list is empty.
func (l *List[K]) RemoveNewest() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}

	n := l.head
	l.unlink(n)
	return n.key, true
}

// Drain removes every key, calling fn with each from oldest to newest.
func (l *List[K]) Drain(fn func(K)) {
	for l.tail != nil {
		n := l.tail
		l.unlink(n)
		fn(n.key)
	}
}

func (l *List[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	l.len--
}
