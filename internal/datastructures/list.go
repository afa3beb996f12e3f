package datastructures

type (
	// List represents a doubly linked list.
	//
	// Nodes live in an arena owned by the list and link to each other by
	// handle. A List must not be copied after first use; use Clone.
	List[T any] struct {
		noCopy noCopy

		nodes  []node[T]
		free   handle
		head   handle
		tail   handle
		length int
	}

	// node holds one element and the handles of its neighbours.
	node[T any] struct {
		value T
		prev  handle
		next  handle
	}

	// handle is a 1-based slot index into the arena, 0 means no node.
	handle int
)

// noCopy makes go vet's copylocks check flag copies of a List.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewList creates a new list holding values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, value := range values {
		l.PushTail(value)
	}
	return l
}

func (l *List[T]) at(h handle) *node[T] {
	return &l.nodes[h-1]
}

// alloc takes a slot from the free chain, or grows the arena.
func (l *List[T]) alloc(value T) handle {
	if l.free != 0 {
		h := l.free
		n := l.at(h)
		l.free = n.next
		*n = node[T]{value: value}
		return h
	}
	l.nodes = append(l.nodes, node[T]{value: value})
	return handle(len(l.nodes))
}

// release zeroes the slot and returns it to the free chain.
func (l *List[T]) release(h handle) {
	*l.at(h) = node[T]{next: l.free}
	l.free = h
}

// PushHead adds a value to the head of the list.
func (l *List[T]) PushHead(value T) {
	h := l.alloc(value)
	if l.length == 0 {
		l.head = h
		l.tail = h
	} else {
		l.at(h).next = l.head
		l.at(l.head).prev = h
		l.head = h
	}
	l.length++
}

// PushTail adds a value to the tail of the list.
func (l *List[T]) PushTail(value T) {
	h := l.alloc(value)
	if l.length == 0 {
		l.head = h
		l.tail = h
	} else {
		l.at(h).prev = l.tail
		l.at(l.tail).next = h
		l.tail = h
	}
	l.length++
}

// PopHead removes and returns the value at the head of the list.
// It returns None when the list is empty.
func (l *List[T]) PopHead() Option[T] {
	if l.length == 0 {
		return None[T]()
	}
	old := l.head
	value := l.at(old).value
	if l.length == 1 {
		l.head = 0
		l.tail = 0
	} else {
		l.head = l.at(old).next
		l.at(l.head).prev = 0
	}
	l.release(old)
	l.length--
	return Some(value)
}

// PopTail removes and returns the value at the tail of the list.
// It returns None when the list is empty.
func (l *List[T]) PopTail() Option[T] {
	if l.length == 0 {
		return None[T]()
	}
	old := l.tail
	value := l.at(old).value
	if l.length == 1 {
		l.head = 0
		l.tail = 0
	} else {
		l.tail = l.at(old).prev
		l.at(l.tail).next = 0
	}
	l.release(old)
	l.length--
	return Some(value)
}

// PushAt inserts value so that it ends up at index. Valid indices are
// 0 through Len(), where Len() appends.
func (l *List[T]) PushAt(index int, value T) error {
	if index < 0 || index > l.length {
		return &IndexError{Op: "push", Index: index, Len: l.length}
	}
	if index == 0 {
		l.PushHead(value)
		return nil
	}
	if index == l.length {
		l.PushTail(value)
		return nil
	}

	prev := l.locate(index - 1)
	next := l.at(prev).next
	h := l.alloc(value)
	n := l.at(h)
	n.prev = prev
	n.next = next
	l.at(prev).next = h
	l.at(next).prev = h
	l.length++
	return nil
}

// PopAt removes and returns the value at index.
func (l *List[T]) PopAt(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, &IndexError{Op: "pop", Index: index, Len: l.length}
	}
	if index == 0 {
		value, _ := l.PopHead().Get()
		return value, nil
	}
	if index == l.length-1 {
		value, _ := l.PopTail().Get()
		return value, nil
	}

	h := l.locate(index)
	n := l.at(h)
	value := n.value
	l.at(n.prev).next = n.next
	l.at(n.next).prev = n.prev
	l.release(h)
	l.length--
	return value, nil
}

// At returns the value at index.
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, &IndexError{Op: "get", Index: index, Len: l.length}
	}
	return l.at(l.locate(index)).value, nil
}

// locate walks to the node at index from whichever end is closer.
// The caller has already checked that index is in range.
func (l *List[T]) locate(index int) handle {
	if index == 0 {
		return l.head
	}
	if index == l.length-1 {
		return l.tail
	}
	if index <= l.length/2 {
		h := l.head
		for i := 0; i < index; i++ {
			h = l.at(h).next
		}
		return h
	}
	h := l.tail
	for i := l.length - 1; i > index; i-- {
		h = l.at(h).prev
	}
	return h
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Size is an alias for Len.
func (l *List[T]) Size() int {
	return l.Len()
}

// Clear removes all elements from the list. The arena is kept and its
// slots are reused by later pushes.
func (l *List[T]) Clear() {
	for h := l.head; h != 0; {
		next := l.at(h).next
		l.release(h)
		h = next
	}
	l.head = 0
	l.tail = 0
	l.length = 0
}

// Clone returns a deep copy of the list with a compacted arena.
// Values themselves are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{nodes: make([]node[T], 0, l.length)}
	for h := l.head; h != 0; h = l.at(h).next {
		c.PushTail(l.at(h).value)
	}
	return c
}

// Values returns the elements from head to tail.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for h := l.head; h != 0; h = l.at(h).next {
		values = append(values, l.at(h).value)
	}
	return values
}

// Reverse returns the elements from tail to head.
func (l *List[T]) Reverse() []T {
	values := make([]T, 0, l.length)
	for h := l.tail; h != 0; h = l.at(h).prev {
		values = append(values, l.at(h).value)
	}
	return values
}
