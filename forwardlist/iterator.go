package forwardlist

// Iterator denotes a position within a list. Iterators are small values and
// are meant to be passed and stored by value. They stay valid until the node
// they denote is erased.
//
// Lists are singly linked, thus iterators move forward only. The end position
// is represented by an iterator without a node; it must not be dereferenced.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an iterator to the first element of l, or End() if l is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

// End returns the past-the-end iterator of l.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Get dereferences the iterator.
func (it Iterator[T]) Get() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the element the iterator denotes.
func (it Iterator[T]) Ptr() *T {
	assertThat(it.n != nil, "dereferencing end iterator")
	return &it.n.value
}

// Next returns an iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] {
	assertThat(it.n != nil, "advancing end iterator")
	return Iterator[T]{n: it.n.next}
}

// Equal returns true if both iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}
