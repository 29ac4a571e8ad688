package vector

// Iterator denotes a position within a vector. Iterators are small values and
// are meant to be passed and stored by value.
//
// As storage is contiguous, iterators support random access: they may be moved
// by arbitrary offsets (Add), subtracted (Diff) and ordered (Less).
// An iterator at End() must not be dereferenced.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

// Begin returns an iterator to the first element of v.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v, i: 0}
}

// End returns the past-the-end iterator of v.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, i: v.size}
}

// IteratorAt returns an iterator to the element at index i.
func (v *Vector[T]) IteratorAt(i int) Iterator[T] {
	assertThat(i >= 0 && i <= v.size, "iterator position %d out of range with size %d", i, v.size)
	return Iterator[T]{v: v, i: i}
}

// Get dereferences the iterator.
func (it Iterator[T]) Get() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the element the iterator denotes. The pointer is
// invalidated by reallocation of the vector.
func (it Iterator[T]) Ptr() *T {
	assertThat(it.v != nil && it.i >= 0 && it.i < it.v.size,
		"dereferencing iterator at %d, which is not in range", it.i)
	return &it.v.block[it.i]
}

// Next returns an iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] {
	it.i++
	return it
}

// Prev returns an iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] {
	it.i--
	return it
}

// Add returns an iterator moved by n positions (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Diff returns the distance from other to it, i.e. it = other.Add(d).
// Both iterators have to belong to the same vector.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	assertThat(it.v == other.v, "difference of iterators of different vectors")
	return it.i - other.i
}

// Less returns true if it denotes a position before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Diff(other) < 0
}

// Equal returns true if both iterators denote the same position of the same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.i == other.i
}

// Index returns the index of the position the iterator denotes.
func (it Iterator[T]) Index() int {
	return it.i
}

// --- Reverse iteration -----------------------------------------------------

// ReverseIterator traverses a vector from back to front. A reverse iterator
// refers to the element preceding its base position.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse iterator to the last element of v.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.End()}
}

// REnd returns the past-the-end reverse iterator of v, i.e. the position
// before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.Begin()}
}

// Get dereferences the reverse iterator.
func (r ReverseIterator[T]) Get() T {
	return r.base.Prev().Get()
}

// Ptr returns a pointer to the element the reverse iterator denotes.
func (r ReverseIterator[T]) Ptr() *T {
	return r.base.Prev().Ptr()
}

// Next moves towards the front of the vector.
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	r.base = r.base.Prev()
	return r
}

// Prev moves towards the back of the vector.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	r.base = r.base.Next()
	return r
}

// Add moves the reverse iterator by n positions towards the front.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	r.base = r.base.Add(-n)
	return r
}

// Equal returns true if both reverse iterators denote the same position.
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Base returns the underlying forward iterator, which denotes the element
// following the one r refers to.
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}
