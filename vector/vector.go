package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab/alloc"
)

// ErrOutOfRange is returned by At for indices outside of [0, Size()).
var ErrOutOfRange = errors.New("vector index out of range")

// Vector is a growable contiguous sequence of elements of type T.
//
// block holds the single allocation of the vector; len(block) is its capacity.
// Slots block[:size] hold live elements, slots block[size:] are allocated but
// not constructed.
type Vector[T any] struct {
	block []T
	size  int
	alloc alloc.Allocator[T]
}

// Option is a type to help initializing vectors at creation time.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator of a vector. The default is alloc.Default.
//
//	res := alloc.NewCounting()
//	v := vector.New[int](vector.WithAllocator[int](alloc.New[int](res)))
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = a
	}
}

// New creates an empty vector. No storage is allocated.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, option := range opts {
		option(v)
	}
	return v
}

// WithCount creates a vector of count zero-valued elements, with capacity count.
// If construction fails, nothing is left allocated.
func WithCount[T any](count int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if count == 0 {
		return v, nil
	}
	block, err := v.allocator().Allocate(count)
	if err != nil {
		return nil, err
	}
	var zero T
	if err = v.fill(block, count, true, func(int) (T, error) { return zero, nil }); err != nil {
		return nil, err
	}
	v.block, v.size = block, count
	return v, nil
}

// FromSlice creates a vector holding copies of values, in order. The capacity
// of the vector is exactly len(values). If copying an element fails, the
// elements copied so far are destroyed and the error is returned.
func FromSlice[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if len(values) == 0 {
		return v, nil
	}
	block, err := v.allocator().Allocate(len(values))
	if err != nil {
		return nil, err
	}
	err = v.fill(block, len(values), true, func(i int) (T, error) {
		return alloc.CopyOf(values[i])
	})
	if err != nil {
		return nil, err
	}
	v.block, v.size = block, len(values)
	return v, nil
}

// Of creates a vector from a list of values, using the default allocator.
func Of[T any](values ...T) (*Vector[T], error) {
	return FromSlice(values)
}

// Collect creates a vector from the values of seq, in order. As the number of
// values is not known in advance, the vector grows as values are appended.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	for value := range seq {
		c, err := alloc.CopyOf(value)
		if err == nil {
			err = v.PushBack(c)
		}
		if err != nil {
			v.release()
			return nil, err
		}
	}
	return v, nil
}

// Clone returns a copy of v. The copy uses the allocator selected by
// v's allocator's SelectOnCopy and has the same capacity as v.
//
// If copying fails, the partial copy is released and the error is returned.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	a := v.allocator().SelectOnCopy()
	block, err := v.copyBlock(a, len(v.block))
	if err != nil {
		return nil, err
	}
	return &Vector[T]{block: block, size: v.size, alloc: a}, nil
}

// Move returns a new vector which takes over storage and allocator of v.
// v is left empty. Move never fails and does not touch any element.
func (v *Vector[T]) Move() *Vector[T] {
	w := &Vector[T]{block: v.block, size: v.size, alloc: v.allocator()}
	v.block, v.size = nil, 0
	return w
}

// Destroy destroys all elements and hands the storage back to the allocator.
// Destruction of elements is skipped for trivially destructible element types
// (see alloc.Finalizer). v is left as an empty vector and may be reused.
func (v *Vector[T]) Destroy() {
	v.release()
}

// --- API -------------------------------------------------------------------

// Size returns the number of elements in v.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements v can hold without reallocation.
func (v *Vector[T]) Capacity() int {
	return len(v.block)
}

// Empty returns true if v holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxSize returns the maximum number of elements the allocator of v is able to
// provide storage for.
func (v *Vector[T]) MaxSize() int {
	return v.allocator().MaxSize()
}

// Allocator returns the allocator of v.
func (v *Vector[T]) Allocator() alloc.Allocator[T] {
	return v.allocator()
}

func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = alloc.Default[T]()
	}
	return v.alloc
}

// At returns the element at index i. If i is not in [0, Size()), At returns
// an error wrapping ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d with size %d", i, v.size)
	}
	return v.block[i], nil
}

// Index returns a pointer to the element at index i. The index is unchecked;
// clients must make sure that 0 ≤ i < Size().
func (v *Vector[T]) Index(i int) *T {
	assertThat(i >= 0 && i < v.size, "index %d out of range with size %d", i, v.size)
	return &v.block[i]
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T {
	assertThat(v.size > 0, "front of empty vector")
	return v.block[0]
}

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T {
	assertThat(v.size > 0, "back of empty vector")
	return v.block[v.size-1]
}

// Data returns the live elements of v as a slice sharing v's storage. The slice
// is invalidated by any operation which reallocates.
func (v *Vector[T]) Data() []T {
	return v.block[:v.size:v.size]
}

// PushBack appends value to v, growing v if it is full.
// If growing fails, v is unchanged.
func (v *Vector[T]) PushBack(value T) error {
	if v.size == len(v.block) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	if err := v.allocator().Construct(&v.block[v.size], value); err != nil {
		return errors.Wrapf(err, "appending element %d", v.size)
	}
	v.size++
	return nil
}

// EmplaceBack appends an element initialized by ctor. ctor receives a pointer
// to a zero value of T; if it returns an error, v is left unchanged and the
// error is returned.
func (v *Vector[T]) EmplaceBack(ctor func(*T) error) error {
	var value T
	if err := ctor(&value); err != nil {
		return errors.Wrap(err, "emplacing element")
	}
	return v.PushBack(value)
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	assertThat(v.size > 0, "pop from empty vector")
	v.size--
	v.allocator().Destroy(&v.block[v.size])
}

// Reserve makes sure v has capacity for at least n elements.
// If n exceeds the capacity, v is reallocated to capacity n.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.block) {
		return nil
	}
	if n > v.MaxSize() {
		return errors.Wrapf(alloc.ErrLengthExceeded, "reserving %d elements", n)
	}
	return v.reallocate(n)
}

// Resize changes the number of elements to n. Surplus elements are destroyed,
// missing elements are appended as zero values. If appending fails, v is left
// unchanged (its capacity may have grown).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrOutOfRange, "resizing to %d", n)
	}
	for v.size > n {
		v.PopBack()
	}
	if n == v.size {
		return nil
	}
	if n > len(v.block) {
		if err := v.reallocate(max(n, grownCapacity(len(v.block)))); err != nil {
			return err
		}
	}
	a := v.allocator()
	var zero T
	for i := v.size; i < n; i++ {
		if err := a.Construct(&v.block[i], zero); err != nil {
			for j := i - 1; j >= v.size; j-- {
				a.Destroy(&v.block[j])
			}
			return errors.Wrapf(err, "resizing to %d", n)
		}
	}
	v.size = n
	return nil
}

// ShrinkToFit reduces the capacity of v to its size. An empty vector hands back
// its storage. If reallocation fails, v is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.block) {
		return nil
	}
	if v.size == 0 {
		v.allocator().Deallocate(v.block)
		v.block = nil
		return nil
	}
	return v.reallocate(v.size)
}

// Clear destroys all elements and releases the storage of v; afterwards
// Capacity() is 0. Clearing an empty vector is a no-op.
func (v *Vector[T]) Clear() {
	v.release()
}

// Insert inserts value before position pos and returns an iterator to the
// inserted element. pos must be an iterator of v in [Begin(), End()].
// If growing or constructing the element fails, v is unchanged.
func (v *Vector[T]) Insert(pos Iterator[T], value T) (Iterator[T], error) {
	assertThat(pos.v == v, "insert position belongs to another vector")
	at := pos.i
	assertThat(at >= 0 && at <= v.size, "insert position %d out of range with size %d", at, v.size)
	if v.size == len(v.block) {
		if err := v.grow(); err != nil {
			return pos, err
		}
	}
	a := v.allocator()
	if at == v.size {
		if err := a.Construct(&v.block[at], value); err != nil {
			return pos, errors.Wrapf(err, "inserting element at %d", at)
		}
		v.size++
		return Iterator[T]{v: v, i: at}, nil
	}
	// relocate the last element into the first unconstructed slot, then shift
	if err := a.Construct(&v.block[v.size], v.block[v.size-1]); err != nil {
		return pos, errors.Wrapf(err, "inserting element at %d", at)
	}
	copy(v.block[at+1:v.size], v.block[at:v.size-1])
	if err := a.Construct(&v.block[at], value); err != nil {
		// undo the shift, moving the relocated last element back
		copy(v.block[at:v.size], v.block[at+1:v.size+1])
		var zero T
		v.block[v.size] = zero
		return pos, errors.Wrapf(err, "inserting element at %d", at)
	}
	v.size++
	return Iterator[T]{v: v, i: at}, nil
}

// Erase removes the element at position pos and returns an iterator to the
// element following it. pos must be a dereferenceable iterator of v.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements in [first, last) and returns an iterator to
// the element following the last removed one.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	assertThat(first.v == v && last.v == v, "erase range belongs to another vector")
	from, to := first.i, last.i
	assertThat(0 <= from && from <= to && to <= v.size, "erase range [%d,%d) invalid with size %d", from, to, v.size)
	if from == to {
		return first
	}
	a := v.allocator()
	for i := from; i < to; i++ {
		a.Destroy(&v.block[i])
	}
	n := copy(v.block[from:], v.block[to:v.size])
	// slots behind the moved elements are unconstructed from now on
	clear(v.block[from+n : v.size])
	v.size -= to - from
	return Iterator[T]{v: v, i: from}
}

// Swap exchanges the contents of v and other. Allocators are exchanged only if
// the policy of v's allocator says so; otherwise both allocators have to
// compare equal.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v.allocator().Policy().PropagateOnSwap {
		v.alloc, other.alloc = other.allocator(), v.alloc
	} else {
		assertThat(v.alloc.Equal(other.allocator()), "swapping vectors with unequal allocators")
	}
	v.block, other.block = other.block, v.block
	v.size, other.size = other.size, v.size
}

// Assign replaces the contents of v by copies of the elements of other
// (copy-assignment). v's allocator is replaced by other's if the policy of
// v's allocator propagates on copy. The copy is made before v's elements are
// released, thus if copying fails v is unchanged.
//
// other must not be v.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	assertThat(other != v, "self-assignment of vector")
	a := v.allocator()
	if a.Policy().PropagateOnCopy {
		a = other.allocator()
	}
	block, err := other.copyBlock(a, other.size)
	if err != nil {
		return err
	}
	v.release()
	v.alloc, v.block, v.size = a, block, other.size
	return nil
}

// MoveAssign replaces the contents of v by the elements of other
// (move-assignment), leaving other empty. If v's allocator propagates on move
// or both allocators compare equal, v takes over other's storage. Otherwise the
// elements are relocated into storage from v's allocator, which may fail; in
// this case both vectors are unchanged.
//
// other must not be v.
func (v *Vector[T]) MoveAssign(other *Vector[T]) error {
	assertThat(other != v, "self-move-assignment of vector")
	a := v.allocator()
	if a.Policy().PropagateOnMove || a.Equal(other.allocator()) {
		v.release()
		if a.Policy().PropagateOnMove {
			v.alloc = other.allocator()
		}
		v.block, v.size = other.block, other.size
		other.block, other.size = nil, 0
		return nil
	}
	tracer().Debugf("move-assign with unequal allocators, relocating %d elements", other.size)
	block, err := a.Allocate(other.size)
	if err != nil {
		return err
	}
	err = v.fill(block, other.size, false, func(i int) (T, error) {
		return other.block[i], nil
	})
	if err != nil {
		return err
	}
	v.release()
	v.block, v.size = block, other.size
	// relocated elements live on in v
	other.allocator().Deallocate(other.block)
	other.block, other.size = nil, 0
	return nil
}

// --- Iteration -------------------------------------------------------------

// All returns an iterator over index/value pairs of v, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of v, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.block[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs of v, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", v.block[i]))
	}
	b.WriteByte(']')
	return b.String()
}
