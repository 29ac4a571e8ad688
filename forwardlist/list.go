package forwardlist

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab/alloc"
	"github.com/npillmayer/lab/internal/debug"
)

// List is a singly linked list of elements of type T.
//
// The zero value is an empty list using the default allocator.
type List[T any] struct {
	head  *node[T]
	alloc alloc.Allocator[T]
	nodes alloc.Allocator[node[T]] // alloc rebound to nodes
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(*List[T])

// WithAllocator sets the element allocator of a list. Nodes are allocated from
// the same resource, see alloc.Rebind. The default is alloc.Default.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(l *List[T]) {
		l.alloc = a
		l.nodes = nil
	}
}

// New creates an empty list. No node is allocated.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, option := range opts {
		option(l)
	}
	return l
}

// FromSlice creates a list holding copies of values, in order.
// If creating a node fails, all nodes created so far are freed and the error
// is returned.
func FromSlice[T any](values []T, opts ...Option[T]) (*List[T], error) {
	return Collect(slices.Values(values), opts...)
}

// Of creates a list from a list of values, using the default allocator.
func Of[T any](values ...T) (*List[T], error) {
	return FromSlice(values)
}

// Collect creates a list holding copies of the values of seq, in order.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	head, err := l.build(seq, true)
	if err != nil {
		return nil, err
	}
	l.head = head
	return l, nil
}

// FromRange creates a list holding copies of the elements in [first, last).
// last has to be reachable from first.
func FromRange[T any](first, last Iterator[T], opts ...Option[T]) (*List[T], error) {
	return Collect(rangeOf(first, last), opts...)
}

// Clone returns a copy of l. The copy uses the allocator selected by l's
// allocator's SelectOnCopy. If copying fails, the partial copy is freed and the
// error is returned.
func (l *List[T]) Clone() (*List[T], error) {
	c := New(WithAllocator(l.allocator().SelectOnCopy()))
	head, err := c.build(l.All(), true)
	if err != nil {
		return nil, err
	}
	c.head = head
	return c, nil
}

// Move returns a new list which takes over the nodes and the allocator of l.
// l is left empty. Move never fails.
func (l *List[T]) Move() *List[T] {
	m := &List[T]{head: l.head, alloc: l.allocator(), nodes: l.nodeAllocator()}
	l.head = nil
	return m
}

// Destroy frees every node of l. l is left as an empty list and may be reused.
func (l *List[T]) Destroy() {
	l.Clear()
}

// --- API -------------------------------------------------------------------

// Empty returns true if l holds no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Allocator returns the element allocator of l.
func (l *List[T]) Allocator() alloc.Allocator[T] {
	return l.allocator()
}

func (l *List[T]) allocator() alloc.Allocator[T] {
	if l.alloc == nil {
		l.alloc = alloc.Default[T]()
	}
	return l.alloc
}

func (l *List[T]) nodeAllocator() alloc.Allocator[node[T]] {
	if l.nodes == nil {
		l.nodes = alloc.Rebind[node[T]](l.allocator())
	}
	return l.nodes
}

// Front returns the first element. l must not be empty.
func (l *List[T]) Front() T {
	return *l.FrontPtr()
}

// FrontPtr returns a pointer to the first element. l must not be empty.
func (l *List[T]) FrontPtr() *T {
	assertThat(l.head != nil, "front of empty list")
	return &l.head.value
}

// PushFront prepends value to l. If allocating the node fails, l is unchanged.
func (l *List[T]) PushFront(value T) error {
	n, err := l.newNode(value, l.head)
	if err != nil {
		return err
	}
	l.head = n
	return nil
}

// EmplaceFront prepends an element initialized by ctor. ctor receives a pointer
// to a zero value of T; if it returns an error, l is left unchanged.
func (l *List[T]) EmplaceFront(ctor func(*T) error) error {
	var value T
	if err := ctor(&value); err != nil {
		return errors.Wrap(err, "emplacing element")
	}
	return l.PushFront(value)
}

// InsertAfter inserts value after position pos and returns an iterator to the
// new element. If pos is End(), value becomes the new first element.
// pos must be End() or denote an element of l.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) (Iterator[T], error) {
	if pos.n == nil {
		if err := l.PushFront(value); err != nil {
			return pos, err
		}
		return l.Begin(), nil
	}
	if debug.Enabled {
		assertThat(l.owns(pos.n), "insert position is not an element of this list")
	}
	n, err := l.newNode(value, pos.n.next)
	if err != nil {
		return pos, err
	}
	pos.n.next = n
	tracer().Debugf("linked node %v after %v", n, pos.n)
	return Iterator[T]{n: n}, nil
}

// Erase removes the element at position pos and returns an iterator to the
// element following it. Erasing the first element is O(1), otherwise the
// predecessor of pos has to be searched for.
// pos must denote an element of l.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	assertThat(pos.n != nil, "erasing at end position")
	if pos.n == l.head {
		l.head = pos.n.next
		l.freeNode(pos.n, true)
		return Iterator[T]{n: l.head}
	}
	prev := l.head
	for prev != nil && prev.next != pos.n {
		prev = prev.next
	}
	assertThat(prev != nil, "erase position is not an element of this list")
	if prev == nil {
		return l.End()
	}
	tracer().Debugf("unlinking node %v after %v", pos.n, prev)
	prev.next = pos.n.next
	l.freeNode(pos.n, true)
	return Iterator[T]{n: prev.next}
}

// PopFront removes the first element. l must not be empty.
func (l *List[T]) PopFront() {
	assertThat(l.head != nil, "pop from empty list")
	n := l.head
	l.head = n.next
	l.freeNode(n, true)
}

// Clear removes all elements. Clearing an empty list is a no-op.
func (l *List[T]) Clear() {
	for l.head != nil {
		l.PopFront()
	}
}

// Swap exchanges the contents of l and other. Allocators are exchanged only if
// the policy of l's allocator says so; otherwise both allocators have to
// compare equal.
func (l *List[T]) Swap(other *List[T]) {
	if l.allocator().Policy().PropagateOnSwap {
		// element and node allocators travel together
		ln, on := l.nodeAllocator(), other.nodeAllocator()
		l.alloc, other.alloc = other.allocator(), l.alloc
		l.nodes, other.nodes = on, ln
	} else {
		assertThat(l.alloc.Equal(other.allocator()), "swapping lists with unequal allocators")
	}
	l.head, other.head = other.head, l.head
}

// Assign replaces the contents of l by copies of the elements of other
// (copy-assignment). l's allocator is replaced by other's if the policy of l's
// allocator propagates on copy. The copy is made before l's elements are
// removed, thus if copying fails l is unchanged.
//
// other must not be l.
func (l *List[T]) Assign(other *List[T]) error {
	assertThat(other != l, "self-assignment of list")
	tmp := &List[T]{alloc: l.allocator(), nodes: l.nodeAllocator()}
	if l.alloc.Policy().PropagateOnCopy {
		tmp.alloc, tmp.nodes = other.allocator(), other.nodeAllocator()
	}
	head, err := tmp.build(other.All(), true)
	if err != nil {
		return err
	}
	tmp.head = head
	l.Clear()
	l.alloc, l.nodes, l.head = tmp.alloc, tmp.nodes, tmp.head
	return nil
}

// MoveAssign replaces the contents of l by the elements of other
// (move-assignment), leaving other empty. If l's allocator propagates on move
// or both allocators compare equal, l takes over other's nodes. Otherwise the
// elements are relocated into nodes from l's allocator, which may fail; in
// this case both lists are unchanged.
//
// other must not be l.
func (l *List[T]) MoveAssign(other *List[T]) error {
	assertThat(other != l, "self-move-assignment of list")
	a := l.allocator()
	if a.Policy().PropagateOnMove || a.Equal(other.allocator()) {
		l.Clear()
		if a.Policy().PropagateOnMove {
			l.alloc, l.nodes = other.allocator(), other.nodeAllocator()
		}
		l.head, other.head = other.head, nil
		return nil
	}
	tracer().Debugf("move-assign with unequal allocators, rebuilding nodes")
	head, err := l.build(other.All(), false)
	if err != nil {
		return err
	}
	l.Clear()
	l.head = head
	// relocated values live on in l
	other.freeChain(other.head, false)
	other.head = nil
	return nil
}

// --- Iteration -------------------------------------------------------------

// All returns an iterator over the elements of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// rangeOf returns an iterator over the values in [first, last).
func rangeOf[T any](first, last Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	b.WriteByte(')')
	return b.String()
}
