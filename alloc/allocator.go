package alloc

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab/internal/debug"
)

// Policy holds the propagation traits of an allocator. Containers consult
// the policy of their allocator when they are copied, move-assigned or swapped:
//
//   - PropagateOnCopy: copy-assignment replaces the target's allocator by the source's.
//   - PropagateOnMove: move-assignment takes over the source's allocator (and storage).
//   - PropagateOnSwap: Swap exchanges allocators along with the storage.
//   - AlwaysEqual: any two instances compare equal, i.e. the allocator is stateless.
type Policy struct {
	PropagateOnCopy bool
	PropagateOnMove bool
	PropagateOnSwap bool
	AlwaysEqual     bool
}

// Allocator is the capability set containers use to manage element storage.
//
// Allocate returns a block of n unconstructed slots. Construct brings a single
// slot to life, Destroy ends its life. Deallocate returns a block obtained
// from Allocate (constructed slots have to be destroyed before).
// Allocation and construction may fail; Deallocate and Destroy may not.
//
// SelectOnCopy returns the allocator a copy of a container should use.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(block []T)
	Construct(p *T, value T) error
	Destroy(p *T)
	MaxSize() int
	Equal(other Allocator[T]) bool
	Policy() Policy
	SelectOnCopy() Allocator[T]
	Resource() Resource
}

// Typed is the allocator implementation of this package. It hands out storage
// from a Resource.
type Typed[T any] struct {
	res     Resource
	copyRes Resource // resource for copies; nil means res
	policy  Policy
}

var _ Allocator[int] = (*Typed[int])(nil)

// Option is a type to help initializing allocators at creation time.
type Option func(*config)

type config struct {
	res     Resource
	copyRes Resource
	policy  Policy
}

// WithPolicy sets the propagation policy of an allocator. The default policy
// propagates on move only; AlwaysEqual is set for stateless resources.
//
//	a := alloc.New[int](res, alloc.WithPolicy(alloc.Policy{PropagateOnSwap: true}))
func WithPolicy(p Policy) Option {
	return func(conf *config) {
		conf.policy = p
	}
}

// WithCopyResource makes SelectOnCopy return an allocator drawing from res.
// Copies of containers will then allocate from res.
func WithCopyResource(res Resource) Option {
	return func(conf *config) {
		conf.copyRes = res
	}
}

// New creates an allocator for elements of type T, drawing from resource res.
// If res is nil, the heap resource is used.
func New[T any](res Resource, opts ...Option) *Typed[T] {
	if res == nil {
		res = Heap()
	}
	conf := &config{res: res, policy: defaultPolicy(res)}
	for _, option := range opts {
		option(conf)
	}
	return &Typed[T]{res: conf.res, copyRes: conf.copyRes, policy: conf.policy}
}

// Default returns an allocator for T drawing from the heap resource.
// Default allocators are stateless and compare equal.
func Default[T any]() *Typed[T] {
	return New[T](Heap())
}

// Rebind returns an allocator for elements of type U which shares resource and
// policy with allocator a.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	if t, ok := a.(*Typed[T]); ok {
		return &Typed[U]{res: t.res, copyRes: t.copyRes, policy: t.policy}
	}
	return &Typed[U]{res: a.Resource(), policy: a.Policy()}
}

func defaultPolicy(res Resource) Policy {
	return Policy{
		PropagateOnMove: true,
		AlwaysEqual:     res.IsEqual(Heap()),
	}
}

// --- API -------------------------------------------------------------------

// Allocate is part of interface Allocator.
func (a *Typed[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > a.MaxSize() {
		return nil, errors.Wrapf(ErrLengthExceeded, "allocating %d slots (maximum is %d)", n, a.MaxSize())
	}
	if n == 0 {
		return nil, nil
	}
	if err := a.res.Acquire(n, sizeOf[T]()); err != nil {
		return nil, errors.Wrapf(err, "allocating %d slots", n)
	}
	tracer().Debugf("allocated block of %d × %d bytes", n, sizeOf[T]())
	return make([]T, n), nil
}

// Deallocate is part of interface Allocator.
func (a *Typed[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	clear(block)
	a.res.Release(len(block), sizeOf[T]())
	tracer().Debugf("released block of %d × %d bytes", len(block), sizeOf[T]())
}

// Construct is part of interface Allocator. Construct with a Typed allocator
// never fails.
func (a *Typed[T]) Construct(p *T, value T) error {
	if debug.Enabled && p == nil {
		panic(errors.AssertionFailedf("alloc: construct at nil slot"))
	}
	*p = value
	return nil
}

// Destroy is part of interface Allocator. If T implements Finalizer, Destroy
// calls Finalize. The slot is reset to the zero value of T.
func (a *Typed[T]) Destroy(p *T) {
	finalize(p)
	var zero T
	*p = zero
}

// MaxSize is part of interface Allocator.
func (a *Typed[T]) MaxSize() int {
	size := sizeOf[T]()
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// Equal is part of interface Allocator. Storage allocated by one allocator may
// be deallocated by another one if and only if both compare equal.
func (a *Typed[T]) Equal(other Allocator[T]) bool {
	if other == nil {
		return false
	}
	if a.policy.AlwaysEqual && other.Policy().AlwaysEqual {
		return true
	}
	return a.res.IsEqual(other.Resource())
}

// Policy is part of interface Allocator.
func (a *Typed[T]) Policy() Policy {
	return a.policy
}

// SelectOnCopy is part of interface Allocator.
func (a *Typed[T]) SelectOnCopy() Allocator[T] {
	if a.copyRes == nil {
		return a
	}
	return &Typed[T]{res: a.copyRes, policy: a.policy}
}

// Resource is part of interface Allocator.
func (a *Typed[T]) Resource() Resource {
	return a.res
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
