/*
Package alloctest provides element types and allocators for testing
allocator-aware containers.

Item is an element type which keeps book of its copies and finalizations, and
whose copies may be made to fail. Faulty wraps an allocator and makes Construct
fail after a given number of calls. Together with alloc.Counting (which may be
limited to make Allocate fail) they allow checking that containers leave
nothing behind when an operation fails.
*/
package alloctest

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab/alloc"
)

// ErrCloneFailed is returned by Item.Clone when the clone budget of its
// registry is exhausted.
var ErrCloneFailed = errors.New("clone failed")

// ErrConstructFailed is returned by Faulty.Construct when its budget is exhausted.
var ErrConstructFailed = errors.New("construct failed")

// Registry keeps book of the Items created from it.
type Registry struct {
	budget    int // remaining successful clones; negative means unlimited
	Clones    int // successful clones
	Finalized int // calls of Finalize
}

// NewRegistry creates a registry with an unlimited clone budget.
func NewRegistry() *Registry {
	return &Registry{budget: -1}
}

// FailCloneAfter lets the (n+1)-th clone from now on fail.
// n < 0 makes cloning succeed again.
func (r *Registry) FailCloneAfter(n int) {
	r.budget = n
}

// Item creates an element with value v.
func (r *Registry) Item(v int) Item {
	return Item{Value: v, reg: r}
}

// Items creates elements with values values.
func (r *Registry) Items(values ...int) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = r.Item(v)
	}
	return items
}

// Item is an element type implementing alloc.Cloner and alloc.Finalizer.
// The zero Item has no registry; cloning and finalizing it is not recorded.
type Item struct {
	Value int
	reg   *Registry
}

var _ alloc.Cloner[Item] = Item{}
var _ alloc.Finalizer = Item{}

// Clone is part of interface alloc.Cloner.
func (it Item) Clone() (Item, error) {
	if it.reg == nil {
		return it, nil
	}
	if it.reg.budget == 0 {
		return Item{}, errors.Wrapf(ErrCloneFailed, "cloning item %d", it.Value)
	}
	if it.reg.budget > 0 {
		it.reg.budget--
	}
	it.reg.Clones++
	return it, nil
}

// Finalize is part of interface alloc.Finalizer.
func (it Item) Finalize() {
	if it.reg != nil {
		it.reg.Finalized++
	}
}

// Values returns the values of items.
func Values(items []Item) []int {
	values := make([]int, len(items))
	for i, it := range items {
		values[i] = it.Value
	}
	return values
}

// --- Faulty allocator ------------------------------------------------------

// Faulty is an allocator which lets Construct fail once its budget is
// exhausted. All other operations are delegated.
type Faulty[T any] struct {
	alloc.Allocator[T]
	budget int // remaining successful constructions; negative means unlimited
}

// NewFaulty wraps allocator a. Construct succeeds n times, then fails.
// n < 0 means unlimited.
func NewFaulty[T any](a alloc.Allocator[T], n int) *Faulty[T] {
	return &Faulty[T]{Allocator: a, budget: n}
}

// FailAfter resets the construction budget to n.
func (f *Faulty[T]) FailAfter(n int) {
	f.budget = n
}

// Construct is part of interface alloc.Allocator.
func (f *Faulty[T]) Construct(p *T, value T) error {
	if f.budget == 0 {
		return ErrConstructFailed
	}
	if f.budget > 0 {
		f.budget--
	}
	return f.Allocator.Construct(p, value)
}

// SelectOnCopy is part of interface alloc.Allocator. Copies share the budget.
func (f *Faulty[T]) SelectOnCopy() alloc.Allocator[T] {
	return f
}
