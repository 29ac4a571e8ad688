package alloc

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Resource is the untyped memory source behind typed allocators. Acquire is
// called for every block (or node) handed out, Release for every block handed
// back; n is the number of objects and size the size of a single object.
//
// Resources are compared with IsEqual: storage acquired from one resource may
// be released to another one only if both compare equal.
type Resource interface {
	Acquire(n int, size uintptr) error
	Release(n int, size uintptr)
	IsEqual(other Resource) bool
}

// --- Heap resource ---------------------------------------------------------

// heap delegates to the Go runtime. It is stateless: all heap resources compare
// equal and acquisition never fails.
type heap struct{}

var _ Resource = heap{}

// Heap returns the shared, stateless heap resource.
func Heap() Resource {
	return heap{}
}

func (heap) Acquire(int, uintptr) error { return nil }
func (heap) Release(int, uintptr)       {}

func (heap) IsEqual(other Resource) bool {
	_, ok := other.(heap)
	return ok
}

func (heap) String() string {
	return "heap"
}

// --- Counting resource -----------------------------------------------------

// Counting is a stateful resource which keeps book of the objects it has handed
// out. It is used to check containers for leaks and, by setting a limit, to
// make allocation fail at a well-defined point.
//
// A Counting resource compares equal to itself only. It is not safe for
// concurrent use.
type Counting struct {
	name          string
	limit         int // maximum number of outstanding objects; 0 means unlimited
	live          int
	peak          int
	bytes         uintptr
	allocations   int
	deallocations int
}

var _ Resource = (*Counting)(nil)

// CountingOption configures a Counting resource at creation time.
type CountingOption func(*Counting)

// WithLimit limits the number of objects which may be outstanding at any time.
// An acquisition exceeding the limit fails with ErrAllocationFailed.
// A limit of 0 means unlimited.
func WithLimit(n int) CountingOption {
	return func(c *Counting) {
		c.limit = max(0, n)
	}
}

// WithName sets a name, used in error messages and tracing output.
func WithName(name string) CountingOption {
	return func(c *Counting) {
		c.name = name
	}
}

// NewCounting creates a Counting resource.
func NewCounting(opts ...CountingOption) *Counting {
	c := &Counting{name: "counting"}
	for _, option := range opts {
		option(c)
	}
	return c
}

// Acquire is part of interface Resource.
func (c *Counting) Acquire(n int, size uintptr) error {
	if c.limit > 0 && c.live+n > c.limit {
		tracer().Infof("resource %s: refusing %d objects, %d of %d in use", c.name, n, c.live, c.limit)
		return errors.WithDetailf(
			errors.Wrapf(ErrAllocationFailed, "resource %s", c.name),
			"%d objects requested, %d of %d in use", n, c.live, c.limit)
	}
	c.live += n
	c.peak = max(c.peak, c.live)
	c.bytes += uintptr(n) * size
	c.allocations++
	return nil
}

// Release is part of interface Resource.
func (c *Counting) Release(n int, size uintptr) {
	if n > c.live {
		tracer().Errorf("resource %s: releasing %d objects, but only %d are in use", c.name, n, c.live)
		n = c.live
	}
	c.live -= n
	c.bytes -= uintptr(n) * size
	c.deallocations++
}

// IsEqual is part of interface Resource.
func (c *Counting) IsEqual(other Resource) bool {
	o, ok := other.(*Counting)
	return ok && o == c
}

// SetLimit changes the limit of outstanding objects. A limit of 0 means unlimited.
func (c *Counting) SetLimit(n int) {
	c.limit = max(0, n)
}

// Live returns the number of objects currently handed out.
func (c *Counting) Live() int { return c.live }

// Peak returns the maximum number of objects which have been outstanding at any time.
func (c *Counting) Peak() int { return c.peak }

// Bytes returns the number of bytes currently handed out.
func (c *Counting) Bytes() uintptr { return c.bytes }

// Allocations returns the number of successful acquisitions.
func (c *Counting) Allocations() int { return c.allocations }

// Deallocations returns the number of releases.
func (c *Counting) Deallocations() int { return c.deallocations }

func (c *Counting) String() string {
	return fmt.Sprintf("%s(live=%d, peak=%d, alloc=%d, dealloc=%d)",
		c.name, c.live, c.peak, c.allocations, c.deallocations)
}
