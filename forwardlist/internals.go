package forwardlist

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab/alloc"
)

// node is a single link of the chain. A node is owned by exactly one
// predecessor (or by the list's head); next does not own anything by itself.
type node[T any] struct {
	value T
	next  *node[T]
}

func (n *node[T]) String() string {
	return fmt.Sprintf("(%v)", n.value)
}

// newNode allocates a node and constructs value into it. If construction
// fails, the node is handed back before the error propagates.
func (l *List[T]) newNode(value T, next *node[T]) (*node[T], error) {
	block, err := l.nodeAllocator().Allocate(1)
	if err != nil {
		return nil, errors.Wrap(err, "allocating list node")
	}
	n := &block[0]
	if err = l.allocator().Construct(&n.value, value); err != nil {
		l.nodes.Deallocate(block)
		return nil, errors.Wrap(err, "constructing list node")
	}
	n.next = next
	return n, nil
}

// freeNode hands a node back to the allocator. With destroy=true, the value of
// the node is destroyed before; otherwise the value has been relocated and
// lives on elsewhere.
func (l *List[T]) freeNode(n *node[T], destroy bool) {
	if destroy {
		l.allocator().Destroy(&n.value)
	}
	n.next = nil
	l.nodeAllocator().Deallocate(unsafe.Slice(n, 1))
}

// freeChain frees all nodes of the chain starting at n.
func (l *List[T]) freeChain(n *node[T], destroy bool) {
	for n != nil {
		next := n.next
		l.freeNode(n, destroy)
		n = next
	}
}

// build creates a chain of nodes from the values of seq, in input order, and
// returns its head. With copying=true the values are copied (see
// alloc.CopyOf), otherwise they are relocated.
//
// If any step fails (or panics), all nodes created so far are freed before the
// failure propagates.
func (l *List[T]) build(seq iter.Seq[T], copying bool) (*node[T], error) {
	var first, last *node[T]
	var err error
	count, done := 0, false
	defer func() {
		if !done {
			tracer().Errorf("rolling back construction of list after %d nodes", count)
			l.freeChain(first, copying)
		}
	}()
	for value := range seq {
		if copying {
			if value, err = alloc.CopyOf(value); err != nil {
				break
			}
		}
		var n *node[T]
		if n, err = l.newNode(value, nil); err != nil {
			break
		}
		if last == nil {
			first = n
		} else {
			last.next = n
		}
		last = n
		count++
	}
	if err != nil {
		return nil, errors.Wrapf(err, "building list node %d", count)
	}
	done = true
	tracer().Debugf("built chain of %d nodes", count)
	return first, nil
}

// owns returns true if n is a node of l. It is O(n) and used for checking
// preconditions only.
func (l *List[T]) owns(n *node[T]) bool {
	for m := l.head; m != nil; m = m.next {
		if m == n {
			return true
		}
	}
	return false
}
