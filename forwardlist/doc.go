/*
Package forwardlist implements a singly linked list, similar to C++'s
std::forward_list.

Every element lives in a node of its own. Nodes are obtained from an allocator
rebound from the element allocator of the list (see alloc.Rebind), and are
linked by a single, non-owning "next" reference. The list itself holds the head
of the chain only; it does not keep track of its size and offers no O(1) access
to its end. Insertion and removal after a known position are O(1); erasing a
node other than the head needs a scan for its predecessor and is O(n).

	l := forwardlist.New[int]()
	pos := l.Begin()
	for i := 0; i < 4; i++ {
	    pos, _ = l.InsertAfter(pos, i) // inserting after End() prepends
	}
	// l is now (0,1,2,3)

Operations which allocate either succeed or leave the list unchanged.
Preconditions (non-empty list for Front and PopFront, positions belonging to the
list for InsertAfter and Erase, no self-assignment) are checked only when built
with tag 'labdebug'.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package forwardlist

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab/internal/debug"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lab.forwardlist'.
func tracer() tracing.Trace {
	return tracing.Select("lab.forwardlist")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if debug.Enabled && !that {
		panic(errors.AssertionFailedf("forwardlist: %s", fmt.Sprintf(msg, msgargs...)))
	}
}
