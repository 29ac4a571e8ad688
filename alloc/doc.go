/*
Package alloc defines the allocator capability set consumed by the containers of
this module.

Containers never create or drop element storage on their own. They ask an
Allocator for a block of unconstructed slots, bring single slots to life with
Construct, end their life with Destroy and hand the block back with Deallocate.
Whether an allocator instance travels with a container on copy, move or swap is
governed by the allocator's Policy.

An Allocator is typed; the memory source behind it is an untyped Resource.
Allocators for different element types may share a Resource (see Rebind), which
is how a linked list obtains an allocator for its nodes from the allocator for
its elements.

Two resources are provided: the stateless heap resource behind Default, and
Counting, a stateful resource which keeps book of outstanding objects and may
be limited to simulate allocation failure. Neither is meant as a general-purpose
memory allocator; the heap resource delegates to the Go runtime.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lab.alloc'.
func tracer() tracing.Trace {
	return tracing.Select("lab.alloc")
}
