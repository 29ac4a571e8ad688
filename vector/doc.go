/*
Package vector implements a growable contiguous sequence container, designed for
use-cases similar to C++'s std::vector: a single block of storage holding the
elements, separate bookkeeping of size and capacity, and geometric growth.

Unlike a Go slice, a Vector obtains and returns its storage exclusively through an
injected allocator (see package alloc), and every operation which may fail either
completes or leaves the vector as it was before the call:

	v := vector.New[int]()
	for i := 0; i < 10; i++ {
	    if err := v.PushBack(i); err != nil {
	        return err // v still holds elements 0…i-1
	    }
	}

A zero Vector is an empty vector using the default heap allocator.

# Growth

If a vector runs out of capacity, the new capacity will be

	old + old/2 + 2

which makes appending amortized O(1) and lets empty vectors grow as well.
Growth allocates a new block, relocates the elements and releases the old block.
Iterators remain usable across growth (they denote positions, not memory
addresses), but pointers obtained from Ptr, Index or Data are invalidated.

# Preconditions

Preconditions (non-empty vector for PopBack, Front and Back, indices in range
for Index, no self-assignment) are checked only when built with tag 'labdebug'.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lab.vector'.
func tracer() tracing.Trace {
	return tracing.Select("lab.vector")
}
