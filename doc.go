/*
Package lab is a laboratory for allocator-aware generic containers.

The containers live in sub-packages:

  - vector: a growable contiguous sequence (similar to C++'s std::vector)
  - forwardlist: a singly linked list (similar to C++'s std::forward_list)

Both containers obtain every piece of storage through an allocator from package
alloc and give strong guarantees for operations which may fail: either the
operation succeeds or the container is left unchanged, with nothing leaked.

Package lab itself provides a small set of algorithms over forward positions,
which work with the iterators of either container:

	l, _ := forwardlist.Of(1, 2, 3)
	pos := lab.Find(l.Begin(), l.End(), 2)
	n := lab.Distance(l.Begin(), l.End()) // n = 3

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lab
