//go:build !labdebug

package debug

// Enabled is true if the module was built with the labdebug build tag.
// Container preconditions (self-assignment, popping from an empty container,
// dereferencing an end iterator, …) are asserted only if Enabled is set.
const Enabled = false
