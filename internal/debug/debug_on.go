//go:build labdebug

package debug

// Enabled is true if the module was built with the labdebug build tag.
const Enabled = true
