package alloc

import "github.com/cockroachdb/errors"

// ErrAllocationFailed is returned if a Resource is unable to provide storage.
var ErrAllocationFailed = errors.New("allocation failed")

// ErrLengthExceeded is returned if more slots are requested than an allocator
// is able to provide (see Allocator.MaxSize).
var ErrLengthExceeded = errors.New("requested length exceeds maximum size")

// ErrConstructionFailed marks errors raised while bringing an element to life,
// either by an allocator's Construct or by an element's Clone.
var ErrConstructionFailed = errors.New("element construction failed")

// constructionFailure marks err as a construction failure, keeping err as
// the cause.
func constructionFailure(err error, msg string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(err, msg, args...), ErrConstructionFailed)
}
