package vector

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab/alloc"
	"github.com/npillmayer/lab/internal/debug"
)

// grownCapacity is the capacity a full vector of capacity c grows to.
func grownCapacity(c int) int {
	return c + c/2 + 2
}

// fill constructs n elements at the front of a freshly allocated block, taking
// the value for slot i from source(i).
//
// If constructing any element fails (or panics), the elements constructed so
// far are destroyed and the block is handed back to the allocator before the
// failure propagates. With owned=false the values are relocated from storage
// which stays alive on failure; they are then dropped without being destroyed.
func (v *Vector[T]) fill(block []T, n int, owned bool, source func(int) (T, error)) (err error) {
	a := v.allocator()
	built, done := 0, false
	defer func() {
		if done {
			return
		}
		tracer().Errorf("rolling back construction of %d elements after %d", n, built)
		if owned {
			for i := built - 1; i >= 0; i-- {
				a.Destroy(&block[i])
			}
		}
		a.Deallocate(block)
	}()
	for ; built < n; built++ {
		var value T
		if value, err = source(built); err != nil {
			return err
		}
		if err = a.Construct(&block[built], value); err != nil {
			return errors.Wrapf(err, "constructing element %d", built)
		}
	}
	done = true
	return nil
}

// reallocate moves the elements of v to a new block of the given capacity.
// On failure v is left unchanged.
func (v *Vector[T]) reallocate(capacity int) error {
	assertThat(capacity >= v.size, "reallocating %d elements to capacity %d", v.size, capacity)
	a := v.allocator()
	block, err := a.Allocate(capacity)
	if err != nil {
		return err
	}
	old := v.block
	err = v.fill(block, v.size, false, func(i int) (T, error) {
		return old[i], nil
	})
	if err != nil {
		return err
	}
	tracer().Debugf("reallocated %d elements from capacity %d to %d", v.size, len(old), capacity)
	// relocated elements live on in the new block, so the old one is dropped
	// without destroying them
	a.Deallocate(old)
	v.block = block
	return nil
}

// grow makes room for at least one more element.
func (v *Vector[T]) grow() error {
	return v.reallocate(grownCapacity(len(v.block)))
}

// release destroys all elements and returns the block to the allocator.
// Destruction is skipped for trivially destructible element types.
func (v *Vector[T]) release() {
	if v.block == nil {
		return
	}
	a := v.allocator()
	if !alloc.IsTrivial[T]() {
		for i := v.size - 1; i >= 0; i-- {
			a.Destroy(&v.block[i])
		}
	}
	a.Deallocate(v.block)
	v.block, v.size = nil, 0
}

// copyBlock creates a block of the given capacity from allocator a, holding
// copies of the live elements of v.
func (v *Vector[T]) copyBlock(a alloc.Allocator[T], capacity int) ([]T, error) {
	block, err := a.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	target := &Vector[T]{alloc: a}
	err = target.fill(block, v.size, true, func(i int) (T, error) {
		return alloc.CopyOf(v.block[i])
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if debug.Enabled && !that {
		panic(errors.AssertionFailedf("vector: %s", fmt.Sprintf(msg, msgargs...)))
	}
}
