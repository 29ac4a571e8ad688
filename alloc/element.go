package alloc

// Cloner is implemented by element types whose copy is more than a plain Go
// assignment (deep copies, copies of handles, …) and therefore may fail.
// Containers use Clone on every copy path: copy-construction, construction
// from a range and copy-assignment. Moving an element is always a plain
// assignment and never calls Clone.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Finalizer is implemented by element types which have to release something
// at the end of their lifetime. Allocator.Destroy calls Finalize before
// resetting the slot to the zero value.
//
// Element types without a finalizer are trivially destructible; containers may
// skip destroying them one by one when dropping a whole block.
type Finalizer interface {
	Finalize()
}

// CopyOf returns a copy of value. If T implements Cloner[T], the copy is made
// with Clone and a failure is reported as a construction failure. Otherwise the
// copy is a plain assignment and cannot fail.
func CopyOf[T any](value T) (T, error) {
	c, ok := any(value).(Cloner[T])
	if !ok {
		return value, nil
	}
	v, err := c.Clone()
	if err != nil {
		var zero T
		return zero, constructionFailure(err, "copying element of type %T", value)
	}
	return v, nil
}

// IsTrivial returns true if elements of type T need no finalization, i.e.
// neither T nor *T implements Finalizer.
func IsTrivial[T any]() bool {
	var zero T
	if _, ok := any(&zero).(Finalizer); ok {
		return false
	}
	_, ok := any(zero).(Finalizer)
	return !ok
}

func finalize[T any](p *T) {
	if f, ok := any(p).(Finalizer); ok {
		f.Finalize()
	} else if f, ok := any(*p).(Finalizer); ok {
		f.Finalize()
	}
}
