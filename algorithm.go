package lab

import (
	"fmt"
	"iter"
	"strings"
)

// Forward is the constraint for positions which may be advanced and compared.
// Iterators of both vector and forwardlist satisfy it.
type Forward[I any] interface {
	Next() I
	Equal(I) bool
}

// Readable is a Forward position which may be dereferenced.
type Readable[I any, T any] interface {
	Forward[I]
	Get() T
}

// Distance returns the number of steps from first to last.
// last has to be reachable from first.
func Distance[I Forward[I]](first, last I) int {
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Advance returns the position n steps after it. n must not be negative.
func Advance[I Forward[I]](it I, n int) I {
	for ; n > 0; n-- {
		it = it.Next()
	}
	return it
}

// Find returns the first position in [first, last) holding value, or last if
// there is none.
func Find[I Readable[I, T], T comparable](first, last I, value T) I {
	return FindIf(first, last, func(v T) bool { return v == value })
}

// FindIf returns the first position in [first, last) whose element satisfies
// pred, or last if there is none.
func FindIf[I Readable[I, T], T any](first, last I, pred func(T) bool) I {
	for ; !first.Equal(last); first = first.Next() {
		if pred(first.Get()) {
			return first
		}
	}
	return last
}

// Equal returns true if a and b yield the same elements in the same order.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()
	for {
		x, okA := nextA()
		y, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if x != y {
			return false
		}
	}
}

// Join renders the elements of seq with fmt's %v verb, separated by sep.
func Join[T any](seq iter.Seq[T], sep string) string {
	b := strings.Builder{}
	first := true
	for v := range seq {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	return b.String()
}
