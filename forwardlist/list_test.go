package forwardlist_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab"
	"github.com/npillmayer/lab/alloc"
	"github.com/npillmayer/lab/alloc/alloctest"
	"github.com/npillmayer/lab/forwardlist"
	"github.com/npillmayer/lab/internal/debug"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNumbers = []int{1, 2, 3, 4}

func values[T any](l *forwardlist.List[T]) []T {
	return slices.Collect(l.All())
}

func counted(res *alloc.Counting, opts ...alloc.Option) forwardlist.Option[int] {
	return forwardlist.WithAllocator[int](alloc.New[int](res, opts...))
}

func TestDefaultConstructor(t *testing.T) {
	var l forwardlist.List[int]
	assert.True(t, l.Empty())
	assert.True(t, forwardlist.New[int]().Empty())
}

func TestRangeConstructors(t *testing.T) {
	l, err := forwardlist.FromSlice(testNumbers)
	require.NoError(t, err)
	assert.False(t, l.Empty())
	assert.Equal(t, testNumbers, values(l))
	//
	m, err := forwardlist.Of(1, 2, 3, 4)
	require.NoError(t, err)
	assert.True(t, lab.Equal(l.All(), m.All()))
	//
	r, err := forwardlist.FromRange(lab.Advance(l.Begin(), 1), lab.Advance(l.Begin(), 3))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, values(r))
	//
	e, err := forwardlist.FromSlice([]int{})
	require.NoError(t, err)
	assert.True(t, e.Empty())
}

func TestConstructionFailureFreesNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lab.forwardlist")
	defer teardown()
	//
	res := alloc.NewCounting(alloc.WithLimit(2))
	_, err := forwardlist.FromSlice(testNumbers, counted(res))
	require.Error(t, err)
	assert.True(t, errors.Is(err, alloc.ErrAllocationFailed))
	assert.Equal(t, 0, res.Live())
	//
	reg := alloctest.NewRegistry()
	reg.FailCloneAfter(2)
	_, err = forwardlist.FromSlice(reg.Items(1, 2, 3))
	assert.True(t, errors.Is(err, alloctest.ErrCloneFailed))
	assert.Equal(t, 2, reg.Finalized, "the two copies made must be destroyed")
}

func TestClone(t *testing.T) {
	res := alloc.NewCounting()
	l, _ := forwardlist.FromSlice(testNumbers, counted(res))
	c, err := l.Clone()
	require.NoError(t, err)
	assert.False(t, c.Empty())
	assert.Equal(t, values(l), values(c))
	assert.True(t, l.Allocator().Equal(c.Allocator()))
	*c.FrontPtr() = 42
	assert.Equal(t, 1, l.Front(), "copies must be independent")
	assert.Equal(t, 8, res.Live())
	c.Destroy()
	l.Destroy()
	assert.Equal(t, 0, res.Live())
}

func TestCloneFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lab.forwardlist")
	defer teardown()
	//
	res := alloc.NewCounting()
	reg := alloctest.NewRegistry()
	a := alloc.New[alloctest.Item](res)
	l, err := forwardlist.FromSlice(reg.Items(1, 2, 3), forwardlist.WithAllocator[alloctest.Item](a))
	require.NoError(t, err)
	res.SetLimit(5)
	_, err = l.Clone()
	assert.True(t, errors.Is(err, alloc.ErrAllocationFailed))
	assert.Equal(t, 3, res.Live())
	assert.Equal(t, 2, reg.Finalized)
}

func TestMove(t *testing.T) {
	res := alloc.NewCounting()
	l, _ := forwardlist.FromSlice(testNumbers, counted(res))
	m := l.Move()
	assert.True(t, l.Empty())
	assert.Equal(t, testNumbers, values(m))
	assert.True(t, l.Allocator().Equal(m.Allocator()))
	m.Destroy()
	assert.Equal(t, 0, res.Live())
}

func TestMoveAssign(t *testing.T) {
	l, _ := forwardlist.FromSlice(testNumbers)
	m, _ := forwardlist.Of(9)
	require.NoError(t, m.MoveAssign(l))
	assert.True(t, l.Empty())
	assert.Equal(t, testNumbers, values(m))
}

func TestMoveAssignUnequalAllocators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lab.forwardlist")
	defer teardown()
	//
	r1, r2 := alloc.NewCounting(), alloc.NewCounting()
	fixed := alloc.WithPolicy(alloc.Policy{})
	l, _ := forwardlist.FromSlice(testNumbers, counted(r1, fixed))
	m := forwardlist.New(counted(r2, fixed))
	require.NoError(t, m.PushFront(9))
	require.NoError(t, m.MoveAssign(l))
	assert.True(t, l.Empty())
	assert.Equal(t, testNumbers, values(m))
	assert.Equal(t, 0, r1.Live())
	assert.Equal(t, 4, r2.Live())
	assert.True(t, m.Allocator().Resource().IsEqual(r2))
	//
	n, _ := forwardlist.FromSlice([]int{5, 6, 7}, counted(r1, fixed))
	r2.SetLimit(6)
	err := m.MoveAssign(n)
	assert.True(t, errors.Is(err, alloc.ErrAllocationFailed))
	assert.Equal(t, testNumbers, values(m))
	assert.Equal(t, []int{5, 6, 7}, values(n))
	assert.Equal(t, 4, r2.Live())
}

func TestAssign(t *testing.T) {
	l, _ := forwardlist.FromSlice(testNumbers)
	m, _ := forwardlist.Of(7, 8)
	require.NoError(t, m.Assign(l))
	assert.Equal(t, values(l), values(m))
	//
	r1, r2 := alloc.NewCounting(), alloc.NewCounting()
	x, _ := forwardlist.FromSlice([]int{1, 2}, counted(r1))
	y := forwardlist.New(counted(r2, alloc.WithPolicy(alloc.Policy{PropagateOnCopy: true})))
	require.NoError(t, y.Assign(x))
	assert.True(t, y.Allocator().Resource().IsEqual(r1))
	assert.Equal(t, 4, r1.Live())
	assert.Equal(t, 0, r2.Live())
}

func TestAssignFailureLeavesTargetUnchanged(t *testing.T) {
	reg := alloctest.NewRegistry()
	l, _ := forwardlist.FromSlice(reg.Items(1, 2, 3))
	m, _ := forwardlist.FromSlice(reg.Items(7, 8))
	reg.FailCloneAfter(1)
	err := m.Assign(l)
	assert.True(t, errors.Is(err, alloctest.ErrCloneFailed))
	assert.Equal(t, []int{7, 8}, alloctest.Values(values(m)))
}

func TestFront(t *testing.T) {
	l, _ := forwardlist.FromSlice(testNumbers)
	assert.Equal(t, 1, l.Front())
}

func TestPushFront(t *testing.T) {
	l := forwardlist.New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.PushFront(i))
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, values(l))
	//
	res := alloc.NewCounting(alloc.WithLimit(1))
	m := forwardlist.New(counted(res))
	require.NoError(t, m.PushFront(1))
	err := m.PushFront(2)
	assert.True(t, errors.Is(err, alloc.ErrAllocationFailed))
	assert.Equal(t, []int{1}, values(m))
}

func TestEmplaceFront(t *testing.T) {
	l := forwardlist.New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.EmplaceFront(func(p *int) error {
			*p = i
			return nil
		}))
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, values(l))
	err := l.EmplaceFront(func(*int) error { return errors.New("no value") })
	require.Error(t, err)
	assert.Equal(t, 4, l.Front())
}

func TestPopFront(t *testing.T) {
	res := alloc.NewCounting()
	l, _ := forwardlist.FromSlice(testNumbers, counted(res))
	for _, x := range testNumbers[1:] {
		l.PopFront()
		assert.Equal(t, x, l.Front())
	}
	for !l.Empty() {
		l.PopFront()
	}
	assert.True(t, l.Empty())
	assert.Equal(t, 0, res.Live())
}

func TestIterator(t *testing.T) {
	l := forwardlist.New[int]()
	assert.True(t, l.Begin().Equal(l.End()))
	require.NoError(t, l.PushFront(120))
	assert.False(t, l.Begin().Equal(l.End()))
	assert.Equal(t, 120, l.Begin().Get())
	assert.True(t, l.Begin().Next().Equal(l.End()))
	l.PopFront()
	assert.True(t, l.Begin().Equal(l.End()))
}

func TestClear(t *testing.T) {
	var empty forwardlist.List[int]
	empty.Clear()
	assert.True(t, empty.Empty())
	res := alloc.NewCounting()
	filled, _ := forwardlist.FromSlice(testNumbers, counted(res))
	filled.Clear()
	assert.True(t, filled.Empty())
	filled.Clear()
	assert.True(t, filled.Empty())
	assert.Equal(t, 0, res.Live())
}

func TestInsertAfter(t *testing.T) {
	l := forwardlist.New[int]()
	pos := l.Begin()
	for _, x := range testNumbers {
		inserted, err := l.InsertAfter(pos, x)
		require.NoError(t, err)
		assert.Equal(t, x, inserted.Get())
		pos = inserted
	}
	assert.Equal(t, testNumbers, values(l))
	//
	_, err := l.InsertAfter(l.Begin(), 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 9, 2, 3, 4}, values(l))
	_, err = l.InsertAfter(l.End(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 9, 2, 3, 4}, values(l))
}

func TestErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lab.forwardlist")
	defer teardown()
	//
	res := alloc.NewCounting()
	l, _ := forwardlist.FromSlice(testNumbers, counted(res))
	next := l.Erase(lab.Find(l.Begin(), l.End(), 2))
	assert.Equal(t, 3, next.Get())
	assert.Equal(t, []int{1, 3, 4}, values(l))
	l.Erase(l.Begin())
	assert.Equal(t, []int{3, 4}, values(l))
	next = l.Erase(lab.Find(l.Begin(), l.End(), 4))
	assert.True(t, next.Equal(l.End()))
	assert.Equal(t, []int{3}, values(l))
	assert.Equal(t, 1, res.Live())
}

func TestEraseDestroysElement(t *testing.T) {
	reg := alloctest.NewRegistry()
	l, _ := forwardlist.FromSlice(reg.Items(1, 2, 3))
	l.Erase(l.Begin().Next())
	assert.Equal(t, 1, reg.Finalized)
	l.Destroy()
	assert.Equal(t, 3, reg.Finalized)
}

func TestSwap(t *testing.T) {
	var empty forwardlist.List[int]
	filled, _ := forwardlist.FromSlice(testNumbers)
	empty.Swap(filled)
	assert.False(t, empty.Empty())
	assert.True(t, filled.Empty())
	assert.True(t, empty.Allocator().Equal(filled.Allocator()))
	//
	r1, r2 := alloc.NewCounting(), alloc.NewCounting()
	swapping := alloc.WithPolicy(alloc.Policy{PropagateOnSwap: true})
	x, _ := forwardlist.FromSlice([]int{1}, counted(r1, swapping))
	y, _ := forwardlist.FromSlice([]int{2, 3}, counted(r2, swapping))
	x.Swap(y)
	assert.Equal(t, []int{2, 3}, values(x))
	assert.True(t, x.Allocator().Resource().IsEqual(r2))
	x.Destroy()
	y.Destroy()
	assert.Equal(t, 0, r1.Live())
	assert.Equal(t, 0, r2.Live())
}

func TestSwapWithUnusedList(t *testing.T) {
	r1, r2 := alloc.NewCounting(), alloc.NewCounting()
	swapping := alloc.WithPolicy(alloc.Policy{PropagateOnSwap: true})
	unused := forwardlist.New(counted(r1, swapping))
	filled, _ := forwardlist.FromSlice([]int{1, 2}, counted(r2, swapping))
	unused.Swap(filled)
	assert.True(t, filled.Allocator().Resource().IsEqual(r1))
	assert.True(t, unused.Allocator().Resource().IsEqual(r2))
	require.NoError(t, filled.PushFront(7))
	assert.Equal(t, 1, r1.Live(), "new node of filled must come from its element resource")
	require.NoError(t, unused.PushFront(0))
	assert.Equal(t, 3, r2.Live())
	assert.Equal(t, []int{0, 1, 2}, values(unused))
	//
	filled.Destroy()
	unused.Destroy()
	assert.Equal(t, 0, r1.Live())
	assert.Equal(t, 0, r2.Live())
}

func TestScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lab.forwardlist")
	defer teardown()
	//
	res := alloc.NewCounting()
	l := forwardlist.New(counted(res))
	pos := l.Begin()
	for i := 0; i < 10; i++ {
		pos, _ = l.InsertAfter(pos, i)
	}
	assert.Equal(t, "0,1,2,3,4,5,6,7,8,9", lab.Join(l.All(), ","))
	assert.Equal(t, 10, lab.Distance(l.Begin(), l.End()))
	for _, x := range []int{2, 4, 6} {
		l.Erase(lab.Find(l.Begin(), l.End(), x))
	}
	assert.Equal(t, "0,1,3,5,7,8,9", lab.Join(l.All(), ","))
	require.NoError(t, l.PushFront(10))
	n := lab.Distance(l.Begin(), l.End())
	_, err := l.InsertAfter(lab.Advance(l.Begin(), (n>>1)-1), 20)
	require.NoError(t, err)
	n = lab.Distance(l.Begin(), l.End())
	_, err = l.InsertAfter(lab.Advance(l.Begin(), n-1), 30)
	require.NoError(t, err)
	assert.Equal(t, "10,0,1,3,20,5,7,8,9,30", lab.Join(l.All(), ","))
	assert.Equal(t, 10, res.Live())
	l.Destroy()
	assert.Equal(t, 0, res.Live())
}

func TestPreconditions(t *testing.T) {
	if !debug.Enabled {
		t.Skip("preconditions are checked with build tag labdebug only")
	}
	l := forwardlist.New[int]()
	assert.Panics(t, func() { l.Front() })
	assert.Panics(t, func() { l.PopFront() })
	assert.Panics(t, func() { l.Erase(l.End()) })
	assert.Panics(t, func() { _ = l.Assign(l) })
	assert.Panics(t, func() { _ = l.MoveAssign(l) })
	m, _ := forwardlist.Of(1)
	assert.Panics(t, func() { _, _ = l.InsertAfter(m.Begin(), 2) })
}

func ExampleList_InsertAfter() {
	l := forwardlist.New[int]()
	pos := l.Begin()
	for i := 0; i < 4; i++ {
		pos, _ = l.InsertAfter(pos, i)
	}
	fmt.Println(l)
	// Output: (0,1,2,3)
}
