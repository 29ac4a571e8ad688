package main

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab"
	"github.com/npillmayer/lab/alloc"
	"github.com/npillmayer/lab/forwardlist"
	"github.com/npillmayer/lab/vector"
)

// driver adapts a container of ints to the steps of a scenario.
type driver interface {
	Name() string
	Generate(count int) error
	Erase(value int) bool // false if value is missing
	Insert(where string, value int) error
	Values() iter.Seq[int]
	Size() int
	Layout() string
	Destroy()
}

// newDriver creates a driver for an empty container of the given kind, which
// allocates from res.
func newDriver(kind string, res alloc.Resource) (driver, error) {
	switch kind {
	case "list", "forwardlist":
		a := alloc.New[int](res)
		return &listDriver{l: forwardlist.New(forwardlist.WithAllocator[int](a))}, nil
	case "vector":
		a := alloc.New[int](res)
		return &vectorDriver{v: vector.New(vector.WithAllocator[int](a))}, nil
	}
	return nil, errors.Newf("unknown container kind %q", kind)
}

// --- List ------------------------------------------------------------------

type listDriver struct {
	l *forwardlist.List[int]
}

func (d *listDriver) Name() string { return "ForwardList" }

// Generate appends 0…count-1 by inserting each value after the previous one.
// Starting from End(), the first value becomes the head.
func (d *listDriver) Generate(count int) error {
	pos := d.l.Begin()
	for i := 0; i < count; i++ {
		next, err := d.l.InsertAfter(pos, i)
		if err != nil {
			return err
		}
		pos = next
	}
	return nil
}

func (d *listDriver) Erase(value int) bool {
	pos := lab.Find(d.l.Begin(), d.l.End(), value)
	if pos.Equal(d.l.End()) {
		return false
	}
	d.l.Erase(pos)
	return true
}

func (d *listDriver) Insert(where string, value int) error {
	n := d.Size()
	switch where {
	case "front":
		return d.l.PushFront(value)
	case "middle":
		_, err := d.l.InsertAfter(lab.Advance(d.l.Begin(), (n>>1)-1), value)
		return err
	case "end":
		_, err := d.l.InsertAfter(lab.Advance(d.l.Begin(), n-1), value)
		return err
	}
	return errors.Newf("unknown insert position %q", where)
}

func (d *listDriver) Values() iter.Seq[int] { return d.l.All() }
func (d *listDriver) Size() int             { return lab.Distance(d.l.Begin(), d.l.End()) }
func (d *listDriver) Layout() string        { return d.l.Layout() }
func (d *listDriver) Destroy()              { d.l.Destroy() }

// --- Vector ----------------------------------------------------------------

type vectorDriver struct {
	v *vector.Vector[int]
}

func (d *vectorDriver) Name() string { return "Vector" }

func (d *vectorDriver) Generate(count int) error {
	for i := 0; i < count; i++ {
		if err := d.v.PushBack(i); err != nil {
			return err
		}
	}
	return nil
}

func (d *vectorDriver) Erase(value int) bool {
	pos := lab.Find(d.v.Begin(), d.v.End(), value)
	if pos.Equal(d.v.End()) {
		return false
	}
	d.v.Erase(pos)
	return true
}

func (d *vectorDriver) Insert(where string, value int) error {
	var pos vector.Iterator[int]
	switch where {
	case "front":
		pos = d.v.Begin()
	case "middle":
		pos = d.v.IteratorAt(d.v.Size() >> 1)
	case "end":
		pos = d.v.End()
	default:
		return errors.Newf("unknown insert position %q", where)
	}
	_, err := d.v.Insert(pos, value)
	return err
}

func (d *vectorDriver) Values() iter.Seq[int] { return d.v.Values() }
func (d *vectorDriver) Size() int             { return d.v.Size() }
func (d *vectorDriver) Layout() string        { return d.v.Layout() }
func (d *vectorDriver) Destroy()              { d.v.Destroy() }
