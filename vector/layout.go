package vector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Layout renders the storage of v for debugging: live elements and the
// allocated, but unconstructed, remainder of the block.
//
//	Vector(size=2, capacity=4)
//	├── live 0…1
//	│   ├── [0]  7
//	│   └── [1]  8
//	└── raw 2…3
//	    ├── [2]  _
//	    └── [3]  _
func (v *Vector[T]) Layout() string {
	printer := tp.NewWithRoot(fmt.Sprintf("Vector(size=%d, capacity=%d)", v.size, len(v.block)))
	if v.size > 0 {
		live := printer.AddBranch(fmt.Sprintf("live %d…%d", 0, v.size-1))
		for i := 0; i < v.size; i++ {
			live.AddMetaNode(i, fmt.Sprintf("%v", v.block[i]))
		}
	}
	if len(v.block) > v.size {
		raw := printer.AddBranch(fmt.Sprintf("raw %d…%d", v.size, len(v.block)-1))
		for i := v.size; i < len(v.block); i++ {
			raw.AddMetaNode(i, "_")
		}
	}
	return printer.String()
}
