package forwardlist

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Layout renders the chain of nodes of l for debugging. Every node is printed
// with its position; the last node links to nil.
//
//	List(nodes=3)
//	└── head
//	    ├── [0]  7
//	    ├── [1]  8
//	    ├── [2]  9
//	    └── nil
func (l *List[T]) Layout() string {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	printer := tp.NewWithRoot(fmt.Sprintf("List(nodes=%d)", count))
	chain := printer.AddBranch("head")
	i := 0
	for n := l.head; n != nil; n = n.next {
		chain.AddMetaNode(i, fmt.Sprintf("%v", n.value))
		i++
	}
	chain.AddNode("nil")
	return printer.String()
}
