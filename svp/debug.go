package svp

import (
	"fmt"
	"io"
	"os"
)

// Debug enables verbose diagnostic logging of the sweep intersector
// (phases, admitted segments, the active list, winding commits); the
// stroke tessellator and scan converter do not log. The package keeps
// no other global or static state.
var (
	Debug       = false
	DebugOutput io.Writer = os.Stdout
)

func logPhase(phase string) {
	if !Debug {
		return
	}
	fmt.Fprintf(DebugOutput, "\n==== %s ====\n", phase)
}

func sweepLog(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[sweep] "+format+"\n", args...)
	}
}

func logActiveList(head *ActiveSeg) {
	if !Debug {
		return
	}
	fmt.Fprintf(DebugOutput, "  active list (left to right):\n")
	if head == nil {
		fmt.Fprintf(DebugOutput, "    (empty)\n")
		return
	}
	n := 0
	for a := head; a != nil; a = a.Right {
		n++
		fmt.Fprintf(DebugOutput, "    [%d] x0=%.6f y0=%.6f x1=%.6f y1=%.6f windLeft=%d deltaWind=%d\n",
			n, a.X0, a.Y0, a.X1, a.Y1, a.WindLeft, a.DeltaWind)
	}
}

func logWindingCommit(x, y float64, w int) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[commit] x=%.6f y=%.6f winding=%d\n", x, y, w)
	}
}
