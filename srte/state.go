package srte

import (
	"errors"
	"fmt"
	"math"

	"github.com/rhartert/yagh"
)

var (
	// ErrUnknownEdge indicates that an edge is not part of the graph.
	ErrUnknownEdge = errors.New("srte: edge not in graph")

	// ErrNegativeLoad indicates that a load accumulator would be negative.
	ErrNegativeLoad = errors.New("srte: negative load")
)

// EdgeUsage is the load accumulated on each edge of a graph by the paths
// committed so far. Loads only grow: a committed path adds its weight to each
// of its edges and is never removed.
//
// The structure keeps track of the edges changed since the last call to
// PersistChanges and maintains the edges ordered by decreasing load so that
// the most loaded edge can be accessed efficiently.
type EdgeUsage struct {
	graph *Graph
	loads []int64

	// Edges changed since the last persisted state.
	changes  []int
	nChanges int

	// An edge e has been changed in the current state if savedAt[e] is equal
	// to timestamp. Incrementing the timestamp marks all edges as unchanged
	// in O(1).
	savedAt   []uint
	timestamp uint

	// Edges ordered by decreasing persisted load.
	edgesByLoad *yagh.IntMap[int64]
}

// NewEdgeUsage returns a usage table with all the edges of g at zero.
func NewEdgeUsage(g *Graph) *EdgeUsage {
	nEdges := g.NumEdges()
	u := &EdgeUsage{
		graph:       g,
		loads:       make([]int64, nEdges),
		changes:     make([]int, nEdges),
		savedAt:     make([]uint, nEdges),
		timestamp:   1, // must be greater than the zero values in savedAt
		edgesByLoad: yagh.New[int64](nEdges),
	}
	for e := 0; e < nEdges; e++ {
		u.edgesByLoad.Put(e, 0)
	}
	return u
}

// EdgeUsageFrom restores a usage table from a checkpoint such as the one
// returned by Snapshot. Edges of g missing from the checkpoint start at zero.
func EdgeUsageFrom(g *Graph, loads map[Edge]int64) (*EdgeUsage, error) {
	u := NewEdgeUsage(g)
	for e, l := range loads {
		id, ok := g.EdgeID(e)
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownEdge, e.From, e.To)
		}
		if l < 0 {
			return nil, fmt.Errorf("%w: %d on %s -> %s", ErrNegativeLoad, l, e.From, e.To)
		}
		u.AddLoad(id, l)
	}
	u.PersistChanges()
	return u, nil
}

// Graph returns the graph whose edges are tracked by the table.
func (u *EdgeUsage) Graph() *Graph {
	return u.graph
}

// Load returns the current load on the edge.
func (u *EdgeUsage) Load(edge int) int64 {
	return u.loads[edge]
}

// EdgeLoad returns the current load on e, or 0 if e is not in the graph.
func (u *EdgeUsage) EdgeLoad(e Edge) int64 {
	id, ok := u.graph.EdgeID(e)
	if !ok {
		return 0
	}
	return u.loads[id]
}

// AddLoad adds the load to the edge. Loads are never decremented: the
// function panics if load is negative.
func (u *EdgeUsage) AddLoad(edge int, load int64) {
	if load < 0 {
		panic(fmt.Sprintf("srte: cannot add negative load %d to edge %d", load, edge))
	}
	if u.savedAt[edge] != u.timestamp {
		u.changes[u.nChanges] = edge
		u.nChanges += 1
		u.savedAt[edge] = u.timestamp
	}
	u.loads[edge] += load
}

// Changes returns the edges that have been changed since the last time
// changes were persisted.
//
// Important: the slice is a view on one of the table's internal structure and
// should only be used in read-only operations.
func (u *EdgeUsage) Changes() []int {
	return u.changes[:u.nChanges]
}

// PersistChanges persists all the changes as the "new" state.
func (u *EdgeUsage) PersistChanges() {
	for _, e := range u.Changes() {
		u.edgesByLoad.Put(e, -u.loads[e]) // sort by decreasing load
	}
	u.nChanges = 0
	u.incrTimestamp()
}

// MostLoadedEdge returns the ID of the edge with the highest load and its
// load. It returns -1 if the graph has no edges. Pending changes are
// persisted first.
func (u *EdgeUsage) MostLoadedEdge() (int, int64) {
	u.PersistChanges()
	entry := u.edgesByLoad.Min()
	if entry == nil {
		return -1, 0
	}
	return entry.Elem, u.loads[entry.Elem]
}

// MaxLoad returns the highest load of all edges.
func (u *EdgeUsage) MaxLoad() int64 {
	_, l := u.MostLoadedEdge()
	return l
}

// Clone returns an independent copy of the table. Pending changes of u are
// persisted in the copy.
func (u *EdgeUsage) Clone() *EdgeUsage {
	c := NewEdgeUsage(u.graph)
	for e, l := range u.loads {
		if l != 0 {
			c.AddLoad(e, l)
		}
	}
	c.PersistChanges()
	return c
}

// Snapshot returns the non-zero loads keyed by edge. The result can be used
// to restore the table with EdgeUsageFrom.
func (u *EdgeUsage) Snapshot() map[Edge]int64 {
	snap := map[Edge]int64{}
	for e, l := range u.loads {
		if l != 0 {
			snap[u.graph.Edges[e]] = l
		}
	}
	return snap
}

// incrTimestamp safely increments the value of the timestamp by resetting the
// savedAt slice and the timestamp if it overflows.
func (u *EdgeUsage) incrTimestamp() {
	if u.timestamp != math.MaxUint {
		u.timestamp += 1
		return
	}
	u.timestamp = 1
	for i := range u.savedAt {
		u.savedAt[i] = 0
	}
}
