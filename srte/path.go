package srte

import (
	"strings"
)

// Path is a walk in the network represented as its sequence of edges.
//
// Valid paths respect the following invariants:
//
//   - Minimum length: 1 edge
//   - Continuity: each edge starts where the previous one ends
//   - Unique edges: no edge appears twice in the path
//
// These invariants are the responsibility of whoever builds the path; they
// are not re-validated by the functions of this package.
type Path []Edge

// Len returns the length of the path in terms of edges.
func (p Path) Len() int {
	return len(p)
}

// Source returns the first node of the path or "" if the path is empty.
func (p Path) Source() string {
	if len(p) == 0 {
		return ""
	}
	return p[0].From
}

// Destination returns the last node of the path or "" if the path is empty.
func (p Path) Destination() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1].To
}

// Nodes returns the sequence of nodes traversed by the path, starting with
// its source and followed by the destination of each edge.
func (p Path) Nodes() []string {
	if len(p) == 0 {
		return nil
	}
	nodes := make([]string, 0, len(p)+1)
	nodes = append(nodes, p[0].From)
	for _, e := range p {
		nodes = append(nodes, e.To)
	}
	return nodes
}

// SharesEdge returns true if p and other have at least one edge in common.
func (p Path) SharesEdge(other Path) bool {
	if len(p) == 0 || len(other) == 0 {
		return false
	}
	edges := make(map[Edge]struct{}, len(other))
	for _, e := range other {
		edges[e] = struct{}{}
	}
	for _, e := range p {
		if _, ok := edges[e]; ok {
			return true
		}
	}
	return false
}

// Equal returns true if both paths have the same sequence of edges.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String returns a string representation of the path as a sequence of nodes
// separated by " -> ". For example: "a -> b -> c".
func (p Path) String() string {
	return strings.Join(p.Nodes(), " -> ")
}

// PathFromNodes builds the path that traverses the given nodes in order. It
// returns nil if less than two nodes are given.
func PathFromNodes(nodes ...string) Path {
	if len(nodes) < 2 {
		return nil
	}
	p := make(Path, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		p = append(p, Edge{From: nodes[i-1], To: nodes[i]})
	}
	return p
}
