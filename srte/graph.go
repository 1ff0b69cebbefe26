package srte

// Edge represents a directed link between two nodes.
type Edge struct {
	From string
	To   string
}

// Graph represents the topology of a network as a directed graph. Nodes and
// edges are identified by dense integer IDs assigned in insertion order.
type Graph struct {
	Nodes []string
	Nexts [][]int
	Edges []Edge

	nodeIDs map[string]int
	edgeIDs map[Edge]int
}

// NewGraph creates a new directed graph with the specified edges. Nodes are
// created as they are first referenced by an edge. Duplicated edges are only
// added once.
func NewGraph(edges []Edge) *Graph {
	g := &Graph{
		Nodes:   []string{},
		Nexts:   [][]int{},
		Edges:   make([]Edge, 0, len(edges)),
		nodeIDs: map[string]int{},
		edgeIDs: make(map[Edge]int, len(edges)),
	}
	for _, e := range edges {
		g.AddEdge(e)
	}
	return g
}

// AddNode adds node to the graph if it is not already part of it and returns
// its ID.
func (g *Graph) AddNode(node string) int {
	if id, ok := g.nodeIDs[node]; ok {
		return id
	}
	id := len(g.Nodes)
	g.nodeIDs[node] = id
	g.Nodes = append(g.Nodes, node)
	g.Nexts = append(g.Nexts, nil)
	return id
}

// AddEdge adds e to the graph if it is not already part of it and returns its
// ID.
func (g *Graph) AddEdge(e Edge) int {
	if id, ok := g.edgeIDs[e]; ok {
		return id
	}
	from := g.AddNode(e.From)
	g.AddNode(e.To)

	id := len(g.Edges)
	g.edgeIDs[e] = id
	g.Edges = append(g.Edges, e)
	g.Nexts[from] = append(g.Nexts[from], id)
	return id
}

// EdgeID returns the ID of edge e. The second returned value is false if the
// edge is not in the graph.
func (g *Graph) EdgeID(e Edge) (int, bool) {
	id, ok := g.edgeIDs[e]
	return id, ok
}

// NodeID returns the ID of the node. The second returned value is false if
// the node is not in the graph.
func (g *Graph) NodeID(node string) (int, bool) {
	id, ok := g.nodeIDs[node]
	return id, ok
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int {
	return len(g.Edges)
}
