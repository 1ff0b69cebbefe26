package topology

import "github.com/rhartert/srte-paths/srte"

// Candidates returns, for each ordered pair of distinct border routers, all
// the simple paths of at most maxHops edges between them (maxHops <= 0 means
// no limit). Pairs are ordered by source then destination, following the
// order of borders. Pairs without any path are left out.
func Candidates(g *srte.Graph, borders []string, maxHops int) *srte.CandidateSet {
	cs := srte.NewCandidateSet()
	for _, src := range borders {
		for _, dst := range borders {
			if src == dst {
				continue
			}
			if paths := SimplePaths(g, src, dst, maxHops); len(paths) > 0 {
				cs.Add(srte.Pair{Src: src, Dst: dst}, paths...)
			}
		}
	}
	return cs
}

// SimplePaths returns all the paths from src to dst that visit each node at
// most once and have at most maxHops edges (maxHops <= 0 means no limit).
// Paths are listed in depth-first order following the order of the graph's
// adjacency lists.
func SimplePaths(g *srte.Graph, src string, dst string, maxHops int) []srte.Path {
	s, ok := g.NodeID(src)
	if !ok {
		return nil
	}
	t, ok := g.NodeID(dst)
	if !ok || s == t {
		return nil
	}
	if maxHops <= 0 {
		maxHops = len(g.Nodes) - 1
	}

	paths := []srte.Path{}
	visited := make([]bool, len(g.Nodes))
	stack := make([]int, 0, maxHops) // edges of the current path

	var visit func(u int)
	visit = func(u int) {
		if u == t {
			p := make(srte.Path, len(stack))
			for i, e := range stack {
				p[i] = g.Edges[e]
			}
			paths = append(paths, p)
			return
		}
		if len(stack) == maxHops {
			return
		}
		visited[u] = true
		for _, e := range g.Nexts[u] {
			v, _ := g.NodeID(g.Edges[e].To)
			if visited[v] {
				continue
			}
			stack = append(stack, e)
			visit(v)
			stack = stack[:len(stack)-1]
		}
		visited[u] = false
	}
	visit(s)

	return paths
}
