package selector

import "github.com/rhartert/srte-paths/srte"

// MaxEdgeUsage returns the bottleneck usage of path p, that is the highest
// load among its edges. Edges that carry no load (or that are unknown to the
// table) count as 0.
func MaxEdgeUsage(p srte.Path, usage *srte.EdgeUsage) int64 {
	maxUsage := int64(0)
	for _, e := range p {
		if l := usage.EdgeLoad(e); l > maxUsage {
			maxUsage = l
		}
	}
	return maxUsage
}

// DisjointPaths returns the paths of candidates that share no edge with
// reference, in their original order.
func DisjointPaths(candidates []srte.Path, reference srte.Path) []srte.Path {
	disjoint := []srte.Path{}
	for _, p := range candidates {
		if !p.SharesEdge(reference) {
			disjoint = append(disjoint, p)
		}
	}
	return disjoint
}

// bottleneck is MaxEdgeUsage on a path already resolved to edge IDs.
func bottleneck(edges []int, usage *srte.EdgeUsage) int64 {
	maxUsage := int64(0)
	for _, e := range edges {
		if l := usage.Load(e); l > maxUsage {
			maxUsage = l
		}
	}
	return maxUsage
}
