// Package topology reads intra-domain network descriptions and turns them into
// the inputs of a path selection: the graph, the candidate paths between each
// ordered pair of border routers, and the optional traffic demands.
package topology

import (
	"errors"
	"fmt"
	"os"

	"github.com/rhartert/srte-paths/config"
	"github.com/rhartert/srte-paths/srte"
)

var (
	// ErrInvalidTopology indicates a malformed topology description.
	ErrInvalidTopology = errors.New("topology: invalid topology")
)

// Link is a link between two nodes. Bidirectional links create one directed
// edge in each direction.
type Link struct {
	From          string `yaml:"from" toml:"from"`
	To            string `yaml:"to" toml:"to"`
	Bidirectional bool   `yaml:"bidirectional" toml:"bidirectional"`
}

// Demand is the expected traffic volume between two border routers.
type Demand struct {
	Src    string `yaml:"src" toml:"src"`
	Dst    string `yaml:"dst" toml:"dst"`
	Weight int64  `yaml:"weight" toml:"weight"`
}

// Topology is the description of a network.
type Topology struct {
	Nodes         []string `yaml:"nodes" toml:"nodes"`
	BorderRouters []string `yaml:"border_routers" toml:"border_routers"`
	Links         []Link   `yaml:"links" toml:"links"`
	Demands       []Demand `yaml:"demands" toml:"demands"`

	// Paths are explicit candidate paths given as node sequences. When set,
	// they replace the enumeration of simple paths.
	Paths [][]string `yaml:"paths" toml:"paths"`
}

// Load reads the topology file at path. The format is chosen according to the
// file extension.
func Load(path string) (*Topology, error) {
	format, err := config.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topology file %s: %w", path, err)
	}
	topo, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse topology file %s: %w", path, err)
	}
	return topo, nil
}

// Parse decodes and validates a topology.
func Parse(data []byte, format config.Format) (*Topology, error) {
	topo := &Topology{}
	if err := config.Decode(data, format, topo); err != nil {
		return nil, err
	}
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	return topo, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTopology, fmt.Sprintf(format, args...))
}

// Validate checks that every node referenced by links, border routers,
// demands and paths is declared.
func (t *Topology) Validate() error {
	nodes := make(map[string]bool, len(t.Nodes))
	for _, n := range t.Nodes {
		if n == "" {
			return invalidf("empty node name")
		}
		if nodes[n] {
			return invalidf("duplicate node %s", n)
		}
		nodes[n] = true
	}

	borders := make(map[string]bool, len(t.BorderRouters))
	for _, br := range t.BorderRouters {
		if !nodes[br] {
			return invalidf("border router %s is not a node", br)
		}
		if borders[br] {
			return invalidf("duplicate border router %s", br)
		}
		borders[br] = true
	}

	links := map[srte.Edge]bool{}
	for _, l := range t.Links {
		if !nodes[l.From] || !nodes[l.To] {
			return invalidf("link %s -> %s references an unknown node", l.From, l.To)
		}
		if l.From == l.To {
			return invalidf("self loop on node %s", l.From)
		}
		links[srte.Edge{From: l.From, To: l.To}] = true
		if l.Bidirectional {
			links[srte.Edge{From: l.To, To: l.From}] = true
		}
	}

	demands := map[srte.Pair]bool{}
	for _, d := range t.Demands {
		pair := srte.Pair{Src: d.Src, Dst: d.Dst}
		if !borders[d.Src] || !borders[d.Dst] {
			return invalidf("demand %s is not between border routers", pair)
		}
		if d.Src == d.Dst {
			return invalidf("demand %s has the same source and destination", pair)
		}
		if d.Weight < 0 {
			return invalidf("demand %s has negative weight %d", pair, d.Weight)
		}
		if demands[pair] {
			return invalidf("duplicate demand %s", pair)
		}
		demands[pair] = true
	}

	for i, p := range t.Paths {
		if len(p) < 2 {
			return invalidf("path %d has less than two nodes", i)
		}
		for j := 1; j < len(p); j++ {
			if !links[srte.Edge{From: p[j-1], To: p[j]}] {
				return invalidf("path %d uses missing link %s -> %s", i, p[j-1], p[j])
			}
		}
	}

	return nil
}

// Graph returns the directed graph of the topology. Nodes are numbered in
// declaration order.
func (t *Topology) Graph() *srte.Graph {
	g := srte.NewGraph(nil)
	for _, n := range t.Nodes {
		g.AddNode(n)
	}
	for _, l := range t.Links {
		g.AddEdge(srte.Edge{From: l.From, To: l.To})
		if l.Bidirectional {
			g.AddEdge(srte.Edge{From: l.To, To: l.From})
		}
	}
	return g
}

// DemandTable returns the demands keyed by pair, or nil if the topology
// declares no demand.
func (t *Topology) DemandTable() srte.Demands {
	if len(t.Demands) == 0 {
		return nil
	}
	demands := make(srte.Demands, len(t.Demands))
	for _, d := range t.Demands {
		demands[srte.Pair{Src: d.Src, Dst: d.Dst}] = d.Weight
	}
	return demands
}

// Build returns the graph, the candidate paths and the demands of the
// topology. Candidates are the explicit paths if any, otherwise all the
// simple paths of at most maxHops edges (0 for no limit) between each ordered
// pair of border routers. Pairs without any path are left out.
//
// Demands between pairs that have no candidate path cannot be routed: they
// are removed from the returned demands and listed in dropped, in
// declaration order.
func (t *Topology) Build(maxHops int) (g *srte.Graph, cs *srte.CandidateSet, demands srte.Demands, dropped []srte.Pair) {
	g = t.Graph()

	if len(t.Paths) > 0 {
		cs = srte.NewCandidateSet()
		for _, nodes := range t.Paths {
			pair := srte.Pair{Src: nodes[0], Dst: nodes[len(nodes)-1]}
			cs.Add(pair, srte.PathFromNodes(nodes...))
		}
	} else {
		cs = Candidates(g, t.BorderRouters, maxHops)
	}

	demands = t.DemandTable()
	for _, d := range t.Demands {
		pair := srte.Pair{Src: d.Src, Dst: d.Dst}
		if _, ok := cs.Paths(pair); !ok {
			delete(demands, pair)
			dropped = append(dropped, pair)
		}
	}
	return g, cs, demands, dropped
}
