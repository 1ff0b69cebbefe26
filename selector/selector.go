// Package selector chooses, for each pair of border nodes, a primary path and
// an edge-disjoint backup path among precomputed candidates while balancing
// the load on the network's edges.
package selector

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/srte-paths/srte"
)

// Config holds the parameters of a Selector.
type Config struct {
	// SampleSize bounds the number of candidate paths examined for each pair.
	// Candidates are drawn uniformly at random without replacement. Setting
	// SampleSize to at least the number of candidates of every pair makes the
	// selection exhaustive.
	SampleSize int

	// Rand is the source of randomness used to sample candidates and to break
	// ties between paths with the same bottleneck usage. A source seeded with
	// the current time is used if nil.
	Rand *rand.Rand

	// Logger receives per-pair decisions at debug level. Logs are discarded
	// if nil.
	Logger *slog.Logger
}

// Selector implements the randomized greedy path selection. Pairs are
// processed one at a time: each pair picks, among a sample of its candidates,
// a path with the lowest bottleneck usage and commits its weight on the edges
// before the next pair is considered.
//
// A Selector is not safe for concurrent use.
type Selector struct {
	cfg Config
	log *slog.Logger

	wheel  *srte.Wheel
	sample []int
	ties   []int
}

// New returns a Selector configured with cfg.
func New(cfg Config) *Selector {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Selector{
		cfg:   cfg,
		log:   log,
		wheel: srte.NewWheel(0),
	}
}

// route is a candidate path resolved to edge IDs.
type route struct {
	path  srte.Path
	edges []int
}

type pairRoutes struct {
	pair   srte.Pair
	routes []route
	weight int64
}

// SelectPrimary chooses one primary path for each pair of the candidate set.
//
// The load of the chosen paths is added to a copy of usage (or to an empty
// table if usage is nil), which is returned along with the selection. Pairs
// are processed in the candidate set's order, or by decreasing demand when a
// demand table is given, in which case the weight committed by a pair is its
// demand instead of 1.
func (s *Selector) SelectPrimary(candidates *srte.CandidateSet, g *srte.Graph, usage *srte.EdgeUsage, demand srte.Demands) (*Selection, *srte.EdgeUsage, error) {
	order, err := s.prepare(candidates, g, usage, demand)
	if err != nil {
		return nil, nil, err
	}
	if usage == nil {
		usage = srte.NewEdgeUsage(g)
	} else {
		usage = usage.Clone()
	}

	sel := newSelection(len(order))
	for _, pr := range order {
		i, b := s.choose(pr.routes, usage)
		r := pr.routes[i]
		commit(r, pr.weight, usage)
		sel.add(pr.pair, r.path)

		s.log.Debug("primary path selected",
			"pair", pr.pair.String(),
			"path", r.path.String(),
			"bottleneck", b,
			"weight", pr.weight,
		)
	}

	return sel, usage, nil
}

// SelectBackup chooses, for each pair, one more path that shares no edge with
// the paths already selected for that pair in primary. It must be given the
// usage table returned by SelectPrimary so that backups are balanced against
// the load of all primary paths.
//
// Pairs without any disjoint candidate keep their current paths and are
// reported by the returned selection's Missing and Err methods. Neither
// primary nor usage are modified.
func (s *Selector) SelectBackup(candidates *srte.CandidateSet, primary *Selection, g *srte.Graph, usage *srte.EdgeUsage, demand srte.Demands) (*Selection, *srte.EdgeUsage, error) {
	if primary == nil {
		return nil, nil, invalidf("primary selection is nil")
	}
	if usage == nil {
		return nil, nil, invalidf("usage table is nil")
	}
	order, err := s.prepare(candidates, g, usage, demand)
	if err != nil {
		return nil, nil, err
	}

	// Resolve the paths already chosen for each pair.
	chosen := make(map[srte.Pair][][]int, len(order))
	for _, pr := range order {
		paths := primary.Paths(pr.pair)
		if len(paths) == 0 {
			return nil, nil, invalidf("pair %s has no primary path", pr.pair)
		}
		for _, p := range paths {
			edges, err := resolve(g, p)
			if err != nil {
				return nil, nil, invalidf("selected path of pair %s: %s", pr.pair, err)
			}
			chosen[pr.pair] = append(chosen[pr.pair], edges)
		}
	}
	for _, pair := range primary.Pairs() {
		if _, ok := chosen[pair]; !ok {
			return nil, nil, invalidf("selected pair %s has no candidates", pair)
		}
	}

	usage = usage.Clone()
	sel := primary.clone()
	used := sparsesets.New(g.NumEdges())
	for _, pr := range order {
		used.Clear()
		for _, edges := range chosen[pr.pair] {
			for _, e := range edges {
				used.Insert(e)
			}
		}
		disjoint := disjointRoutes(pr.routes, used)
		if len(disjoint) == 0 {
			sel.missing = append(sel.missing, pr.pair)
			s.log.Warn("no disjoint backup path", "pair", pr.pair.String())
			continue
		}

		i, b := s.choose(disjoint, usage)
		r := disjoint[i]
		commit(r, pr.weight, usage)
		sel.add(pr.pair, r.path)

		s.log.Debug("backup path selected",
			"pair", pr.pair.String(),
			"path", r.path.String(),
			"bottleneck", b,
			"weight", pr.weight,
		)
	}

	return sel, usage, nil
}

// Run selects the primary paths and then one backup path per pair.
func (s *Selector) Run(candidates *srte.CandidateSet, g *srte.Graph, usage *srte.EdgeUsage, demand srte.Demands) (*Selection, *srte.EdgeUsage, error) {
	primary, usage, err := s.SelectPrimary(candidates, g, usage, demand)
	if err != nil {
		return nil, nil, err
	}
	return s.SelectBackup(candidates, primary, g, usage, demand)
}

// choose samples routes and returns the index of a route with the lowest
// bottleneck usage in the sample, along with that usage. Ties are broken
// uniformly at random.
func (s *Selector) choose(routes []route, usage *srte.EdgeUsage) (int, int64) {
	s.sample = s.wheel.Sample(s.cfg.Rand, len(routes), s.cfg.SampleSize, s.sample[:0])

	best := int64(0)
	s.ties = s.ties[:0]
	for _, i := range s.sample {
		b := bottleneck(routes[i].edges, usage)
		switch {
		case len(s.ties) == 0 || b < best:
			best = b
			s.ties = append(s.ties[:0], i)
		case b == best:
			s.ties = append(s.ties, i)
		}
	}

	return s.ties[s.cfg.Rand.Intn(len(s.ties))], best
}

// prepare validates the arguments of a selection and returns the pairs in
// processing order with their resolved candidates.
func (s *Selector) prepare(candidates *srte.CandidateSet, g *srte.Graph, usage *srte.EdgeUsage, demand srte.Demands) ([]pairRoutes, error) {
	if s.cfg.SampleSize < 1 {
		return nil, invalidf("sample size must be at least 1, got %d", s.cfg.SampleSize)
	}
	if candidates == nil {
		return nil, invalidf("candidate set is nil")
	}
	if g == nil {
		return nil, invalidf("graph is nil")
	}
	if usage != nil && usage.Graph() != g {
		return nil, invalidf("usage table does not track the given graph")
	}

	for pair, w := range demand {
		if w < 0 {
			return nil, invalidf("negative demand %d for pair %s", w, pair)
		}
		if _, ok := candidates.Paths(pair); !ok {
			return nil, invalidf("demand for pair %s without candidates", pair)
		}
	}

	order := make([]pairRoutes, 0, candidates.Len())
	for _, pair := range candidates.Pairs() {
		paths, _ := candidates.Paths(pair)
		if len(paths) == 0 {
			return nil, invalidf("pair %s has no candidate path", pair)
		}
		pr := pairRoutes{
			pair:   pair,
			routes: make([]route, len(paths)),
			weight: demand.Weight(pair),
		}
		for i, p := range paths {
			edges, err := resolve(g, p)
			if err != nil {
				return nil, invalidf("candidate %d of pair %s: %s", i, pair, err)
			}
			pr.routes[i] = route{path: p, edges: edges}
		}
		order = append(order, pr)
	}

	if demand != nil {
		// Highest demands first, ties in input order.
		slices.SortStableFunc(order, func(a, b pairRoutes) int {
			return cmp.Compare(b.weight, a.weight)
		})
	}

	return order, nil
}

// resolve maps the edges of p to their IDs in g.
func resolve(g *srte.Graph, p srte.Path) ([]int, error) {
	if len(p) == 0 {
		return nil, errEmptyPath
	}
	edges := make([]int, len(p))
	for i, e := range p {
		id, ok := g.EdgeID(e)
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", srte.ErrUnknownEdge, e.From, e.To)
		}
		edges[i] = id
	}
	return edges, nil
}

func disjointRoutes(routes []route, used *sparsesets.Set) []route {
	disjoint := []route{}
	for _, r := range routes {
		if !sharesEdge(r.edges, used) {
			disjoint = append(disjoint, r)
		}
	}
	return disjoint
}

func sharesEdge(edges []int, set *sparsesets.Set) bool {
	for _, e := range edges {
		if set.Contains(e) {
			return true
		}
	}
	return false
}

func commit(r route, weight int64, usage *srte.EdgeUsage) {
	for _, e := range r.edges {
		usage.AddLoad(e, weight)
	}
	usage.PersistChanges()
}
