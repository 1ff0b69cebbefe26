package srte

import "fmt"

// Pair is an ordered pair of border nodes between which traffic is routed.
// Pair{a, b} and Pair{b, a} are two distinct traffic relations.
type Pair struct {
	Src string
	Dst string
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.Src, p.Dst)
}

// CandidateSet maps border pairs to their candidate paths. Pairs are kept in
// insertion order which defines the default processing order of selections.
type CandidateSet struct {
	pairs []Pair
	paths map[Pair][]Path
}

// NewCandidateSet returns an empty candidate set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{paths: map[Pair][]Path{}}
}

// Add appends paths to the candidates of pair. The pair is registered even if
// no path is given so that callers can detect empty candidate lists.
func (cs *CandidateSet) Add(pair Pair, paths ...Path) {
	if _, ok := cs.paths[pair]; !ok {
		cs.pairs = append(cs.pairs, pair)
		cs.paths[pair] = []Path{}
	}
	cs.paths[pair] = append(cs.paths[pair], paths...)
}

// Pairs returns the pairs in insertion order.
//
// Important: the slice is a view on one of the set's internal structure and
// should only be used in read-only operations.
func (cs *CandidateSet) Pairs() []Pair {
	return cs.pairs
}

// Paths returns the candidate paths of pair. The second returned value is
// false if the pair is not in the set.
func (cs *CandidateSet) Paths(pair Pair) ([]Path, bool) {
	paths, ok := cs.paths[pair]
	return paths, ok
}

// Len returns the number of pairs in the set.
func (cs *CandidateSet) Len() int {
	return len(cs.pairs)
}

// Demands maps border pairs to their expected traffic volume.
type Demands map[Pair]int64

// Weight returns the weight committed on edges by a path of pair. Pairs
// without a demand have unit weight, as do all pairs when d is nil.
func (d Demands) Weight(pair Pair) int64 {
	if w, ok := d[pair]; ok {
		return w
	}
	return 1
}
