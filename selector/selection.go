package selector

import (
	"errors"

	"github.com/rhartert/srte-paths/srte"
)

// Selection holds the paths chosen for each border pair. The first path of a
// pair is its primary path, the following ones are backup paths, each sharing
// no edge with the paths before it.
type Selection struct {
	pairs   []srte.Pair
	paths   map[srte.Pair][]srte.Path
	missing []srte.Pair
}

func newSelection(n int) *Selection {
	return &Selection{
		pairs: make([]srte.Pair, 0, n),
		paths: make(map[srte.Pair][]srte.Path, n),
	}
}

func (s *Selection) add(pair srte.Pair, p srte.Path) {
	if _, ok := s.paths[pair]; !ok {
		s.pairs = append(s.pairs, pair)
	}
	s.paths[pair] = append(s.paths[pair], p)
}

// clone returns a copy of the selection that can be extended without
// modifying s. The list of missing pairs is not copied.
func (s *Selection) clone() *Selection {
	c := newSelection(len(s.pairs))
	for _, pair := range s.pairs {
		c.pairs = append(c.pairs, pair)
		c.paths[pair] = append([]srte.Path(nil), s.paths[pair]...)
	}
	return c
}

// Pairs returns the pairs in the order their primary path was committed.
func (s *Selection) Pairs() []srte.Pair {
	return s.pairs
}

// Len returns the number of pairs in the selection.
func (s *Selection) Len() int {
	return len(s.pairs)
}

// Paths returns the paths chosen for pair, primary first.
func (s *Selection) Paths(pair srte.Pair) []srte.Path {
	return s.paths[pair]
}

// Primary returns the primary path of pair.
func (s *Selection) Primary(pair srte.Pair) (srte.Path, bool) {
	paths := s.paths[pair]
	if len(paths) == 0 {
		return nil, false
	}
	return paths[0], true
}

// Backup returns the first backup path of pair.
func (s *Selection) Backup(pair srte.Pair) (srte.Path, bool) {
	paths := s.paths[pair]
	if len(paths) < 2 {
		return nil, false
	}
	return paths[1], true
}

// Missing returns the pairs for which the last backup selection found no
// disjoint candidate.
func (s *Selection) Missing() []srte.Pair {
	return s.missing
}

// Err returns the NoDisjointPathError of each missing pair joined together,
// or nil if no pair is missing.
func (s *Selection) Err() error {
	if len(s.missing) == 0 {
		return nil
	}
	errs := make([]error, len(s.missing))
	for i, pair := range s.missing {
		errs[i] = &NoDisjointPathError{Pair: pair}
	}
	return errors.Join(errs...)
}
