package topology

import (
	"github.com/rhartert/srte-paths/selector"
	"github.com/rhartert/srte-paths/srte"
)

// Flags attached to labelled paths.
const (
	FlagPrimary uint8 = 0x10
	FlagBackup  uint8 = 0x11
)

// Label is a path of a selection bound to the label used to forward traffic
// along it.
type Label struct {
	Pair  srte.Pair
	Nodes []string
	Label int
	Flag  uint8
}

// Labels assigns consecutive labels, starting at start, to the paths of sel.
// Pairs are visited in selection order. The primary path of a pair is flagged
// with FlagPrimary and its backup paths with FlagBackup; a backup identical to
// the primary is not labelled.
func Labels(sel *selector.Selection, start int) []Label {
	labels := []Label{}
	next := start
	for _, pair := range sel.Pairs() {
		paths := sel.Paths(pair)
		for i, p := range paths {
			flag := FlagBackup
			if i == 0 {
				flag = FlagPrimary
			} else if p.Equal(paths[0]) {
				continue
			}
			labels = append(labels, Label{
				Pair:  pair,
				Nodes: p.Nodes(),
				Label: next,
				Flag:  flag,
			})
			next++
		}
	}
	return labels
}
