package topology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleGraph = `NODES 3
label x y
A 0.0 0.0
B 1.0 0.0
C 0.5 1.0

EDGES 4
label src dest weight bw delay
edge_0 0 1 1 1000 10
edge_1 1 2 1 1000 10
edge_2 0 2 3 500 10
edge_3 2 0 3 500 10
`

const triangleDemands = `DEMANDS 3
label src dest bw
demand_0 0 2 10
demand_1 2 0 4
demand_2 0 2 5
`

func TestParseRepetita(t *testing.T) {
	topo, err := ParseRepetita(strings.NewReader(triangleGraph), strings.NewReader(triangleDemands))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, topo.Nodes)
	assert.Equal(t, []string{"A", "C"}, topo.BorderRouters)
	assert.Equal(t, []Link{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "A", To: "C"},
		{From: "C", To: "A"},
	}, topo.Links)
	assert.Equal(t, []Demand{
		{Src: "A", Dst: "C", Weight: 15},
		{Src: "C", Dst: "A", Weight: 4},
	}, topo.Demands)

	_, cs, _, dropped := topo.Build(0)
	assert.Empty(t, dropped)
	assert.Equal(t, 2, cs.Len())
}

func TestParseRepetita_noDemands(t *testing.T) {
	topo, err := ParseRepetita(strings.NewReader(triangleGraph), nil)
	require.NoError(t, err)

	assert.Equal(t, topo.Nodes, topo.BorderRouters)
	assert.Empty(t, topo.Demands)
}

func TestParseRepetita_errors(t *testing.T) {
	testCases := []struct {
		desc    string
		network string
		demands string
	}{
		{
			desc:    "missing nodes section",
			network: "EDGES 0\n",
		},
		{
			desc:    "truncated nodes",
			network: "NODES 3\nlabel x y\nA 0 0\n",
		},
		{
			desc:    "edge to unknown node",
			network: "NODES 1\nlabel x y\nA 0 0\n\nEDGES 1\nlabel src dest weight bw delay\nedge_0 0 4 1 1 1\n",
		},
		{
			desc:    "malformed edge",
			network: "NODES 1\nlabel x y\nA 0 0\n\nEDGES 1\nlabel src dest weight bw delay\nedge_0 0\n",
		},
		{
			desc:    "malformed demand",
			network: triangleGraph,
			demands: "DEMANDS 1\nlabel src dest bw\ndemand_0 0 2 lots\n",
		},
		{
			desc:    "demand to itself",
			network: triangleGraph,
			demands: "DEMANDS 1\nlabel src dest bw\ndemand_0 1 1 3\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			var err error
			if tc.demands == "" {
				_, err = ParseRepetita(strings.NewReader(tc.network), nil)
			} else {
				_, err = ParseRepetita(strings.NewReader(tc.network), strings.NewReader(tc.demands))
			}
			assert.ErrorIs(t, err, ErrInvalidTopology)
		})
	}
}
