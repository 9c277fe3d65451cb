package dijkstra_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	oracle "github.com/RyanCarrier/dijkstra"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tanroute/dijkstra"
	"github.com/katalvlaran/tanroute/geo"
	"github.com/katalvlaran/tanroute/network"
)

// microKm scales kilometers to integer weights for the oracle.
const microKm = 1e6

// oracleGraph mirrors n into an integer-weighted graph indexed by arena position.
func oracleGraph(t *testing.T, n *network.Network) *oracle.Graph {
	t.Helper()
	g := oracle.NewGraph()
	for i := 0; i < n.Len(); i++ {
		g.AddVertex(i)
	}
	for u := 0; u < n.Len(); u++ {
		for _, v := range n.Successors(u) {
			if u == v {
				continue
			}
			w := int64(math.Round(geo.Distance(n.Station(u).Coord, n.Station(v).Coord) * microKm))
			require.NoError(t, g.AddArc(u, v, w))
		}
	}

	return g
}

// TestShortestPath_MatchesOracle compares optimal costs with an independent
// Dijkstra implementation working on rounded integer weights.
func TestShortestPath_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := randomNetwork(t, rng, 40, 120)
	g := oracleGraph(t, n)

	for q := 0; q < 40; q++ {
		o, d := rng.Intn(n.Len()), rng.Intn(n.Len())
		if o == d {
			continue
		}
		p, err := dijkstra.ShortestPath(context.Background(), n, n.Station(o).ID, n.Station(d).ID)
		require.NoError(t, err)

		best, oerr := g.Shortest(o, d)
		if oerr != nil {
			require.False(t, p.Found(), "oracle found no path but search did")
			continue
		}
		require.True(t, p.Found())
		// rounding shifts each hop by at most 0.5 µkm
		hops := len(best.Path)
		if p.Len() > hops {
			hops = p.Len()
		}
		tolerance := float64(hops) / microKm
		require.InDelta(t, float64(best.Distance)/microKm, p.Cost, tolerance)
	}
}
