// Package dijkstra finds the shortest directed route between two stations
// of a network.Network.
//
// Route costs are not stored: the weight of a route A→B is computed with
// geo.Distance each time the search relaxes it. The search is a
// label-setting Dijkstra that stops as soon as the destination is settled.
//
// Complexity:
//
//   - StrategyLinear: O(V² + E) time, O(V) space.
//   - StrategyHeap:   O((V + E) log V) time, O(V + E) space.
//
// Notes on implementation choices:
//
//   - Search state (distances, predecessors, settled flags) is indexed by
//     arena position and lives for one call only.
//   - Relaxation uses a strict "<": among equal-cost alternatives the first
//     discovered predecessor is kept.
//   - When the cheapest unsettled station is at +Inf, nothing else can be
//     reached and the loop ends; the destination is then unreachable.
//   - Path reconstruction verifies that the predecessor chain ends at the
//     origin before reporting a route.
package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/tanroute/geo"
	"github.com/katalvlaran/tanroute/network"
)

// noPred marks a station without a recorded predecessor.
const noPred = -1

// ShortestPath computes the shortest directed route from originID to
// destinationID in n.
//
// Returns:
//
//   - Path with Found() == true and the stations from origin to destination,
//     or Found() == false when no directed route exists.
//   - err for invalid input only: ErrNilNetwork, ErrEmptyEndpoint,
//     ErrUnknownStation, ErrBadStrategy, or ctx.Err() if ctx ends mid-search.
//
// If originID == destinationID the route is that single station, cost 0.
func ShortestPath(ctx context.Context, n *network.Network, originID, destinationID string, opts ...Option) (Path, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input.
	if n == nil {
		return Path{}, ErrNilNetwork
	}
	if originID == "" || destinationID == "" {
		return Path{}, ErrEmptyEndpoint
	}
	origin, ok := n.Index(originID)
	if !ok {
		return Path{}, fmt.Errorf("%w: origin %q", ErrUnknownStation, originID)
	}
	dest, ok := n.Index(destinationID)
	if !ok {
		return Path{}, fmt.Errorf("%w: destination %q", ErrUnknownStation, destinationID)
	}

	// 3) Prepare per-query state.
	r := newRunner(n, cfg, origin, dest)
	switch cfg.Strategy {
	case StrategyLinear:
		r.sel = &linearSelector{r: r}
	case StrategyHeap:
		r.sel = newHeapSelector(r)
	default:
		return Path{}, fmt.Errorf("%w: %s", ErrBadStrategy, cfg.Strategy)
	}

	// 4) Run and reconstruct.
	reached, err := r.run(ctx)
	if err != nil {
		return Path{}, err
	}
	if !reached {
		return Path{Settled: r.settledCount}, nil
	}

	return r.path(), nil
}

// selector yields the next station to settle.
type selector interface {
	// next returns the unsettled station with the smallest finite distance,
	// lowest index first among equals; ok is false when none remains.
	next() (idx int, ok bool)
	// improved is called after dist[idx] decreased.
	improved(idx int)
}

// runner holds the mutable state for a single search.
type runner struct {
	n            *network.Network
	opts         Options
	origin, dest int
	dist         []float64 // best-known distance from origin
	prev         []int     // predecessor on best-known route, noPred if none
	settled      []bool
	settledCount int
	sel          selector
}

// newRunner sets dist = +Inf everywhere but the origin.
func newRunner(n *network.Network, opts Options, origin, dest int) *runner {
	size := n.Len()
	r := &runner{
		n:       n,
		opts:    opts,
		origin:  origin,
		dest:    dest,
		dist:    make([]float64, size),
		prev:    make([]int, size),
		settled: make([]bool, size),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = noPred
	}
	r.dist[origin] = 0

	return r
}

// run settles stations until the destination is settled (true) or no
// reachable station is left (false).
func (r *runner) run(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		u, ok := r.sel.next()
		if !ok {
			return false, nil
		}

		r.settled[u] = true
		r.settledCount++
		r.opts.OnSettle(r.n.Station(u).ID, r.dist[u])

		// Early exit: the destination distance is final.
		if u == r.dest {
			return true, nil
		}

		r.relax(u)
	}
}

// relax tries to improve every direct successor of u.
func (r *runner) relax(u int) {
	from := r.n.Station(u).Coord
	for _, v := range r.n.Successors(u) {
		if r.settled[v] {
			continue
		}
		cand := r.dist[u] + geo.Distance(from, r.n.Station(v).Coord)
		// Strict: an equal-cost alternative never replaces the first predecessor.
		if cand < r.dist[v] {
			r.dist[v] = cand
			r.prev[v] = u
			r.sel.improved(v)
		}
	}
}

// path rebuilds origin→destination from the predecessor links. A chain that
// does not end at the origin is reported as unreachable.
func (r *runner) path() Path {
	if r.origin == r.dest {
		return Path{
			Stations: []network.Station{r.n.Station(r.origin)},
			Settled:  r.settledCount,
		}
	}

	chain := []int{r.dest}
	cur := r.dest
	for r.prev[cur] != noPred {
		cur = r.prev[cur]
		chain = append(chain, cur)
		if len(chain) > r.n.Len() {
			// a cycle in prev cannot come from a valid search
			return Path{Settled: r.settledCount}
		}
	}
	if cur != r.origin {
		return Path{Settled: r.settledCount}
	}

	stations := make([]network.Station, len(chain))
	for i, idx := range chain {
		stations[len(chain)-1-i] = r.n.Station(idx)
	}

	return Path{
		Stations: stations,
		Cost:     r.dist[r.dest],
		Settled:  r.settledCount,
	}
}

// linearSelector scans all stations on every call.
type linearSelector struct {
	r *runner
}

func (s *linearSelector) next() (int, bool) {
	best, bestDist := noPred, math.Inf(1)
	for i, d := range s.r.dist {
		if !s.r.settled[i] && d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, best != noPred
}

func (s *linearSelector) improved(int) {}
