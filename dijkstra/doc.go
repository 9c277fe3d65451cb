// Package dijkstra answers "what is the shortest way from station A to
// station B" over a network.Network whose route weights are geographic
// distances computed on the fly.
//
// Overview:
//
//   - ShortestPath runs one exact label-setting search from the origin and
//     stops as soon as the destination is settled.
//   - An unreachable destination is an ordinary result: Path.Found() is
//     false and Path.Err() returns ErrUnreachable for callers that want an
//     error value.
//   - Unknown or empty station IDs are caller errors and are returned
//     before any search work is done.
//
// Tie-breaking:
//
//   - When several unsettled stations share the minimum distance, the one
//     added to the network first (lowest arena index) is settled first.
//   - A predecessor is only replaced by a strictly shorter route, so among
//     equal-cost routes the first discovered one is returned.
//
// Strategies:
//
//   - StrategyLinear (default) scans all stations for the minimum; suited to
//     the modest networks this package targets.
//   - StrategyHeap uses container/heap with lazy decrease-key; it settles
//     stations in exactly the same order as StrategyLinear.
//
// Thread safety:
//
//   - A built Network is immutable, so concurrent ShortestPath calls on the
//     same Network are safe. Each call owns its search state.
//
// API reference:
//
//	func ShortestPath(
//	    ctx context.Context,
//	    n *network.Network,
//	    originID, destinationID string,
//	    opts ...Option,
//	) (Path, error)
//
//	  - opts: WithStrategy(Strategy), WithOnSettle(func(id string, dist float64)).
//	  - ctx:  checked once per settled station; cancellation returns ctx.Err().
package dijkstra
