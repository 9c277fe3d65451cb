// Package tanroute finds the shortest way between two stations of a transit
// network whose route lengths are computed from station coordinates.
//
// What is inside?
//
//   - geo: equirectangular distance between coordinates in radians
//   - network: immutable station arena with directed routes, built fail-fast
//   - dijkstra: exact shortest path with early exit and explicit unreachability
//   - bfs: directed reachability and hop counts
//   - tan: the line-oriented text format for networks and queries
//
// Services live under internal/ (config, metrics, store, planner, api,
// broker) and are assembled by cmd/tanrouted; cmd/tanroute is the one-shot
// command-line tool.
//
// Quick ASCII example:
//
//	    P ──▶ Q ──▶ R
//
//	ShortestPath(P, R) = [P Q R]; ShortestPath(R, P) is unreachable.
//
//	go get github.com/katalvlaran/tanroute
package tanroute
