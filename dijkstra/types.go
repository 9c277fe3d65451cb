// Package dijkstra defines the options, errors, and result type for the
// station-to-station shortest-path search.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tanroute/network"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrEmptyEndpoint indicates that the origin or destination ID is empty.
	ErrEmptyEndpoint = errors.New("dijkstra: origin or destination ID is empty")

	// ErrUnknownStation indicates that the origin or destination is not in the network.
	// It wraps network.ErrUnknownStation, so either sentinel matches with errors.Is.
	ErrUnknownStation = fmt.Errorf("dijkstra: %w", network.ErrUnknownStation)

	// ErrBadStrategy indicates that an unsupported Strategy was configured.
	ErrBadStrategy = errors.New("dijkstra: unknown selection strategy")

	// ErrUnreachable describes a search that found no directed path.
	// ShortestPath never returns it; it is available through Path.Err.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Strategy selects how the next station to settle is chosen.
//
// Both strategies settle stations in the same order and therefore return
// the same path for every query: the unsettled station with the smallest
// tentative distance, ties broken by the lowest arena index (the order in
// which stations were added to the network).
type Strategy int

const (
	// StrategyLinear scans every unsettled station on each step. O(V² + E).
	StrategyLinear Strategy = iota

	// StrategyHeap keeps candidates in a binary heap with lazy decrease-key.
	// O((V + E) log V).
	StrategyHeap
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "linear" or "heap" to a Strategy. The empty string
// selects the default, StrategyLinear.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "linear", "":
		return StrategyLinear, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, s)
	}
}

// Options configures a search.
type Options struct {
	// Strategy picks the minimum-selection technique.
	Strategy Strategy

	// OnSettle is called each time a station's distance becomes final,
	// with the station ID and its distance from the origin in kilometers.
	OnSettle func(id string, dist float64)
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithStrategy sets the minimum-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnSettle registers a callback invoked whenever a station is settled.
func WithOnSettle(fn func(id string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns the linear strategy with a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyLinear,
		OnSettle: func(string, float64) {},
	}
}

// Path is the outcome of one search.
//
// A Path with no stations means the destination is unreachable from the
// origin; that is a normal result, not an error.
type Path struct {
	// Stations lists the route from origin to destination inclusive.
	Stations []network.Station

	// Cost is the route length in kilometers, the sum of geo.Distance over
	// consecutive stations.
	Cost float64

	// Settled counts the stations whose distance was finalized before the
	// search stopped.
	Settled int
}

// Found reports whether a route exists.
func (p Path) Found() bool { return len(p.Stations) > 0 }

// Len returns the number of stations on the route.
func (p Path) Len() int { return len(p.Stations) }

// Err returns ErrUnreachable when no route exists, nil otherwise.
func (p Path) Err() error {
	if !p.Found() {
		return ErrUnreachable
	}

	return nil
}

// IDs returns the station IDs along the route.
func (p Path) IDs() []string {
	out := make([]string, len(p.Stations))
	for i, s := range p.Stations {
		out[i] = s.ID
	}

	return out
}

// Labels returns the display labels along the route.
func (p Path) Labels() []string {
	out := make([]string, len(p.Stations))
	for i, s := range p.Stations {
		out[i] = s.Label
	}

	return out
}
