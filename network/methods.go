package network

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Len returns the number of stations.
func (n *Network) Len() int { return len(n.stations) }

// RouteCount returns the number of directed routes.
func (n *Network) RouteCount() int { return n.routes }

// Index returns the arena index of the station with the given ID.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]

	return i, ok
}

// Station returns the station stored at arena index i.
// It panics if i is out of range, like a slice access.
func (n *Network) Station(i int) Station { return n.stations[i] }

// Lookup returns the station with the given ID, or ErrUnknownStation.
func (n *Network) Lookup(id string) (Station, error) {
	i, ok := n.index[id]
	if !ok {
		return Station{}, fmt.Errorf("%w: %q", ErrUnknownStation, id)
	}

	return n.stations[i], nil
}

// Successors returns the arena indices directly reachable from station i,
// in the order the routes were added. The slice must not be modified.
func (n *Network) Successors(i int) []int { return n.successors[i] }

// Stations returns a copy of all stations in arena order.
func (n *Network) Stations() []Station {
	out := make([]Station, len(n.stations))
	copy(out, n.stations)

	return out
}

// Bounds returns the bounding box of all stations, in degrees.
// An empty network yields the zero orb.Bound.
func (n *Network) Bounds() orb.Bound {
	if len(n.stations) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, len(n.stations))
	for i, s := range n.stations {
		mp[i] = s.Coord.Point()
	}

	return mp.Bound()
}
