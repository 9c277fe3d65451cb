// Package network defines the Station and Network types consumed by the
// route search, and the Builder that assembles a Network from station and
// route records.
//
// A Network is an arena: stations live in a slice addressed by a stable
// integer index (their insertion order), and directed routes are stored as
// successor index lists. Nothing in a Network points back at a Station, so
// there are no ownership cycles.
//
// Lifecycle:
//
//	b := network.NewBuilder()
//	_ = b.AddStation("ABDU", "Abel Durand", 47.22019661, -1.60337553)
//	_ = b.AddStation("ABLA", "Avenue Blanche", 47.22973509, -1.58937990)
//	_ = b.AddRoute("ABDU", "ABLA")
//	n, err := b.Build()
//
// Once built, a Network never changes and may be shared read-only across
// goroutines.
//
// Errors:
//
//	ErrEmptyStationID   - station ID is the empty string.
//	ErrDuplicateStation - a station ID was added twice.
//	ErrUnknownStation   - a route or lookup names an absent station.
//	ErrBadCoordinate    - a latitude or longitude is NaN or infinite.
//	ErrBuilderSpent     - the Builder was used after Build.
package network

import (
	"errors"

	"github.com/katalvlaran/tanroute/geo"
)

// Sentinel errors for network assembly and lookups.
var (
	// ErrEmptyStationID indicates that a station was added with an empty ID.
	ErrEmptyStationID = errors.New("network: station ID is empty")

	// ErrDuplicateStation indicates that a station ID was registered twice.
	ErrDuplicateStation = errors.New("network: duplicate station")

	// ErrUnknownStation indicates that an ID does not name any station.
	ErrUnknownStation = errors.New("network: unknown station")

	// ErrBadCoordinate indicates a non-finite latitude or longitude.
	ErrBadCoordinate = errors.New("network: coordinate is not finite")

	// ErrBuilderSpent indicates that the Builder was mutated after Build.
	ErrBuilderSpent = errors.New("network: builder already built")
)

// Station is a vertex of the network.
//
// ID is unique within its Network; Label is the display name and may repeat.
type Station struct {
	// ID uniquely identifies the station.
	ID string

	// Label is the human-readable name.
	Label string

	// Coord is the station position in radians.
	Coord geo.Coordinate
}

// Network is an immutable directed graph of stations.
type Network struct {
	stations   []Station      // arena, index = insertion order
	index      map[string]int // station ID → arena index
	successors [][]int        // successors[i] = directed route targets of station i
	routes     int            // total number of directed routes
}
