package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tanroute/geo"
)

// Builder assembles a Network.
//
// The first error encountered is remembered: later calls become no-ops that
// return the same error, and Build reports it. A Network with a dangling
// route reference is never produced.
type Builder struct {
	n     *Network
	err   error
	built bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		n: &Network{index: make(map[string]int)},
	}
}

// AddStation registers a station. Coordinates are given in degrees and are
// converted to radians here, once.
func (b *Builder) AddStation(id, label string, latDeg, lonDeg float64) error {
	if err := b.usable(); err != nil {
		return err
	}
	if id == "" {
		return b.fail(ErrEmptyStationID)
	}
	if _, ok := b.n.index[id]; ok {
		return b.fail(fmt.Errorf("%w: %q", ErrDuplicateStation, id))
	}
	if !finite(latDeg) || !finite(lonDeg) {
		return b.fail(fmt.Errorf("%w: station %q (%v, %v)", ErrBadCoordinate, id, latDeg, lonDeg))
	}

	b.n.index[id] = len(b.n.stations)
	b.n.stations = append(b.n.stations, Station{
		ID:    id,
		Label: label,
		Coord: geo.FromDegrees(latDeg, lonDeg),
	})
	b.n.successors = append(b.n.successors, nil)

	return nil
}

// AddRoute registers a directed route fromID → toID. Both stations must
// already exist; the reverse direction is not implied.
func (b *Builder) AddRoute(fromID, toID string) error {
	if err := b.usable(); err != nil {
		return err
	}
	from, ok := b.n.index[fromID]
	if !ok {
		return b.fail(fmt.Errorf("%w: route source %q", ErrUnknownStation, fromID))
	}
	to, ok := b.n.index[toID]
	if !ok {
		return b.fail(fmt.Errorf("%w: route target %q", ErrUnknownStation, toID))
	}

	b.n.successors[from] = append(b.n.successors[from], to)
	b.n.routes++

	return nil
}

// Err returns the first error recorded by the Builder, if any.
func (b *Builder) Err() error { return b.err }

// Build freezes and returns the Network. The Builder cannot be reused.
func (b *Builder) Build() (*Network, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}
	b.built = true
	n := b.n
	b.n = nil

	return n, nil
}

func (b *Builder) usable() error {
	if b.err != nil {
		return b.err
	}
	if b.built {
		return ErrBuilderSpent
	}

	return nil
}

func (b *Builder) fail(err error) error {
	b.err = err

	return err
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
