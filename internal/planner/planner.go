// Package planner answers route queries against a loaded network. It is the
// single place where transports (HTTP, NATS, CLI) apply the configured
// strategy, per-query timeout, logging, and metrics around a search.
package planner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/tanroute/dijkstra"
	"github.com/katalvlaran/tanroute/internal/metrics"
	"github.com/katalvlaran/tanroute/network"
)

// Recorder receives one observation per query.
type Recorder interface {
	ObserveQuery(outcome string, d time.Duration, settled int)
}

// StationBody is the wire form of a station.
type StationBody struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// RouteBody is the wire form of a query result.
type RouteBody struct {
	From     string        `json:"from"`
	To       string        `json:"to"`
	Found    bool          `json:"found"`
	Stations []StationBody `json:"stations"`
	CostKm   float64       `json:"cost_km"`
	Settled  int           `json:"settled"`
}

// NewStationBody converts a station to its wire form, in degrees.
func NewStationBody(s network.Station) StationBody {
	lat, lon := s.Coord.Degrees()
	return StationBody{ID: s.ID, Label: s.Label, Lat: lat, Lon: lon}
}

// Planner runs searches on an immutable network; safe for concurrent use.
type Planner struct {
	net      *network.Network
	strategy dijkstra.Strategy
	timeout  time.Duration
	rec      Recorder
	logger   *slog.Logger
}

// New returns a Planner. rec and logger may be nil; timeout 0 disables the deadline.
func New(n *network.Network, strategy dijkstra.Strategy, timeout time.Duration, rec Recorder, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{net: n, strategy: strategy, timeout: timeout, rec: rec, logger: logger}
}

// Network returns the network queries run against.
func (p *Planner) Network() *network.Network { return p.net }

// Plan searches the shortest route. An unreachable destination is a
// successful call with Found == false.
func (p *Planner) Plan(ctx context.Context, from, to string) (dijkstra.Path, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	path, err := dijkstra.ShortestPath(ctx, p.net, from, to,
		dijkstra.WithStrategy(p.strategy),
		dijkstra.WithOnSettle(func(id string, dist float64) {
			p.logger.Log(ctx, slog.LevelDebug-4, "settled", "station", id, "dist_km", dist)
		}),
	)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeFound
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case !path.Found():
		outcome = metrics.OutcomeUnreachable
	}
	if p.rec != nil {
		p.rec.ObserveQuery(outcome, elapsed, path.Settled)
	}

	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, network.ErrUnknownStation) {
			level = slog.LevelDebug
		}
		p.logger.Log(ctx, level, "route query failed", "from", from, "to", to, "error", err)
		return dijkstra.Path{}, err
	}
	p.logger.Debug("route query", "from", from, "to", to, "outcome", outcome,
		"stations", path.Len(), "cost_km", path.Cost, "settled", path.Settled, "elapsed", elapsed)

	return path, nil
}

// Body converts a search result to its wire form.
func Body(from, to string, path dijkstra.Path) RouteBody {
	body := RouteBody{
		From:     from,
		To:       to,
		Found:    path.Found(),
		Stations: make([]StationBody, 0, path.Len()),
		CostKm:   path.Cost,
		Settled:  path.Settled,
	}
	for _, s := range path.Stations {
		body.Stations = append(body.Stations, NewStationBody(s))
	}
	return body
}
