// Package store loads a station network from a Postgres database holding a
// GTFS feed. Stations come from the stops table; a directed route joins
// every pair of consecutive stops of a trip.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/katalvlaran/tanroute/network"
)

const stopsQuery = `SELECT stop_id, COALESCE(stop_name, ''), stop_lat, stop_lon FROM stops ORDER BY stop_id`

// Consecutive stops per trip; stop_sequence is increasing but not always contiguous.
const linksQuery = `
SELECT DISTINCT from_id, to_id FROM (
  SELECT stop_id AS from_id,
         LEAD(stop_id) OVER (PARTITION BY trip_id ORDER BY stop_sequence) AS to_id
  FROM stop_times
) s
WHERE to_id IS NOT NULL AND from_id <> to_id
ORDER BY from_id, to_id`

// Stop is one row of the stops table.
type Stop struct {
	ID       string
	Name     string
	Lat, Lon float64 // degrees
}

// Link is a directed hop between consecutive stops.
type Link struct {
	From, To string
}

// Open returns a pgx-backed *sql.DB with pool limits set.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// Ping checks connectivity with a short timeout.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// LoadNetwork reads stops and links and builds the network. Nothing is written.
func LoadNetwork(ctx context.Context, db *sql.DB) (*network.Network, error) {
	stops, err := fetchStops(ctx, db)
	if err != nil {
		return nil, err
	}
	links, err := fetchLinks(ctx, db)
	if err != nil {
		return nil, err
	}
	return Assemble(stops, links)
}

// Assemble builds a network from already-fetched rows.
func Assemble(stops []Stop, links []Link) (*network.Network, error) {
	b := network.NewBuilder()
	for _, s := range stops {
		if err := b.AddStation(s.ID, s.Name, s.Lat, s.Lon); err != nil {
			return nil, fmt.Errorf("store: stop %q: %w", s.ID, err)
		}
	}
	for _, l := range links {
		if err := b.AddRoute(l.From, l.To); err != nil {
			return nil, fmt.Errorf("store: link %s→%s: %w", l.From, l.To, err)
		}
	}
	return b.Build()
}

func fetchStops(ctx context.Context, db *sql.DB) ([]Stop, error) {
	rows, err := db.QueryContext(ctx, stopsQuery)
	if err != nil {
		return nil, fmt.Errorf("query stops: %w", err)
	}
	defer rows.Close()

	var out []Stop
	for rows.Next() {
		var s Stop
		if err := rows.Scan(&s.ID, &s.Name, &s.Lat, &s.Lon); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func fetchLinks(ctx context.Context, db *sql.DB) ([]Link, error) {
	rows, err := db.QueryContext(ctx, linksQuery)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var out []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.From, &l.To); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
