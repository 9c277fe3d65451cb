// Package tan reads and writes the line-oriented text format used to feed
// station networks and route queries to the tanroute tools.
//
// Input layout:
//
//	StopArea:ABDU                                   origin
//	StopArea:ABLA                                   destination
//	3                                               station count
//	StopArea:ABDU,"Abel Durand",,47.22,-1.60,,,1,   one CSV record per station
//	...
//	2                                               route count
//	StopArea:ABDU StopArea:ABLA                     one directed route per line
//	...
//
// Identifiers are the text after the last ':'. Station records carry the
// name in field 2 and latitude/longitude in degrees in fields 4 and 5; the
// remaining fields are ignored.
//
// Output is one station label per line, or Impossible when no route exists.
package tan

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tanroute/dijkstra"
	"github.com/katalvlaran/tanroute/network"
)

// Impossible is printed instead of a route when the destination is unreachable.
const Impossible = "IMPOSSIBLE"

// ErrMalformed indicates input that does not follow the text format.
var ErrMalformed = errors.New("tan: malformed input")

// Query is a parsed input document.
type Query struct {
	Origin      string
	Destination string
	Network     *network.Network
}

// lineReader tracks line numbers for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next(what string) (string, error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text != "" {
			return text, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", fmt.Errorf("tan: read %s: %w", what, err)
	}

	return "", fmt.Errorf("%w: line %d: unexpected end of input, want %s", ErrMalformed, lr.line+1, what)
}

func (lr *lineReader) count(what string) (int, error) {
	text, err := lr.next(what)
	if err != nil {
		return 0, err
	}
	c, err := strconv.Atoi(text)
	if err != nil || c < 0 {
		return 0, fmt.Errorf("%w: line %d: bad %s %q", ErrMalformed, lr.line, what, text)
	}

	return c, nil
}

// Parse reads a complete query document from r and builds its network.
// Routes naming unknown stations fail with network.ErrUnknownStation.
func Parse(r io.Reader) (*Query, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	lr.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	origin, err := lr.next("origin")
	if err != nil {
		return nil, err
	}
	dest, err := lr.next("destination")
	if err != nil {
		return nil, err
	}

	b := network.NewBuilder()

	stations, err := lr.count("station count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < stations; i++ {
		text, err := lr.next("station record")
		if err != nil {
			return nil, err
		}
		id, label, lat, lon, err := parseStation(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lr.line, err)
		}
		if err := b.AddStation(id, label, lat, lon); err != nil {
			return nil, fmt.Errorf("tan: line %d: %w", lr.line, err)
		}
	}

	routes, err := lr.count("route count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < routes; i++ {
		text, err := lr.next("route record")
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: route needs 2 stations, got %d", ErrMalformed, lr.line, len(fields))
		}
		if err := b.AddRoute(identifier(fields[0]), identifier(fields[1])); err != nil {
			return nil, fmt.Errorf("tan: line %d: %w", lr.line, err)
		}
	}

	n, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &Query{
		Origin:      identifier(origin),
		Destination: identifier(dest),
		Network:     n,
	}, nil
}

// parseStation decodes one CSV station record.
func parseStation(text string) (id, label string, lat, lon float64, err error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	fields, err := cr.Read()
	if err != nil {
		return "", "", 0, 0, err
	}
	if len(fields) < 5 {
		return "", "", 0, 0, fmt.Errorf("station record has %d fields, want at least 5", len(fields))
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return "", "", 0, 0, fmt.Errorf("latitude: %w", err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return "", "", 0, 0, fmt.Errorf("longitude: %w", err)
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return "", "", 0, 0, fmt.Errorf("coordinates (%v, %v) are not finite", lat, lon)
	}

	return identifier(fields[0]), strings.ReplaceAll(fields[1], `"`, ""), lat, lon, nil
}

// identifier strips any "StopArea:" style prefix.
func identifier(s string) string {
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}

	return s
}

// WriteResult prints the labels of p, one per line, or Impossible.
func WriteResult(w io.Writer, p dijkstra.Path) error {
	if !p.Found() {
		_, err := fmt.Fprintln(w, Impossible)
		return err
	}
	bw := bufio.NewWriter(w)
	for _, label := range p.Labels() {
		if _, err := fmt.Fprintln(bw, label); err != nil {
			return err
		}
	}

	return bw.Flush()
}
