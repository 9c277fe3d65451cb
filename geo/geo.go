// Package geo provides the distance function used to weigh routes between
// stations, together with a small coordinate type that keeps latitude and
// longitude in radians.
//
// Distance uses the equirectangular approximation of the great-circle
// distance:
//
//	x = (lonB - lonA) * cos((latA + latB) / 2)
//	y = (latB - latA)
//	d = sqrt(x² + y²) * R      (R = 6371 km)
//
// The approximation is accurate for the short and medium hops found in an
// urban transit network and is cheaper than haversine. Results must stay
// comparable with historical outputs, so the formula shape is fixed.
//
// Complexity:
//
//   - FromDegrees: O(1)
//   - Distance:    O(1), one cosine and one square root.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used to scale angular distances.
const EarthRadiusKm = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Coordinate is a geographic position expressed in radians.
//
// Coordinates are converted from degrees exactly once, at construction,
// so that Distance never repeats the conversion.
type Coordinate struct {
	Lat float64 // latitude, radians
	Lon float64 // longitude, radians
}

// FromDegrees builds a Coordinate from latitude and longitude in degrees.
func FromDegrees(latDeg, lonDeg float64) Coordinate {
	return Coordinate{
		Lat: latDeg * degToRad,
		Lon: lonDeg * degToRad,
	}
}

// FromPoint builds a Coordinate from an orb.Point ([lon, lat] in degrees).
func FromPoint(p orb.Point) Coordinate {
	return FromDegrees(p.Lat(), p.Lon())
}

// Degrees returns latitude and longitude in degrees.
func (c Coordinate) Degrees() (latDeg, lonDeg float64) {
	return c.Lat / degToRad, c.Lon / degToRad
}

// Point returns the coordinate as an orb.Point in degrees, ready for GeoJSON.
func (c Coordinate) Point() orb.Point {
	lat, lon := c.Degrees()

	return orb.Point{lon, lat}
}

// Distance returns the equirectangular distance in kilometers between a and b.
// The result is non-negative and symmetric in its arguments.
func Distance(a, b Coordinate) float64 {
	x := (b.Lon - a.Lon) * math.Cos((a.Lat+b.Lat)/2)
	y := b.Lat - a.Lat

	return math.Sqrt(x*x+y*y) * EarthRadiusKm
}
