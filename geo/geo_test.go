package geo_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tanroute/geo"
)

const eps = 1e-9

func TestFromDegrees(t *testing.T) {
	c := geo.FromDegrees(180, -90)
	assert.InDelta(t, math.Pi, c.Lat, eps)
	assert.InDelta(t, -math.Pi/2, c.Lon, eps)

	lat, lon := c.Degrees()
	assert.InDelta(t, 180, lat, eps)
	assert.InDelta(t, -90, lon, eps)
}

func TestDistance_Zero(t *testing.T) {
	a := geo.FromDegrees(47.2184, -1.5536)
	assert.Equal(t, 0.0, geo.Distance(a, a))
}

func TestDistance_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	p := geo.FromDegrees(0, 0)
	q := geo.FromDegrees(0, 1)
	want := geo.EarthRadiusKm * math.Pi / 180
	assert.InDelta(t, want, geo.Distance(p, q), 1e-9)
}

func TestDistance_Symmetric(t *testing.T) {
	pts := []geo.Coordinate{
		geo.FromDegrees(0, 0),
		geo.FromDegrees(47.22019661, -1.60337553),
		geo.FromDegrees(47.26602543, -1.5293822),
		geo.FromDegrees(-33.8688, 151.2093),
		geo.FromDegrees(89.9, 179.9),
	}
	for _, a := range pts {
		for _, b := range pts {
			d1, d2 := geo.Distance(a, b), geo.Distance(b, a)
			require.GreaterOrEqual(t, d1, 0.0)
			require.InDelta(t, d1, d2, 1e-9, "distance(%v,%v) not symmetric", a, b)
		}
	}
}

// TestDistance_CloseToHaversine checks the approximation against orb's
// haversine implementation for city-scale hops.
func TestDistance_CloseToHaversine(t *testing.T) {
	a := orb.Point{-1.60337553, 47.22019661}
	b := orb.Point{-1.5293822, 47.26602543}

	approx := geo.Distance(geo.FromPoint(a), geo.FromPoint(b))
	exact := orbgeo.DistanceHaversine(a, b) / 1000

	assert.InEpsilon(t, exact, approx, 0.005)
}

func TestPointRoundTrip(t *testing.T) {
	p := orb.Point{-1.5536, 47.2184}
	got := geo.FromPoint(p).Point()
	assert.InDelta(t, p.Lon(), got.Lon(), eps)
	assert.InDelta(t, p.Lat(), got.Lat(), eps)
}
