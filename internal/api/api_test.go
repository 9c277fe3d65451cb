package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tanroute/dijkstra"
	"github.com/katalvlaran/tanroute/internal/api"
	"github.com/katalvlaran/tanroute/internal/planner"
	"github.com/katalvlaran/tanroute/network"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	b := network.NewBuilder()
	require.NoError(t, b.AddStation("COMM", "Commerce", 47.2132, -1.5603))
	require.NoError(t, b.AddStation("BOUF", "Bouffay", 47.2152, -1.5540))
	require.NoError(t, b.AddStation("GSNO", "Gare SNCF Nord", 47.2175, -1.5416))
	require.NoError(t, b.AddRoute("COMM", "BOUF"))
	require.NoError(t, b.AddRoute("BOUF", "GSNO"))
	n, err := b.Build()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := planner.New(n, dijkstra.StrategyLinear, time.Second, nil, logger)
	srv := httptest.NewServer(api.NewRouter(p, logger))
	t.Cleanup(srv.Close)

	return srv
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestRoute_Found(t *testing.T) {
	srv := newServer(t)
	var body planner.RouteBody
	resp := getJSON(t, srv.URL+"/routes?from=COMM&to=GSNO", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.True(t, body.Found)
	require.Len(t, body.Stations, 3)
	assert.Equal(t, "Gare SNCF Nord", body.Stations[2].Label)
	assert.Greater(t, body.CostKm, 0.0)
}

func TestRoute_Unreachable(t *testing.T) {
	srv := newServer(t)
	var body planner.RouteBody
	resp := getJSON(t, srv.URL+"/routes?from=GSNO&to=COMM", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, body.Found)
	assert.Empty(t, body.Stations)
}

func TestRoute_Errors(t *testing.T) {
	srv := newServer(t)
	resp := getJSON(t, srv.URL+"/routes?from=COMM", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/routes?from=COMM&to=XXXX", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoute_GeoJSON(t *testing.T) {
	srv := newServer(t)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
		} `json:"features"`
	}
	resp := getJSON(t, srv.URL+"/routes?from=COMM&to=GSNO&format=geojson", &fc)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 4)
	assert.Equal(t, "LineString", fc.Features[3].Geometry.Type)
}

func TestStation(t *testing.T) {
	srv := newServer(t)
	var st planner.StationBody
	resp := getJSON(t, srv.URL+"/stations/BOUF", &st)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bouffay", st.Label)
	assert.InDelta(t, -1.5540, st.Lon, 1e-9)

	resp = getJSON(t, srv.URL+"/stations/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReachable(t *testing.T) {
	srv := newServer(t)
	var body struct {
		Order   []string       `json:"order"`
		Depth   map[string]int `json:"depth"`
		Reached int            `json:"reached"`
	}
	resp := getJSON(t, srv.URL+"/stations/COMM/reachable", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"COMM", "BOUF", "GSNO"}, body.Order)
	assert.Equal(t, 2, body.Depth["GSNO"])

	resp = getJSON(t, srv.URL+"/stations/COMM/reachable?max_depth=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = getJSON(t, srv.URL+"/stations/COMM/reachable?max_depth=x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newServer(t)
	var body map[string]int
	resp := getJSON(t, srv.URL+"/healthz", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, body["stations"])
	assert.Equal(t, 2, body["routes"])
}
