// Package api exposes route queries over HTTP.
//
//	GET /healthz
//	GET /routes?from=ID&to=ID[&format=geojson]
//	GET /stations/{id}
//	GET /stations/{id}/reachable[?max_depth=N]
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/tanroute/bfs"
	"github.com/katalvlaran/tanroute/dijkstra"
	"github.com/katalvlaran/tanroute/internal/planner"
	"github.com/katalvlaran/tanroute/network"
)

// Handler serves the HTTP API.
type Handler struct {
	planner *planner.Planner
	logger  *slog.Logger
}

// NewRouter builds the mux router with middleware installed.
func NewRouter(p *planner.Planner, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{planner: p, logger: logger}

	r := mux.NewRouter()
	r.Use(middleware(logger)...)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.HandleFunc("/routes", h.route).Methods(http.MethodGet)
	r.HandleFunc("/stations/{id}", h.station).Methods(http.MethodGet)
	r.HandleFunc("/stations/{id}/reachable", h.reachable).Methods(http.MethodGet)

	return r
}

// statusClientClosedRequest is the nginx convention for a request whose
// client went away before the response was written.
const statusClientClosedRequest = 499

type errorBody struct {
	Error string `json:"error"`
}

type reachableBody struct {
	From    string         `json:"from"`
	Order   []string       `json:"order"`
	Depth   map[string]int `json:"depth"`
	Reached int            `json:"reached"`
}

func respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	n := h.planner.Network()
	respond(w, http.StatusOK, map[string]int{"stations": n.Len(), "routes": n.RouteCount()})
}

func (h *Handler) route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		respond(w, http.StatusBadRequest, errorBody{Error: "from and to are required"})
		return
	}

	path, err := h.planner.Plan(r.Context(), from, to)
	if err != nil {
		respond(w, statusFor(err), errorBody{Error: err.Error()})
		return
	}

	if q.Get("format") == "geojson" {
		w.Header().Set("Content-Type", "application/geo+json")
		_ = json.NewEncoder(w).Encode(featureCollection(path))
		return
	}
	respond(w, http.StatusOK, planner.Body(from, to, path))
}

func (h *Handler) station(w http.ResponseWriter, r *http.Request) {
	st, err := h.planner.Network().Lookup(mux.Vars(r)["id"])
	if err != nil {
		respond(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	respond(w, http.StatusOK, planner.NewStationBody(st))
}

func (h *Handler) reachable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	opts := []bfs.Option{bfs.WithContext(r.Context())}
	if v := r.URL.Query().Get("max_depth"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			respond(w, http.StatusBadRequest, errorBody{Error: "max_depth must be an integer"})
			return
		}
		opts = append(opts, bfs.WithMaxDepth(d))
	}

	res, err := bfs.Reachable(h.planner.Network(), id, opts...)
	if err != nil {
		respond(w, statusFor(err), errorBody{Error: err.Error()})
		return
	}
	respond(w, http.StatusOK, reachableBody{From: id, Order: res.Order, Depth: res.Depth, Reached: len(res.Order)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, network.ErrUnknownStation), errors.Is(err, bfs.ErrStartNotFound):
		return http.StatusNotFound
	case errors.Is(err, dijkstra.ErrEmptyEndpoint), errors.Is(err, bfs.ErrOptionViolation):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// featureCollection renders a route as one Point per station plus a
// LineString when the route has at least two stations.
// An unreachable route yields an empty collection.
func featureCollection(path dijkstra.Path) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if !path.Found() {
		return fc
	}

	ls := make(orb.LineString, 0, path.Len())
	for i, s := range path.Stations {
		pt := s.Coord.Point()
		ls = append(ls, pt)

		f := geojson.NewFeature(pt)
		f.Properties["id"] = s.ID
		f.Properties["label"] = s.Label
		f.Properties["seq"] = i
		fc.Append(f)
	}

	if len(ls) >= 2 {
		line := geojson.NewFeature(ls)
		line.Properties["cost_km"] = path.Cost
		fc.Append(line)
	}

	return fc
}
