// Package api exposes the sorting engine over HTTP: algorithm listing,
// traced sorts, shuffle plans and Prometheus metrics.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/sortsim/sortsim/sim"
	"github.com/sortsim/sortsim/sim/shuffle"
	"github.com/sortsim/sortsim/sim/sorting"
)

// Request size limits. Traces hold one snapshot per step, so quadratic
// algorithms grow as n³ in memory and in the response body.
const (
	MaxSortValues  = 64
	MaxShuffleSize = 100_000
)

// Server serves the HTTP endpoints.
type Server struct {
	Metrics *Metrics
}

// NewHandler creates the HTTP handler. Metrics are registered on reg and
// served from it at /metrics.
func NewHandler(reg *prometheus.Registry) http.Handler {
	server := &Server{Metrics: NewMetrics(reg)}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/algorithms", server.Algorithms)
	r.Post("/sort", server.Sort)
	r.Post("/shuffle", server.Shuffle)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

// Algorithms handles GET /algorithms.
func (s *Server) Algorithms(w http.ResponseWriter, r *http.Request) {
	resp := AlgorithmsResponse{Default: sorting.DefaultAlgorithm}
	for _, name := range sorting.Names() {
		resp.Algorithms = append(resp.Algorithms, AlgorithmInfo{Name: name, Description: sorting.Describe(name)})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Sort handles POST /sort.
func (s *Server) Sort(w http.ResponseWriter, r *http.Request) {
	var body SortRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.Values) > MaxSortValues {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("too many values: %d, at most %d", len(body.Values), MaxSortValues))
		return
	}
	name := body.Algorithm
	if name == "" {
		name = sorting.DefaultAlgorithm
	}
	alg, ok := sorting.Resolve(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("algorithm %q not found", name))
		return
	}

	values := body.Values
	if values == nil {
		values = []float64{}
	}
	sorted, t := sorting.SortCopy(alg, values)
	s.Metrics.Observe(t)
	logrus.Debugf("api: %s sorted %d values in %d steps", name, len(values), t.Len())

	writeJSON(w, http.StatusOK, SortResponse{
		Algorithm: name,
		Sorted:    sorted,
		Summary:   newSummaryJSON(t),
		Trace:     newStepsJSON(t.Steps),
	})
}

// Shuffle handles POST /shuffle.
func (s *Server) Shuffle(w http.ResponseWriter, r *http.Request) {
	var body ShuffleRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Size < 0 || body.Size > MaxShuffleSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("size must be in [0, %d], got %d", MaxShuffleSize, body.Size))
		return
	}

	values := make([]float64, body.Size)
	for i := range values {
		values[i] = float64(i + 1)
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(body.Seed))
	plan := shuffle.PrepareShuffle(values, rng.ForSubsystem(sim.SubsystemShuffle))
	shuffled := append([]float64(nil), values...)
	shuffle.Apply(shuffled, plan)

	resp := ShuffleResponse{Values: values, Shuffled: shuffled, Plan: make([][2]int, len(plan))}
	for i, sw := range plan {
		resp.Plan[i] = [2]int{sw.I, sw.J}
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		logrus.Debugf("api: %s %s: invalid request body: %v", r.Method, r.URL.Path, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("api: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
