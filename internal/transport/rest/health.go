package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger is anything whose reachability can be probed.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db       pinger
	version  string
	optional []namedPinger
	features map[string]bool
}

type namedPinger struct {
	name string
	p    pinger
}

// NewHealthHandler creates a HealthHandler. The database is the only
// dependency that makes the service unready.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, features: make(map[string]bool)}
}

// WithOptional registers a dependency whose outage degrades the service
// without making it unready.
func (h *HealthHandler) WithOptional(name string, p pinger) *HealthHandler {
	h.optional = append(h.optional, namedPinger{name: name, p: p})
	return h
}

// WithFeature reports whether an optional integration is configured.
func (h *HealthHandler) WithFeature(name string, enabled bool) *HealthHandler {
	h.features[name] = enabled
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready pings the database: 200 if reachable, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every component with latencies and the build version.
// A failing optional component yields "degraded" with status 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 1+len(h.optional)+len(h.features))
	overall := "ok"

	db := probe(ctx, h.db)
	components["database"] = db
	if db.Status != "ok" {
		overall = "down"
	}

	for _, o := range h.optional {
		st := probe(ctx, o.p)
		components[o.name] = st
		if st.Status != "ok" && overall == "ok" {
			overall = "degraded"
		}
	}

	for name, enabled := range h.features {
		st := "disabled"
		if enabled {
			st = "enabled"
		}
		components[name] = CompStatus{Status: st}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
