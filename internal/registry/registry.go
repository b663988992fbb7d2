// Package registry holds the latest telemetry report per host.
//
// The registry is the single shared mutable resource in the collector. It is
// created empty at process start, lives for the process lifetime, and has no
// persistence. Callers construct it explicitly and pass it to the HTTP
// handlers; there is no package-level instance.
package registry

import (
	"sync"

	"github.com/fleetwatch/fleetwatch/models"
)

// Registry maps host identity (the report's ip field, used verbatim) to the
// most recent HostReport for that host. A new report for a known ip fully
// replaces the prior one; there is no merge and no staleness check.
//
// Thread-safe for concurrent access. The lock covers map access only, never
// payload decoding or response serialization.
type Registry struct {
	mu    sync.RWMutex
	hosts map[string]models.HostReport
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		hosts: make(map[string]models.HostReport),
	}
}

// Upsert inserts or replaces the entry at the report's ip. Last write wins:
// when two concurrent upserts race on the same ip, whichever acquires the
// lock last determines the stored value. Cannot fail for a decoded report.
func (r *Registry) Upsert(report models.HostReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hosts[report.IP] = report
}

// Snapshot returns one report per registered host, value-copied at the
// moment of the call. Iteration order is unspecified and may vary between
// calls. An empty registry yields an empty slice, never nil.
func (r *Registry) Snapshot() []models.HostReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]models.HostReport, 0, len(r.hosts))
	for _, report := range r.hosts {
		reports = append(reports, report)
	}
	return reports
}
