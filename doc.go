// Package fleetwatch is a fleet telemetry collector.
//
// # Overview
//
// Hosts periodically push a snapshot of their hardware/OS state to the
// collector server; any consumer retrieves the latest known state of every
// host. The collector keeps only the most recent report per host, in memory,
// keyed by the host's IP address.
//
// The system consists of three main components:
//   - Collector Server: Echo REST API receiving and serving host reports
//   - Host Registry: concurrent in-memory store of the latest report per host
//   - Reporting Agent: gopsutil-based collector pushing on an interval
//
// # Architecture
//
//	┌─────────────────┐        POST /hosts       ┌─────────────────┐
//	│ Reporting Agent │─────────────────────────►│ Collector Server│
//	│   (gopsutil)    │                          │   (Echo REST)   │
//	└─────────────────┘                          └────────┬────────┘
//	                                                      │
//	┌─────────────────┐        GET /hosts         ┌───────▼────────┐
//	│    Consumers    │◄──────────────────────────│  Host Registry │
//	│ (dashboards...) │                           │ (in-memory map)│
//	└─────────────────┘                           └────────────────┘
//
// # Core Behavior
//
// Write path:
//   - Strict payload validation before the registry is touched
//   - Upsert keyed by ip, last write wins, whole-value replacement
//
// Read path:
//   - Consistent point-in-time snapshot of all registered hosts
//   - Bare JSON array, empty array before any host has reported
//
// Reporting agent:
//   - CPU, memory, disk, process, and OS telemetry via gopsutil
//   - Optional GPU telemetry via nvidia-smi, omitted when unavailable
//
// There is no persistence, no replication, and no host expiry: a restart
// yields an empty registry, and a host that stops reporting remains at its
// last-known state.
package fleetwatch
