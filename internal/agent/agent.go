// Package agent runs the reporting side of Fleetwatch on a host: collect a
// telemetry snapshot, push it to the collector, repeat on an interval.
package agent

import (
	"context"
	"log"
	"time"

	"github.com/fleetwatch/fleetwatch/internal/collector"
	"github.com/fleetwatch/fleetwatch/internal/config"
)

// Agent periodically collects and pushes host reports.
type Agent struct {
	cfg    *config.AgentConfig
	sender *Sender
}

// New creates an agent from its configuration section.
func New(cfg *config.AgentConfig) *Agent {
	return &Agent{
		cfg:    cfg,
		sender: NewSender(cfg.ServerURL, cfg.RequestTimeout),
	}
}

// Run pushes reports until ctx is cancelled. The first report goes out
// immediately; failures are logged and retried on the next tick, never
// sooner.
func (a *Agent) Run(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.PushInterval)
	defer ticker.Stop()

	a.push(ctx)

	for {
		select {
		case <-ticker.C:
			a.push(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// push runs one collect-and-send cycle.
func (a *Agent) push(ctx context.Context) {
	report, err := collector.Collect(ctx, a.cfg.ProcessLimit)
	if err != nil {
		log.Printf("Collection failed: %v", err)
		return
	}

	if err := a.sender.Send(ctx, report); err != nil {
		log.Printf("Send failed: %v", err)
		return
	}

	log.Printf("Report sent for %s (%s)", report.Hostname, report.IP)
}
