package commands

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fleetwatch/fleetwatch/internal/agent"
	"github.com/fleetwatch/fleetwatch/internal/version"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Start the reporting agent",
	Long: `Start the reporting agent on this host.

The agent collects a hardware/OS snapshot on every push interval and posts
it to the collector server. The first report is sent immediately.`,
	RunE: runAgent,
}

func runAgent(cmd *cobra.Command, args []string) error {
	log.Printf("Fleetwatch agent %s", version.Version)
	log.Printf("Collector: %s", cfg.Agent.ServerURL)
	log.Printf("Interval: %v", cfg.Agent.PushInterval)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	a := agent.New(&cfg.Agent)
	a.Run(ctx)

	log.Println("Agent stopped")
	return nil
}
