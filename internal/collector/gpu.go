package collector

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fleetwatch/fleetwatch/models"
)

// collectGPUInfo fills the optional GPU fields from an nvidia-smi probe.
// When the tool is missing or fails, all four fields stay nil: absence on
// the wire is the "no GPU" value, never zero.
func collectGPUInfo(ctx context.Context, report *models.HostReport) {
	if _, err := exec.LookPath("nvidia-smi"); err != nil {
		return
	}

	out, err := exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=utilization.gpu,clocks.current.graphics,temperature.gpu,name",
		"--format=csv,noheader,nounits",
	).Output()
	if err != nil {
		return
	}

	// One row per GPU; report the first one.
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return
	}

	if usage, ok := parseFloatField(fields[0]); ok {
		report.GPUUsage = &usage
	}
	if freq, ok := parseFloatField(fields[1]); ok {
		report.GPUFrequency = &freq
	}
	if temp, ok := parseFloatField(fields[2]); ok {
		report.GPUTemperature = &temp
	}
	if model := strings.TrimSpace(fields[3]); model != "" {
		report.GPUModel = &model
	}
}

// parseFloatField parses a numeric nvidia-smi CSV field. Fields report
// "[N/A]" on unsupported hardware.
func parseFloatField(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "N/A") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
