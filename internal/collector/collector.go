// Package collector builds host telemetry reports from the local machine.
//
// Measurements come from gopsutil; the optional GPU fields come from an
// nvidia-smi probe and stay absent when no GPU (or no driver tooling) is
// available. Individual probe failures degrade to zero values rather than
// failing the whole report, so a host behind a partial /proc or without
// sensors still reports.
package collector

import (
	"context"
	"net"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/fleetwatch/fleetwatch/models"
)

const bytesPerGigabyte = 1024 * 1024 * 1024

// Collect gathers a full host report for the local machine. processLimit
// caps the number of process names included (0 means unlimited).
func Collect(ctx context.Context, processLimit int) (*models.HostReport, error) {
	report := &models.HostReport{
		Disks:     []models.DiskInfo{},
		Processes: []string{},
	}

	collectSystemInfo(ctx, report)
	collectCPUInfo(ctx, report)
	collectMemoryInfo(ctx, report)
	collectDiskInfo(ctx, report)
	collectProcessInfo(ctx, report, processLimit)
	collectGPUInfo(ctx, report)

	report.IP = localIP()

	return report, nil
}

// collectSystemInfo gathers hostname, OS and uptime info
func collectSystemInfo(ctx context.Context, report *models.HostReport) {
	if hostname, err := os.Hostname(); err == nil {
		report.Hostname = hostname
	}

	if info, err := host.InfoWithContext(ctx); err == nil {
		report.Uptime = float64(info.Uptime)
		report.OSName = info.Platform
		report.OSVersion = info.PlatformVersion
		report.OSKernel = info.KernelVersion
		report.OSArchitecture = info.KernelArch
	}
}

// collectCPUInfo gathers CPU usage, frequency, model and temperature
func collectCPUInfo(ctx context.Context, report *models.HostReport) {
	if percent, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(percent) > 0 {
		report.CPUUsage = percent[0]
	}

	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		report.CPUModel = info[0].ModelName
		report.CPUFrequency = info[0].Mhz
	}

	report.CPUTemperature = cpuTemperature(ctx)
}

// collectMemoryInfo gathers memory usage in gigabytes
func collectMemoryInfo(ctx context.Context, report *models.HostReport) {
	if memInfo, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		report.MemoryUsage = gigabytes(memInfo.Used)
		report.MemoryMax = gigabytes(memInfo.Total)
	}
}

// collectDiskInfo gathers per-partition usage, physical devices only
func collectDiskInfo(ctx context.Context, report *models.HostReport) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return
	}

	for _, part := range partitions {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			continue
		}
		report.Disks = append(report.Disks, models.DiskInfo{
			Path:  part.Mountpoint,
			Usage: gigabytes(usage.Used),
			Size:  gigabytes(usage.Total),
		})
	}
}

// collectProcessInfo gathers running process names
func collectProcessInfo(ctx context.Context, report *models.HostReport, limit int) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		report.Processes = append(report.Processes, name)
		if limit > 0 && len(report.Processes) >= limit {
			break
		}
	}
}

// cpuTemperature reads the first CPU-ish sensor. Sensor naming varies by
// platform, so fall back to the first sensor of any kind.
func cpuTemperature(ctx context.Context) float64 {
	sensors, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil || len(sensors) == 0 {
		return 0
	}

	for _, sensor := range sensors {
		key := strings.ToLower(sensor.SensorKey)
		if strings.Contains(key, "coretemp") ||
			strings.Contains(key, "k10temp") ||
			strings.Contains(key, "cpu") {
			return sensor.Temperature
		}
	}

	return sensors[0].Temperature
}

// localIP determines the host's outbound IP address. The dial never sends a
// packet; UDP connect only resolves the local routing decision.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "127.0.0.1"
}

func gigabytes(b uint64) float64 {
	return float64(b) / bytesPerGigabyte
}
