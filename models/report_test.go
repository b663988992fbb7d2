package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostReportRoundTrip(t *testing.T) {
	gpuUsage := 45.5
	gpuModel := "RTX 4090"

	original := HostReport{
		Hostname:       "gpu-host",
		IP:             "192.168.1.20",
		Uptime:         3600.5,
		CPUUsage:       12.5,
		CPUFrequency:   2400,
		CPUTemperature: 48,
		GPUUsage:       &gpuUsage,
		GPUModel:       &gpuModel,
		MemoryUsage:    8.2,
		MemoryMax:      32,
		Disks:          []DiskInfo{{Path: "/", Usage: 40.1, Size: 256}},
		Processes:      []string{"systemd", "sshd"},
		OSName:         "Ubuntu",
		OSVersion:      "24.04",
		OSKernel:       "6.8.0",
		OSArchitecture: "x86_64",
		CPUModel:       "AMD EPYC 7543",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded HostReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)

	// Present optional fields survive the trip as values, not zeros.
	require.NotNil(t, decoded.GPUUsage)
	assert.Equal(t, 45.5, *decoded.GPUUsage)
	require.NotNil(t, decoded.GPUModel)
	assert.Equal(t, "RTX 4090", *decoded.GPUModel)

	// Absent optional fields stay absent.
	assert.Nil(t, decoded.GPUFrequency)
	assert.Nil(t, decoded.GPUTemperature)
}

func TestHostReportOmitsAbsentGPUFields(t *testing.T) {
	report := HostReport{
		Hostname: "no-gpu-host",
		IP:       "192.168.1.21",
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var encoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &encoded))

	// Absence is encoded as omission, never as null or zero.
	assert.NotContains(t, encoded, "gpu_usage")
	assert.NotContains(t, encoded, "gpu_frequency")
	assert.NotContains(t, encoded, "gpu_temperature")
	assert.NotContains(t, encoded, "gpu_model")

	// Required fields are always encoded, zero or not.
	assert.Contains(t, encoded, "cpu_usage")
	assert.Contains(t, encoded, "memory_max")
}

func TestHostReportDecodesZeroDistinctFromAbsent(t *testing.T) {
	var withZero, withAbsent HostReport

	require.NoError(t, json.Unmarshal([]byte(`{"ip":"10.0.0.1","gpu_usage":0}`), &withZero))
	require.NoError(t, json.Unmarshal([]byte(`{"ip":"10.0.0.1"}`), &withAbsent))

	require.NotNil(t, withZero.GPUUsage)
	assert.Equal(t, 0.0, *withZero.GPUUsage)
	assert.Nil(t, withAbsent.GPUUsage)
}
