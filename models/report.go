package models

// DiskInfo describes utilization of a single mounted filesystem as reported
// by the host. Order of entries in a report is preserved as received.
type DiskInfo struct {
	// Path is the mount point (e.g. "/", "/var")
	Path string `json:"path"`

	// Usage is the used space, in the reporting host's unit (gigabytes)
	Usage float64 `json:"usage"`

	// Size is the total size of the filesystem
	Size float64 `json:"size"`
}

// HostReport is one host's self-reported hardware/OS snapshot at a point in
// time. A report is immutable once decoded: the registry replaces whole
// values and never mutates fields in place.
//
// The GPU fields are optional. A host without a GPU (or one that did not
// probe it) omits them entirely from the JSON payload; on decode they stay
// nil, which is distinct from a zero measurement.
//
// Example JSON representation:
//
//	{
//	  "hostname": "web-01",
//	  "ip": "192.168.1.10",
//	  "uptime": 86400.0,
//	  "cpu_usage": 12.5,
//	  "cpu_frequency": 2400.0,
//	  "cpu_temperature": 48.0,
//	  "memory_usage": 4.2,
//	  "memory_max": 16.0,
//	  "disks": [{"path": "/", "usage": 40.1, "size": 256.0}],
//	  "processes": ["systemd", "sshd"],
//	  "os_name": "Ubuntu",
//	  "os_version": "24.04",
//	  "os_kernel": "6.8.0",
//	  "os_architecture": "x86_64",
//	  "cpu_model": "AMD EPYC 7543"
//	}
type HostReport struct {
	// Hostname is the self-reported host name
	Hostname string `json:"hostname"`

	// IP is the host's address and the identity key in the registry.
	// It is stored verbatim: no normalization, no format validation.
	IP string `json:"ip" validate:"required"`

	// Uptime is seconds since boot
	Uptime float64 `json:"uptime"`

	// CPUUsage is the aggregate CPU utilization percentage
	CPUUsage float64 `json:"cpu_usage"`

	// CPUFrequency is the current CPU clock in MHz
	CPUFrequency float64 `json:"cpu_frequency"`

	// CPUTemperature is the CPU package temperature in Celsius
	CPUTemperature float64 `json:"cpu_temperature"`

	// GPUUsage is the GPU utilization percentage, if a GPU was probed
	GPUUsage *float64 `json:"gpu_usage,omitempty"`

	// GPUFrequency is the GPU core clock in MHz, if a GPU was probed
	GPUFrequency *float64 `json:"gpu_frequency,omitempty"`

	// GPUTemperature is the GPU temperature in Celsius, if a GPU was probed
	GPUTemperature *float64 `json:"gpu_temperature,omitempty"`

	// MemoryUsage is the used memory in gigabytes
	MemoryUsage float64 `json:"memory_usage"`

	// MemoryMax is the total memory in gigabytes
	MemoryMax float64 `json:"memory_max"`

	// Disks lists per-filesystem utilization, zero or more entries
	Disks []DiskInfo `json:"disks"`

	// Processes lists running process names, order as collected
	Processes []string `json:"processes"`

	// OSName is the operating system name (e.g. "Ubuntu")
	OSName string `json:"os_name"`

	// OSVersion is the operating system release version
	OSVersion string `json:"os_version"`

	// OSKernel is the kernel version string
	OSKernel string `json:"os_kernel"`

	// OSArchitecture is the machine architecture (e.g. "x86_64")
	OSArchitecture string `json:"os_architecture"`

	// CPUModel is the CPU model name
	CPUModel string `json:"cpu_model"`

	// GPUModel is the GPU model name, if a GPU was probed
	GPUModel *string `json:"gpu_model,omitempty"`
}
