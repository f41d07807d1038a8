package monitor

// BytesPerGB converts raw byte counters into the "GB" shown on the dashboard.
// Providers report bytes, so this is 1024³.
const BytesPerGB = 1024 * 1024 * 1024

// Snapshot holds the metrics sampled during one tick.
//
// Values are kept exactly as the provider reported them: memory in bytes and
// identity fields nil when unavailable. Display sentinels are applied by Render.
type Snapshot struct {
	TotalMemoryBytes uint64 `json:"total_memory_bytes" yaml:"total_memory_bytes"`
	UsedMemoryBytes  uint64 `json:"used_memory_bytes" yaml:"used_memory_bytes"`

	OSName        *string `json:"os_name,omitempty" yaml:"os_name,omitempty"`
	OSVersion     *string `json:"os_version,omitempty" yaml:"os_version,omitempty"`
	KernelVersion *string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	HostName      *string `json:"host_name,omitempty" yaml:"host_name,omitempty"`

	CPUCount  int      `json:"cpu_count" yaml:"cpu_count"`
	DiskNames []string `json:"disk_names" yaml:"disk_names"`
}

// BytesToGB converts a byte count to GB as a float.
func BytesToGB(bytes uint64) float64 {
	return float64(bytes) / BytesPerGB
}
