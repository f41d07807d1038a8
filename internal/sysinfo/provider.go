// Package sysinfo reads point-in-time host metrics from the operating system.
//
// A Provider is opened once per refresh tick and discarded afterwards. Values
// that cannot be read are reported as zero, absent, or empty and are never
// errors; only failing to open a provider at all is fatal.
package sysinfo

import "context"

// Provider is a point-in-time view of host metrics.
//
// Memory counters are in bytes. RefreshMemory must be called before
// TotalMemory and UsedMemory return meaningful values on the same instance.
type Provider interface {
	RefreshMemory()
	TotalMemory() uint64
	UsedMemory() uint64

	// CPUCount returns the number of logical processors, or 0 when unknown.
	CPUCount() int

	// Identity fields report ok=false when the platform doesn't expose them.
	OSName() (string, bool)
	OSVersion() (string, bool)
	KernelVersion() (string, bool)
	HostName() (string, bool)

	// DiskNames returns one entry per attached disk or volume in platform order.
	DiskNames() []string
}

// Source opens providers. A fresh provider is opened for every tick.
type Source interface {
	Open(ctx context.Context) (Provider, error)
}
