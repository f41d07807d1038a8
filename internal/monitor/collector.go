package monitor

import "github.com/rileyhilliard/sysmon/internal/sysinfo"

// Build samples a provider into a Snapshot.
//
// Memory is refreshed before it is read. Optional values stay nil when the
// provider reports them unavailable, and the disk list is copied so the
// snapshot never aliases provider state.
func Build(p sysinfo.Provider) Snapshot {
	p.RefreshMemory()

	s := Snapshot{
		TotalMemoryBytes: p.TotalMemory(),
		UsedMemoryBytes:  p.UsedMemory(),
		CPUCount:         p.CPUCount(),
		OSName:           optional(p.OSName()),
		OSVersion:        optional(p.OSVersion()),
		KernelVersion:    optional(p.KernelVersion()),
		HostName:         optional(p.HostName()),
	}
	if s.CPUCount < 0 {
		s.CPUCount = 0
	}

	disks := p.DiskNames()
	s.DiskNames = make([]string, len(disks))
	copy(s.DiskNames, disks)

	return s
}

func optional(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}
