// Package testing provides test doubles for the sysinfo package.
package testing

import (
	"context"

	"github.com/rileyhilliard/sysmon/internal/sysinfo"
)

// FakeProvider returns fixed readings and records the order of calls.
// Nil identity pointers are reported as unavailable.
type FakeProvider struct {
	Total    uint64
	Used     uint64
	CPUs     int
	OS       *string
	Version  *string
	Kernel   *string
	Hostname *string
	Disks    []string

	// RequireRefresh makes memory reads return 0 until RefreshMemory is called,
	// like providers that must prime their counters first.
	RequireRefresh bool

	Calls     []string
	refreshed bool
}

// Str returns a pointer to s, for filling identity fields.
func Str(s string) *string {
	return &s
}

// NewFakeProvider returns a provider with every value populated.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Total:    8589934592,
		Used:     4294967296,
		CPUs:     8,
		OS:       Str("Ubuntu"),
		Version:  Str("22.04"),
		Kernel:   Str("6.5.0-35-generic"),
		Hostname: Str("devbox"),
		Disks:    []string{"sda", "sdb"},
	}
}

func (p *FakeProvider) RefreshMemory() {
	p.Calls = append(p.Calls, "RefreshMemory")
	p.refreshed = true
}

func (p *FakeProvider) TotalMemory() uint64 {
	p.Calls = append(p.Calls, "TotalMemory")
	if p.RequireRefresh && !p.refreshed {
		return 0
	}
	return p.Total
}

func (p *FakeProvider) UsedMemory() uint64 {
	p.Calls = append(p.Calls, "UsedMemory")
	if p.RequireRefresh && !p.refreshed {
		return 0
	}
	return p.Used
}

func (p *FakeProvider) CPUCount() int {
	p.Calls = append(p.Calls, "CPUCount")
	return p.CPUs
}

func (p *FakeProvider) OSName() (string, bool) {
	p.Calls = append(p.Calls, "OSName")
	return deref(p.OS)
}

func (p *FakeProvider) OSVersion() (string, bool) {
	p.Calls = append(p.Calls, "OSVersion")
	return deref(p.Version)
}

func (p *FakeProvider) KernelVersion() (string, bool) {
	p.Calls = append(p.Calls, "KernelVersion")
	return deref(p.Kernel)
}

func (p *FakeProvider) HostName() (string, bool) {
	p.Calls = append(p.Calls, "HostName")
	return deref(p.Hostname)
}

func (p *FakeProvider) DiskNames() []string {
	p.Calls = append(p.Calls, "DiskNames")
	out := make([]string, len(p.Disks))
	copy(out, p.Disks)
	return out
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// FakeSource hands out the same provider on every Open.
type FakeSource struct {
	Provider sysinfo.Provider
	OpenErr  error

	// OnOpen runs before each Open returns; tests use it to inject panics
	// or mutate the provider between ticks.
	OnOpen func(n int)

	Opens int
}

// Open returns the configured provider or error.
func (s *FakeSource) Open(ctx context.Context) (sysinfo.Provider, error) {
	s.Opens++
	if s.OnOpen != nil {
		s.OnOpen(s.Opens)
	}
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return s.Provider, nil
}
