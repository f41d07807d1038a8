package sysinfo

import (
	"context"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// identityQueries fetch the displayed identity fields and nothing else.
// host.Info would also walk uptime, process counts, and virtualization on
// every tick.
type identityQueries struct {
	platform func(ctx context.Context) (platform, family, version string, err error)
	kernel   func(ctx context.Context) (string, error)
	hostname func() (string, error)
}

func gopsutilIdentity() identityQueries {
	return identityQueries{
		platform: host.PlatformInformationWithContext,
		kernel:   host.KernelVersionWithContext,
		hostname: os.Hostname,
	}
}

// HostSource opens providers backed by gopsutil for the local machine.
type HostSource struct {
	log      logger.Logger
	identity identityQueries
}

// NewHostSource creates a source for the local host. A nil logger discards output.
func NewHostSource(log logger.Logger) *HostSource {
	if log == nil {
		log = logger.Noop()
	}
	return &HostSource{log: log, identity: gopsutilIdentity()}
}

// Open returns a provider that queries live OS state. gopsutil keeps no
// handles open, so the only failure is a context that is already done.
func (s *HostSource) Open(ctx context.Context) (Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Couldn't open the system metrics provider",
			"The dashboard was shutting down when the sample started.")
	}
	return &hostProvider{ctx: ctx, log: s.log, identity: s.identity}, nil
}

// hostProvider caches the results of its own queries for the lifetime of one tick.
type hostProvider struct {
	ctx context.Context
	log logger.Logger

	vm *mem.VirtualMemoryStat

	identity identityQueries

	platform, platformVersion  string
	platformLoaded, platformOK bool
}

func (p *hostProvider) RefreshMemory() {
	vm, err := mem.VirtualMemoryWithContext(p.ctx)
	if err != nil {
		p.log.Debug("memory unavailable: %v", err)
		p.vm = nil
		return
	}
	p.vm = vm
	p.log.Debug("memory sampled: total=%s used=%s", humanize.IBytes(vm.Total), humanize.IBytes(vm.Used))
}

func (p *hostProvider) TotalMemory() uint64 {
	if p.vm == nil {
		return 0
	}
	return p.vm.Total
}

func (p *hostProvider) UsedMemory() uint64 {
	if p.vm == nil {
		return 0
	}
	return p.vm.Used
}

func (p *hostProvider) CPUCount() int {
	n, err := cpu.CountsWithContext(p.ctx, true)
	if err != nil {
		p.log.Debug("cpu count unavailable: %v", err)
		return 0
	}
	return n
}

func (p *hostProvider) OSName() (string, bool) {
	p.loadPlatform()
	// Platform is the distribution ("ubuntu", "darwin"); GOOS is the family
	// ("linux") for hosts gopsutil can't name more precisely.
	if p.platform != "" {
		return p.platform, true
	}
	if !p.platformOK {
		return "", false
	}
	return runtime.GOOS, true
}

func (p *hostProvider) OSVersion() (string, bool) {
	p.loadPlatform()
	return present(p.platformVersion)
}

func (p *hostProvider) KernelVersion() (string, bool) {
	v, err := p.identity.kernel(p.ctx)
	if err != nil {
		p.log.Debug("kernel version unavailable: %v", err)
		return "", false
	}
	return present(v)
}

func (p *hostProvider) HostName() (string, bool) {
	name, err := p.identity.hostname()
	if err != nil {
		p.log.Debug("host name unavailable: %v", err)
		return "", false
	}
	return present(name)
}

func (p *hostProvider) DiskNames() []string {
	parts, err := disk.PartitionsWithContext(p.ctx, false)
	if err != nil {
		p.log.Debug("disk list unavailable: %v", err)
	}
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.Device == "" {
			continue
		}
		names = append(names, part.Device)
	}
	return names
}

// loadPlatform queries the distribution once per provider, since OSName and
// OSVersion come from the same lookup. gopsutil may fill some fields
// alongside an error; whatever was filled is kept.
func (p *hostProvider) loadPlatform() {
	if p.platformLoaded {
		return
	}
	p.platformLoaded = true

	platform, _, version, err := p.identity.platform(p.ctx)
	if err != nil {
		p.log.Debug("platform info incomplete: %v", err)
	}
	p.platform, p.platformVersion = platform, version
	p.platformOK = err == nil
}

func present(s string) (string, bool) {
	return s, s != ""
}
