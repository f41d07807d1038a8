package monitor

import (
	"testing"

	systesting "github.com/rileyhilliard/sysmon/internal/sysinfo/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_CopiesProviderValues(t *testing.T) {
	p := systesting.NewFakeProvider()

	s := Build(p)

	assert.Equal(t, uint64(8589934592), s.TotalMemoryBytes)
	assert.Equal(t, uint64(4294967296), s.UsedMemoryBytes)
	assert.Equal(t, 8, s.CPUCount)
	require.NotNil(t, s.OSName)
	assert.Equal(t, "Ubuntu", *s.OSName)
	require.NotNil(t, s.OSVersion)
	assert.Equal(t, "22.04", *s.OSVersion)
	require.NotNil(t, s.KernelVersion)
	assert.Equal(t, "6.5.0-35-generic", *s.KernelVersion)
	require.NotNil(t, s.HostName)
	assert.Equal(t, "devbox", *s.HostName)
	assert.Equal(t, []string{"sda", "sdb"}, s.DiskNames)
}

func TestBuild_RefreshesMemoryBeforeReading(t *testing.T) {
	p := systesting.NewFakeProvider()
	p.RequireRefresh = true

	s := Build(p)

	require.NotEmpty(t, p.Calls)
	assert.Equal(t, "RefreshMemory", p.Calls[0])
	assert.Equal(t, uint64(8589934592), s.TotalMemoryBytes, "memory must be read after refresh")
	assert.Equal(t, uint64(4294967296), s.UsedMemoryBytes)
}

func TestBuild_AbsentIdentityStaysNil(t *testing.T) {
	p := systesting.NewFakeProvider()
	p.OS = nil
	p.Kernel = nil

	s := Build(p)

	assert.Nil(t, s.OSName)
	assert.Nil(t, s.KernelVersion)
	assert.NotNil(t, s.OSVersion)
	assert.NotNil(t, s.HostName)
}

func TestBuild_EmptyDisksIsEmptySlice(t *testing.T) {
	p := systesting.NewFakeProvider()
	p.Disks = nil

	s := Build(p)

	assert.NotNil(t, s.DiskNames)
	assert.Empty(t, s.DiskNames)
}

func TestBuild_NegativeCPUCountClampsToZero(t *testing.T) {
	p := systesting.NewFakeProvider()
	p.CPUs = -1

	assert.Equal(t, 0, Build(p).CPUCount)
}

func TestBuild_Idempotent(t *testing.T) {
	p := systesting.NewFakeProvider()

	first := Build(p)
	second := Build(p)

	assert.Equal(t, first, second)
}

func TestBuild_DoesNotAliasProviderDisks(t *testing.T) {
	p := systesting.NewFakeProvider()

	s := Build(p)
	p.Disks[0] = "nvme0n1"

	assert.Equal(t, "sda", s.DiskNames[0])
}

func TestBuild_EmptyStringIsPresent(t *testing.T) {
	p := systesting.NewFakeProvider()
	p.Hostname = systesting.Str("")

	s := Build(p)

	require.NotNil(t, s.HostName)
	assert.Equal(t, "", *s.HostName)
}
