package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input  string
		expect string
	}{
		{"", ""},
		{"~", home},
		{"~/logs/sysmon.log", filepath.Join(home, "logs/sysmon.log")},
		{"/var/log/sysmon.log", "/var/log/sysmon.log"},
		{"relative/~/path", "relative/~/path"},
		{"~other/file", "~other/file"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, ExpandTilde(tt.input))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("USER", "alice")
	host, err := os.Hostname()
	require.NoError(t, err)

	assert.Equal(t, "", Expand(""))
	assert.Equal(t, "/tmp/alice.log", Expand("/tmp/${USER}.log"))
	assert.Equal(t, "/tmp/"+host+".log", Expand("/tmp/${HOSTNAME}.log"))
	assert.Equal(t, "/tmp/$HOME.log", Expand("/tmp/$HOME.log"), "only braced variables expand")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "sysmon.log"), ExpandPath("${HOME}/sysmon.log"))
	assert.Equal(t, filepath.Join(home, "sysmon.log"), ExpandPath("~/sysmon.log"))
}
