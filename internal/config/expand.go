package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	// Handle ~/path
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unchanged if we can't get home
		}
		return filepath.Join(home, path[2:])
	}

	// Handle standalone ~
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// Expand replaces variables in a string with their values.
// Supported variables:
//   - ${USER}     - current username
//   - ${HOME}     - user's home directory
//   - ${HOSTNAME} - this machine's host name
//
// Note: Does NOT expand ~ - use ExpandTilde for that.
func Expand(s string) string {
	if s == "" {
		return s
	}

	// Get values lazily to avoid unnecessary work
	result := s

	if strings.Contains(result, "${USER}") {
		result = strings.ReplaceAll(result, "${USER}", getUser())
	}

	if strings.Contains(result, "${HOME}") {
		result = strings.ReplaceAll(result, "${HOME}", getHome())
	}

	if strings.Contains(result, "${HOSTNAME}") {
		result = strings.ReplaceAll(result, "${HOSTNAME}", getHostname())
	}

	return result
}

// ExpandPath applies variable and tilde expansion to a local path.
func ExpandPath(path string) string {
	return ExpandTilde(Expand(path))
}

// getUser returns the current username for ${USER} expansion.
func getUser() string {
	// Try USER env var first (most common)
	if name := os.Getenv("USER"); name != "" {
		return name
	}

	// Try LOGNAME (POSIX standard)
	if name := os.Getenv("LOGNAME"); name != "" {
		return name
	}

	// Try USERNAME (Windows)
	if name := os.Getenv("USERNAME"); name != "" {
		return name
	}

	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "user"
}

// getHome returns the home directory for ${HOME} expansion.
func getHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}

	// Fallback to HOME env var
	if home := os.Getenv("HOME"); home != "" {
		return home
	}

	return "~"
}

func getHostname() string {
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "localhost"
}
