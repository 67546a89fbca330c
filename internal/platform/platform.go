package platform

import (
	"runtime"
	"strings"
)

// Platform identifies the host operating system using runtime.GOOS names.
type Platform string

// Operating system constants
const (
	Windows Platform = "windows"
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"

	// Default is used when the host platform cannot be determined
	Default = Windows
)

// win32Alias is the Node.js name for Windows, still found in older settings files
const win32Alias = "win32"

// Detect returns the platform the process is running on
func Detect() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS converts an OS name to a Platform. Empty input yields Default.
func FromGOOS(goos string) Platform {
	name := strings.ToLower(strings.TrimSpace(goos))
	switch name {
	case "":
		return Default
	case win32Alias:
		return Windows
	default:
		return Platform(name)
	}
}

// String returns the OS name
func (p Platform) String() string {
	return string(p)
}

// IsWindows reports whether p is Windows
func (p Platform) IsWindows() bool {
	return p == Windows
}

// IsDarwin reports whether p is macOS
func (p Platform) IsDarwin() bool {
	return p == Darwin
}

// IsWindows reports whether the host is Windows
func IsWindows() bool {
	return Detect().IsWindows()
}

// IsDarwin reports whether the host is macOS
func IsDarwin() bool {
	return Detect().IsDarwin()
}
