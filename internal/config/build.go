package config

import (
	"strings"

	"github.com/ytget/garage/internal/platform"
)

// Edition names accepted by ParseEdition
const (
	EditionConsumer = "consumer"
	EditionBusiness = "business"

	editionBusinessShort = "bz"
)

// Build holds values fixed for the lifetime of the process: the host platform
// and the product edition. It is created once at startup and passed to the
// components that branch on it.
type Build struct {
	Platform platform.Platform
	Business bool
}

// NewBuild creates a Build from an OS name and an edition name. Unknown
// editions select the consumer build.
func NewBuild(goos, edition string) Build {
	return Build{
		Platform: platform.FromGOOS(goos),
		Business: ParseEdition(edition),
	}
}

// ParseEdition reports whether edition names the business build
func ParseEdition(edition string) bool {
	switch strings.ToLower(strings.TrimSpace(edition)) {
	case EditionBusiness, editionBusinessShort:
		return true
	default:
		return false
	}
}

// IsWindows reports whether the build runs on Windows
func (b Build) IsWindows() bool {
	return b.Platform.IsWindows()
}

// IsDarwin reports whether the build runs on macOS
func (b Build) IsDarwin() bool {
	return b.Platform.IsDarwin()
}

// IsBz reports whether this is the business edition
func (b Build) IsBz() bool {
	return b.Business
}

// EditionName returns the edition name
func (b Build) EditionName() string {
	if b.Business {
		return EditionBusiness
	}
	return EditionConsumer
}
