package config

import (
	"testing"

	"github.com/ytget/garage/internal/platform"
)

func TestParseEdition(t *testing.T) {
	tests := []struct {
		edition  string
		expected bool
	}{
		{"", false},
		{"consumer", false},
		{"business", true},
		{"Business", true},
		{" bz ", true},
		{"enterprise", false},
	}

	for _, test := range tests {
		if result := ParseEdition(test.edition); result != test.expected {
			t.Errorf("ParseEdition(%q) = %v, expected %v", test.edition, result, test.expected)
		}
	}
}

func TestNewBuild(t *testing.T) {
	tests := []struct {
		goos      string
		edition   string
		isWindows bool
		isDarwin  bool
		isBz      bool
		name      string
	}{
		{"windows", "", true, false, false, EditionConsumer},
		{"win32", "business", true, false, true, EditionBusiness},
		{"darwin", "bz", false, true, true, EditionBusiness},
		{"linux", "consumer", false, false, false, EditionConsumer},
		{"", "", true, false, false, EditionConsumer},
	}

	for _, test := range tests {
		build := NewBuild(test.goos, test.edition)

		if build.IsWindows() != test.isWindows {
			t.Errorf("NewBuild(%q).IsWindows() = %v, expected %v", test.goos, build.IsWindows(), test.isWindows)
		}
		if build.IsDarwin() != test.isDarwin {
			t.Errorf("NewBuild(%q).IsDarwin() = %v, expected %v", test.goos, build.IsDarwin(), test.isDarwin)
		}
		if build.IsWindows() && build.IsDarwin() {
			t.Errorf("NewBuild(%q) is both Windows and Darwin", test.goos)
		}
		if build.IsBz() != test.isBz {
			t.Errorf("NewBuild(%q, %q).IsBz() = %v, expected %v", test.goos, test.edition, build.IsBz(), test.isBz)
		}
		if build.EditionName() != test.name {
			t.Errorf("NewBuild(%q, %q).EditionName() = %s, expected %s", test.goos, test.edition, build.EditionName(), test.name)
		}
	}
}

func TestBuild_ZeroValue(t *testing.T) {
	var build Build
	if build.IsBz() {
		t.Error("Zero Build should be the consumer edition")
	}
	if build.Platform != platform.Platform("") {
		t.Errorf("Zero Build platform should be empty, got %q", build.Platform)
	}
}
