package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/garage/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMaxImageFileSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if size := settings.GetMaxImageFileSize(); size != DefaultMaxImageFileSize {
		t.Errorf("Expected default max image size %d, got %d", DefaultMaxImageFileSize, size)
	}

	// Test setting custom value
	settings.SetMaxImageFileSize(2 * 1024 * 1024)
	if size := settings.GetMaxImageFileSize(); size != 2*1024*1024 {
		t.Errorf("Expected max image size %d, got %d", 2*1024*1024, size)
	}

	// Test boundary values
	settings.SetMaxImageFileSize(0)
	if settings.GetMaxImageFileSize() != MinMaxImageFileSize {
		t.Errorf("Max image size should be clamped to minimum %d", MinMaxImageFileSize)
	}

	settings.SetMaxImageFileSize(MaxMaxImageFileSize + 1)
	if settings.GetMaxImageFileSize() != MaxMaxImageFileSize {
		t.Errorf("Max image size should be clamped to maximum %d", MaxMaxImageFileSize)
	}
}

func TestConvertBackslashes(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetConvertBackslashes() != DefaultConvertBackslashes {
		t.Errorf("Expected default convert backslashes %v", DefaultConvertBackslashes)
	}

	settings.SetConvertBackslashes(false)
	if settings.GetConvertBackslashes() {
		t.Error("Expected convert backslashes to be disabled")
	}
}

func TestLastOpenDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := settings.GetLastOpenDirectory()
	if expected, err := platform.GetHomePicturesDir(); err == nil && dir != expected {
		t.Errorf("Expected default directory %s, got %s", expected, dir)
	}

	customDir := filepath.Join("custom", "images")
	settings.SetLastOpenDirectory(customDir)
	if got := settings.GetLastOpenDirectory(); got != customDir {
		t.Errorf("Expected last open directory %s, got %s", customDir, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ja")
	if lang := settings.GetLanguage(); lang != "ja" {
		t.Errorf("Expected language 'ja', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ja"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
