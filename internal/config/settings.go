package config

import (
	"fyne.io/fyne/v2"
	"github.com/ytget/garage/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyMaxImageFileSize   = "max_image_file_size"
	KeyConvertBackslashes = "convert_backslashes"
	KeyLastOpenDirectory  = "last_open_directory"
	KeyLanguage           = "app_language"
)

// Image size limits in bytes
const (
	DefaultMaxImageFileSize = 5 * 1024 * 1024
	MinMaxImageFileSize     = 1024
	MaxMaxImageFileSize     = 100 * 1024 * 1024
)

// Default values
const (
	DefaultConvertBackslashes = true
	DefaultLanguage           = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMaxImageFileSize returns the largest accepted image size plus one byte:
// files at or above this size are rejected
func (s *Settings) GetMaxImageFileSize() int64 {
	value := s.app.Preferences().Int(KeyMaxImageFileSize)
	if value <= 0 {
		s.SetMaxImageFileSize(DefaultMaxImageFileSize)
		return DefaultMaxImageFileSize
	}
	return int64(value)
}

// SetMaxImageFileSize sets the image size limit, clamped to the allowed range
func (s *Settings) SetMaxImageFileSize(size int64) {
	s.app.Preferences().SetInt(KeyMaxImageFileSize, int(ClampMaxImageFileSize(size)))
}

// ClampMaxImageFileSize limits size to [MinMaxImageFileSize, MaxMaxImageFileSize]
func ClampMaxImageFileSize(size int64) int64 {
	if size < MinMaxImageFileSize {
		return MinMaxImageFileSize
	}
	if size > MaxMaxImageFileSize {
		return MaxMaxImageFileSize
	}
	return size
}

// GetConvertBackslashes returns whether dropped paths get \ converted to /
func (s *Settings) GetConvertBackslashes() bool {
	return s.app.Preferences().BoolWithFallback(KeyConvertBackslashes, DefaultConvertBackslashes)
}

// SetConvertBackslashes sets whether dropped paths get \ converted to /
func (s *Settings) SetConvertBackslashes(convert bool) {
	s.app.Preferences().SetBool(KeyConvertBackslashes, convert)
}

// GetLastOpenDirectory returns the folder the open dialog starts in
func (s *Settings) GetLastOpenDirectory() string {
	dir := s.app.Preferences().String(KeyLastOpenDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastOpenDirectory remembers the folder of the last opened image
func (s *Settings) SetLastOpenDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastOpenDirectory, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ja":     "日本語",
	}
}
