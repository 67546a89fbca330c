package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ImageCheck records the outcome of checking one image file
type ImageCheck struct {
	ID        string
	Source    string      // path or file URL as supplied by the caller
	Path      string      // normalized filesystem path
	Status    ImageStatus // check result
	FileSize  int64       // file size in bytes, 0 if unknown
	LastError string      // error text when the file could not be read
	CheckedAt time.Time
}

// DisplayName returns the file name, falling back to the source string
func (c *ImageCheck) DisplayName() string {
	if c.Path != "" {
		// Support both / and \ separators regardless of host
		parts := strings.FieldsFunc(c.Path, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return c.Source
}

// Ext returns the lower-cased file extension including the dot
func (c *ImageCheck) Ext() string {
	return strings.ToLower(filepath.Ext(c.DisplayName()))
}

// FileSizeString returns the file size in human readable form, or a dash if unknown
func (c *ImageCheck) FileSizeString() string {
	return FormatFileSize(c.FileSize)
}

// FormatFileSize formats a byte count using binary units
func FormatFileSize(size int64) string {
	const unit = 1024
	if size <= 0 {
		return "—"
	}
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
