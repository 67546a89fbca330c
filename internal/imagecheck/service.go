package imagecheck

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ytget/garage/internal/model"
	"github.com/ytget/garage/internal/platform"
)

// JPEG header constants
const (
	HeaderSize = 8

	markerPrefix   = 0xFF
	soiMarker      = 0xD8
	losslessMarker = 0xEE
	jpeg2000Byte   = 0x00
)

// CheckIDPrefix prefixes generated check IDs
const CheckIDPrefix = "check-"

// File extensions
const (
	ExtJPG  = ".jpg"
	ExtJPEG = ".jpeg"
	ExtPNG  = ".png"
)

// SupportedExtensions lists the image types the device accepts
var SupportedExtensions = []string{ExtJPG, ExtJPEG, ExtPNG}

// Options configures a Service
type Options struct {
	// MaxFileSize is the exclusive upper bound for image files, in bytes
	MaxFileSize int64

	// Platform selects the file URL prefix stripped by Check
	Platform platform.Platform

	// ConvertBackslashes turns \ into / when normalizing sources in Check
	ConvertBackslashes bool

	// Logger receives check failures; log.Default() when nil
	Logger *log.Logger
}

// Service runs image checks against the local filesystem
type Service struct {
	maxFileSize        int64
	platform           platform.Platform
	convertBackslashes bool
	logger             *log.Logger
}

// NewService creates a new image check service
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	p := opts.Platform
	if p == "" {
		p = platform.Detect()
	}

	return &Service{
		maxFileSize:        opts.MaxFileSize,
		platform:           p,
		convertBackslashes: opts.ConvertBackslashes,
		logger:             logger,
	}
}

// CheckFileSize returns ImageStatusSizeTooLarge if the file is at or above the
// size limit, ImageStatusFileAccess if it cannot be opened, and ImageStatusOK otherwise.
func (s *Service) CheckFileSize(path string) model.ImageStatus {
	status, _, err := s.checkFileSize(path)
	if err != nil {
		s.logger.Printf("CheckFileSize: %v", err)
	}
	return status
}

func (s *Service) checkFileSize(path string) (model.ImageStatus, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ImageStatusFileAccess, 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return model.ImageStatusFileAccess, 0, fmt.Errorf("stat %s: %w", path, err)
	}

	size := info.Size()
	if size >= s.maxFileSize {
		return model.ImageStatusSizeTooLarge, size, nil
	}
	return model.ImageStatusOK, size, nil
}

// CheckJPEG reads the first HeaderSize bytes of path and classifies them with
// ClassifyJPEGHeader. Files that cannot be opened yield ImageStatusFileAccess.
// So do files shorter than the header, even when their first bytes look like
// a valid SOI marker: a partial header is never classified.
func (s *Service) CheckJPEG(path string) model.ImageStatus {
	status, err := s.checkJPEG(path)
	if err != nil {
		s.logger.Printf("CheckJPEG: %v", err)
	}
	return status
}

func (s *Service) checkJPEG(path string) (model.ImageStatus, error) {
	header, err := readHeader(path)
	if err != nil {
		return model.ImageStatusFileAccess, err
	}
	return ClassifyJPEGHeader(header), nil
}

func readHeader(path string) ([HeaderSize]byte, error) {
	var header [HeaderSize]byte

	f, err := os.Open(path)
	if err != nil {
		return header, err
	}
	defer f.Close()

	if _, err := io.ReadFull(f, header[:]); err != nil {
		return header, fmt.Errorf("read header of %s: %w", path, err)
	}
	return header, nil
}

// ClassifyJPEGHeader inspects the leading bytes of a file believed to be a JPEG.
// It is a heuristic, not a parser: JPEG2000 codestreams start with 00 00, a
// JPEG must start with the SOI marker FF D8, and the segment marker after SOI
// is FF E0 (JFIF) or FF E1 (Exif) for baseline files while FF EE marks lossless.
func ClassifyJPEGHeader(header [HeaderSize]byte) model.ImageStatus {
	if header[0] == jpeg2000Byte && header[1] == jpeg2000Byte {
		return model.ImageStatusJPEG2000
	}
	if header[0] != markerPrefix || header[1] != soiMarker {
		return model.ImageStatusNotJPEG
	}
	if header[3] == losslessMarker {
		return model.ImageStatusJPEGLossless
	}
	return model.ImageStatusOK
}

// Check normalizes source (a path or file URL) and runs every check that
// applies to it. Files without a supported extension are rejected as
// ImageStatusNotJPEG. JPEG files are sniffed first; any other result than
// ImageStatusOK from the header check is final.
func (s *Service) Check(source string) *model.ImageCheck {
	path, err := s.platform.NormalizePath(source, s.convertBackslashes)
	if err != nil {
		s.logger.Printf("Check: keeping undecoded path %q: %v", source, err)
	}
	check := &model.ImageCheck{
		ID:        generateCheckID(),
		Source:    source,
		Path:      path,
		CheckedAt: time.Now(),
	}

	if !platform.ExistsFile(path) {
		check.Status = model.ImageStatusFileAccess
		check.LastError = fmt.Sprintf("file does not exist: %s", path)
		s.logger.Printf("Check: %s", check.LastError)
		return check
	}

	if !IsSupportedImage(path) {
		check.Status = model.ImageStatusNotJPEG
		check.LastError = fmt.Sprintf("unsupported image type: %s", path)
		s.logger.Printf("Check: %s", check.LastError)
		return check
	}

	if IsJPEG(path) {
		status, err := s.checkJPEG(path)
		if err != nil {
			s.logger.Printf("CheckJPEG: %v", err)
			check.LastError = err.Error()
		}
		if !status.IsOK() {
			check.Status = status
			return check
		}
	}

	status, size, err := s.checkFileSize(path)
	if err != nil {
		s.logger.Printf("CheckFileSize: %v", err)
		check.LastError = err.Error()
	}
	check.Status = status
	check.FileSize = size
	return check
}

// IsJPEG reports whether path has a JPEG file extension
func IsJPEG(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ExtJPG || ext == ExtJPEG
}

// IsSupportedImage reports whether path has an extension the device accepts
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// generateCheckID generates a time-ordered unique ID using UUID v7
func generateCheckID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(CheckIDPrefix+"%d", time.Now().UnixNano())
	}
	return CheckIDPrefix + id.String()
}
