package platform

import (
	"log"
	"net/url"
	"strings"
)

// File URL prefixes removed by AppropriatePath
const (
	// On macOS the leading "/" is kept so the result stays absolute
	FileURLPrefixDarwin = "file://"
	FileURLPrefix       = "file:///"
)

// AppropriatePath normalizes path for the host platform. See Platform.AppropriatePath.
func AppropriatePath(path string, convertBackslashes bool) string {
	return Detect().AppropriatePath(path, convertBackslashes)
}

// AppropriatePath turns a file URL, as delivered by drag-and-drop or file
// dialogs, into a plain file path. A malformed percent-escape is logged and
// the path is used undecoded. See NormalizePath.
func (p Platform) AppropriatePath(path string, convertBackslashes bool) string {
	normalized, err := p.NormalizePath(path, convertBackslashes)
	if err != nil {
		log.Printf("AppropriatePath: keeping undecoded path %q: %v", path, err)
	}
	return normalized
}

// NormalizePath percent-decodes the whole string, strips the file:// prefix,
// then turns backslashes into forward slashes when convertBackslashes is set.
// The result is not checked against the filesystem. A decode error is
// returned together with the normalized undecoded input so callers can log
// it where they see fit.
func (p Platform) NormalizePath(path string, convertBackslashes bool) (string, error) {
	// PathUnescape keeps '+' as-is, like decodeURIComponent
	decoded, err := url.PathUnescape(path)
	if err == nil {
		path = decoded
	}

	prefix := FileURLPrefix
	if p.IsDarwin() {
		prefix = FileURLPrefixDarwin
	}
	path = strings.TrimPrefix(path, prefix)

	if convertBackslashes {
		path = strings.ReplaceAll(path, `\`, "/")
	}

	return path, err
}
