package platform

// Package platform contains OS/platform integration: host platform detection,
// file:// path normalization, image file existence checks, and OS open/reveal.
