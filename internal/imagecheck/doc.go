package imagecheck

// Package imagecheck decides whether an image file can be sent to the device.
// It sniffs the first bytes of JPEG files for unsupported variants and enforces
// the maximum image file size. Every check opens the file once, reports its
// result as a model.ImageStatus, and never returns an error to the caller.
