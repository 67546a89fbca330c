package model

import "strconv"

// ImageStatus is the result of an image file check. The numeric values are
// part of the device contract and must not change.
type ImageStatus int

const (
	// ImageStatusFileAccess means the file could not be opened or read
	ImageStatusFileAccess ImageStatus = 0

	// ImageStatusOK means the file is acceptable
	ImageStatusOK ImageStatus = 1

	// ImageStatusJPEG2000 means the file is JPEG2000, which the device cannot decode
	ImageStatusJPEG2000 ImageStatus = -1

	// ImageStatusJPEGLossless means the file is a lossless JPEG
	ImageStatusJPEGLossless ImageStatus = -2

	// ImageStatusNotJPEG means the file does not start with the JPEG SOI marker,
	// or is not an image type the device accepts at all
	ImageStatusNotJPEG ImageStatus = -3

	// ImageStatusSizeTooLarge means the file is at or above the size limit
	ImageStatusSizeTooLarge ImageStatus = -10
)

// String returns the constant name of the status
func (s ImageStatus) String() string {
	switch s {
	case ImageStatusFileAccess:
		return "FileAccess"
	case ImageStatusOK:
		return "OK"
	case ImageStatusJPEG2000:
		return "JPEG2000"
	case ImageStatusJPEGLossless:
		return "JPEGLossless"
	case ImageStatusNotJPEG:
		return "NotJPEG"
	case ImageStatusSizeTooLarge:
		return "SizeTooLarge"
	default:
		return "ImageStatus(" + strconv.Itoa(int(s)) + ")"
	}
}

// Code returns the numeric status code
func (s ImageStatus) Code() int {
	return int(s)
}

// IsOK returns true if the image can be used as-is
func (s ImageStatus) IsOK() bool {
	return s == ImageStatusOK
}

// Description returns an English sentence explaining the status
func (s ImageStatus) Description() string {
	switch s {
	case ImageStatusFileAccess:
		return "The file could not be read"
	case ImageStatusOK:
		return "The image can be used"
	case ImageStatusJPEG2000:
		return "JPEG 2000 images are not supported"
	case ImageStatusJPEGLossless:
		return "Lossless JPEG images are not supported"
	case ImageStatusNotJPEG:
		return "The file is not a JPEG image"
	case ImageStatusSizeTooLarge:
		return "The image file is too large"
	default:
		return "Unknown image status"
	}
}
