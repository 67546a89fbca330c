package imagecheck

import (
	"github.com/ytget/garage/internal/model"
)

// Checker defines the interface for the image check service.
type Checker interface {
	CheckFileSize(path string) model.ImageStatus
	CheckJPEG(path string) model.ImageStatus
	Check(source string) *model.ImageCheck
}
