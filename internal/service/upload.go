package service

import (
	"fmt"
	"io"

	"regadmin/internal/errors"
)

// MaxUploadSize caps attachment uploads at 5 MB.
const MaxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Upload carries one incoming attachment. DetailIndex selects which content
// detail block receives the image; ignored for single-image resources.
type Upload struct {
	OriginalName string
	MimeType     string
	Encoding     string
	Size         int64
	Body         io.Reader
	DetailIndex  int
}

func validateUpload(u Upload) error {
	if !allowedImageTypes[u.MimeType] {
		return fmt.Errorf("%w: unsupported image type %q", errors.ErrValidation, u.MimeType)
	}
	if u.Size > MaxUploadSize {
		return fmt.Errorf("%w: file exceeds the 5MB limit", errors.ErrValidation)
	}
	return nil
}
