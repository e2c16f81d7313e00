package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// MaxImageSize is the upload cap for vehicle images.
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrUnsupportedType = errors.New("unsupported file type, only images (JPEG, PNG, GIF, WebP) are allowed")
	ErrTooLarge        = errors.New("file too large, maximum size is 5MB")
)

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Upload is an image payload handed to an ImageStore.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// ImageStore persists vehicle image files. Save returns the stored filename,
// which is the opaque handle kept in the database. Delete of a missing file
// must succeed so cleanup stays idempotent. URL translates a handle to a
// public path at the response boundary.
type ImageStore interface {
	Save(ctx context.Context, up Upload) (string, error)
	Delete(ctx context.Context, filename string) error
	URL(filename string) string
}

// Validate checks an upload against the type whitelist and size cap.
func Validate(up Upload) error {
	if _, ok := extByType[up.ContentType]; !ok {
		return ErrUnsupportedType
	}
	if up.Size > MaxImageSize {
		return ErrTooLarge
	}
	return nil
}

// newFilename builds a unique stored name keyed by upload time.
func newFilename(contentType string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], extByType[contentType])
}
