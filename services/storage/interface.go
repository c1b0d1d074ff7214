package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmptyImage = errors.New("image is empty")
	ErrNotImage   = errors.New("file is not an image")
)

// ImageStore persists an uploaded room or guest image and returns the URL the
// record should reference.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// SniffImage returns the detected MIME type of data, or ErrNotImage when the
// content is not a recognised image format.
func SniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotImage
	}
	return mtype.String(), nil
}
