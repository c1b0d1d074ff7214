package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads images to a Cloudinary folder.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cld *cloudinary.Cloudinary, folder string) *CloudinaryStore {
	return &CloudinaryStore{cld: cld, folder: folder}
}

// Save uploads the image and returns its secure delivery URL.
func (s *CloudinaryStore) Save(ctx context.Context, _ string, data []byte) (string, error) {
	if _, err := SniffImage(data); err != nil {
		return "", err
	}
	params := uploader.UploadParams{
		Folder: s.folder,
	}
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), params)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStore: failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("CloudinaryStore: upload rejected: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStore: no secure URL returned")
	}
	return result.SecureURL, nil
}
