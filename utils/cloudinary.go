package utils

import (
	"fmt"

	"hoteladmin/config"
	"hoteladmin/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ImageStore returns the image storage backend selected by configuration:
// Cloudinary when credentials are set, inline data URLs otherwise.
func ImageStore(cfg config.Config) (storage.ImageStore, error) {
	if !cfg.CloudinaryConfigured() {
		GetLogger().Info("Cloudinary credentials not set, storing images as data URLs")
		return storage.NewDataURLStore(), nil
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("utils.ImageStore: failed to initialize Cloudinary: %w", err)
	}
	return storage.NewCloudinaryStore(cld, cfg.CloudinaryFolder), nil
}
