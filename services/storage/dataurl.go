package storage

import (
	"context"
	"encoding/base64"
)

// DataURLStore keeps images inline in the record as base64 data URLs.
// Used when no Cloudinary account is configured.
type DataURLStore struct{}

func NewDataURLStore() *DataURLStore {
	return &DataURLStore{}
}

func (DataURLStore) Save(ctx context.Context, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	mtype, err := SniffImage(data)
	if err != nil {
		return "", err
	}
	return "data:" + mtype + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
