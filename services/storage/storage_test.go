package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestSniffImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr error
	}{
		{name: "png", data: pngHeader, want: "image/png"},
		{name: "empty", data: nil, wantErr: ErrEmptyImage},
		{name: "plain text", data: []byte("hello there, not an image"), wantErr: ErrNotImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SniffImage(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SniffImage() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SniffImage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataURLStore_Save(t *testing.T) {
	store := NewDataURLStore()

	url, err := store.Save(context.Background(), "room.png", pngHeader)
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("Save() = %q, want data:image/png prefix", url)
	}

	if _, err := store.Save(context.Background(), "notes.txt", []byte("just some text")); !errors.Is(err, ErrNotImage) {
		t.Errorf("Save() with text error = %v, want ErrNotImage", err)
	}
}

func TestDataURLStore_SaveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDataURLStore().Save(ctx, "room.png", pngHeader); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
}
