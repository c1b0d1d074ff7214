package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

type fileUpload struct {
	Name string
	Data []byte
}

// formFiles reads every file posted under field. A request that is not
// multipart carries no files.
func formFiles(c *gin.Context, field string) ([]fileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading upload form: %w", err)
	}
	var out []fileUpload
	for _, fh := range form.File[field] {
		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			continue
		}
		out = append(out, fileUpload{Name: fh.Filename, Data: data})
	}
	return out, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadBytes {
		return nil, fmt.Errorf("file %q exceeds %d MB", fh.Filename, maxUploadBytes>>20)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", fh.Filename, err)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes))
}
