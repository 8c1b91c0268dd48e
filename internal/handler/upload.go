package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-review/internal/domain"
)

// readUpload reads an optional multipart file. It returns nil when the field
// is absent and a ValidationError when the file is empty or too large.
func readUpload(c *gin.Context, field string) (*domain.Upload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewValidationError(field, "invalid_file")
	}
	if header.Size > MaxUploadSize {
		return nil, domain.NewValidationError(field, "file_too_large")
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	if len(data) > MaxUploadSize {
		return nil, domain.NewValidationError(field, "file_too_large")
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError(field, "file_empty")
	}

	return &domain.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
