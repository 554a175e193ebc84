// Package service defines interfaces for collaborators the use cases depend on.
// Implementations live under internal/infra.
package service

import (
	"context"
	"io"

	"zumap/internal/domain/entity"
)

// ContentInfo describes a stored payload.
type ContentInfo struct {
	Key         string
	ContentType string // MIME type
	Size        int64
}

// ContentStore keeps drop payload bytes under content addresses. Storing the
// same bytes twice yields the same key.
type ContentStore interface {
	// Put stores data and returns its key.
	Put(ctx context.Context, data []byte, contentType entity.ContentType) (string, error)

	// Open streams a payload. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, *ContentInfo, error)

	// DeleteAll removes every stored payload.
	DeleteAll(ctx context.Context) error
}
