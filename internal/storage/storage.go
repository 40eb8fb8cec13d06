// Package storage holds the object stores that receive analysis reports.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"atscv/internal/config"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object. Location is a backend-specific
// reference a person can use to find it: a file path or a bucket URL.
type ObjectInfo struct {
	Key          string
	Location     string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a write-side object store. Reports are never read back by the service.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

// FromConfig opens the backend selected by rc.Backend.
// It returns a nil Storage and no error when reports are disabled.
func FromConfig(ctx context.Context, rc config.ReportsConfig, mc config.MinIOConfig) (Storage, error) {
	switch rc.Backend {
	case config.ReportsBackendFS:
		return NewFilesystem(rc.Dir)
	case config.ReportsBackendMinIO:
		return NewMinIO(ctx, mc)
	case config.ReportsBackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown reports backend %q", rc.Backend)
	}
}
