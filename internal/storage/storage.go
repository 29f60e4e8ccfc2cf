package storage

import (
	"context"
	"io"
)

// ObjectStore uploads files to hosted object storage and resolves their
// public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path, contentType string, data io.Reader) (publicURL string, err error)
}
