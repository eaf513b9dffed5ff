package storage

import (
	"context"
	"io"
)

type Storage interface {
	// GetObject opens the object at bucket/key. The caller closes the body.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}
