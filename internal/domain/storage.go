package domain

import "context"

// ObjectStorage stores binary objects and returns the URL they can be read from.
type ObjectStorage interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}
