package outbound

import "context"

type UploadRequest struct {
	Payload     []byte
	Key         string
	ContentType string
}

// MediaStorePort uploads a binary asset to the object store and returns its
// public URL.
type MediaStorePort interface {
	Upload(ctx context.Context, req UploadRequest) (string, error)
}
