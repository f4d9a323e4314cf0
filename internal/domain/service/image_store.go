package service

import "context"

// ImageStore persists uploaded leaf images before analysis so admins can
// audit diagnoses later. Returns an opaque reference to the stored object.
type ImageStore interface {
	Save(ctx context.Context, data []byte, mimeType string) (string, error)
}
