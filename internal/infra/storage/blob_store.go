// Package storage persists uploaded leaf images in a blob bucket. The bucket
// URL decides the backend: file:// for local development, gs:// in production.
package storage

import (
	"context"
	"log/slog"
	"time"

	"saathi/config"
	"saathi/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobImageStore struct {
	bucket    *blob.Bucket
	bucketURL string
}

// Params holds dependencies for the image store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the configured bucket and closes it on shutdown.
func NewBlobImageStore(params Params) (service.ImageStore, error) {
	bucketURL := ""
	if params.Config.Storage != nil {
		bucketURL = params.Config.Storage.BucketURL
	}
	if bucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image store initialized", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{bucket: bucket, bucketURL: bucketURL}, nil
}

// Save writes the image under a dated key and returns the object reference.
func (s *blobImageStore) Save(ctx context.Context, data []byte, mimeType string) (string, error) {
	key := "pest/" + time.Now().UTC().Format("2006-01-02") + "/" + uuid.NewString() + extensionFor(mimeType)

	opts := &blob.WriterOptions{ContentType: mimeType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", key)
	}

	return s.bucketURL + "/" + key, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
