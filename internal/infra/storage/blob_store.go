// Package storage implements the MediaStore on a gocloud.dev blob bucket.
// The bucket is opened from a driver URL (gs://, file://, mem://), so the
// same code serves a GCS bucket in production, a local uploads directory in
// development, and an in-memory bucket in tests.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"afritrade/config"
	"afritrade/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/fileblob" // local uploads directory
	_ "gocloud.dev/blob/gcsblob"  // Google Cloud Storage
	_ "gocloud.dev/blob/memblob"  // in-memory, for tests
)

// blobMediaStore implements service.MediaStore on a *blob.Bucket.
type blobMediaStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// Params holds dependencies for the media store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStore opens the configured bucket and closes it on shutdown.
func NewMediaStore(params Params) (service.MediaStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket configuration is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob bucket opened", slog.String("bucket_url", cfg.BucketURL))

	store := NewMediaStoreWithBucket(bucket, cfg.PublicBaseURL)
	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob bucket")

			return store.Close()
		},
	})

	return store, nil
}

// NewMediaStoreWithBucket wraps an already-open bucket. Used directly by tests
// with a memblob bucket.
func NewMediaStoreWithBucket(bucket *blob.Bucket, publicBaseURL string) service.MediaStore {
	return &blobMediaStore{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload stores data at key and returns its durable public URL.
func (s *blobMediaStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finish blob %s", key)
	}

	return s.baseURL + "/" + key, nil
}

// List returns the keys stored under the prefix.
func (s *blobMediaStore) List(ctx context.Context, prefix string) ([]string, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	keys := make([]string, 0)
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list blobs under %s", prefix)
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

// DeletePrefix removes every blob under the prefix. On a partial failure it
// returns the count deleted so far together with the first error; the caller
// decides whether to surface or downgrade it.
func (s *blobMediaStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	keys, err := s.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, key := range keys {
		if err := s.bucket.Delete(ctx, key); err != nil {
			return deleted, errors.Wrapf(err, "failed to delete blob %s", key)
		}
		deleted++
	}

	return deleted, nil
}

// Close releases the underlying bucket.
func (s *blobMediaStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
