package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

const gcsPublicBaseURL = "https://storage.googleapis.com"

// GCSStore writes blobs to a Google Cloud Storage bucket.
type GCSStore struct {
	client        *storage.Client
	bucket        string
	prefix        string
	publicBaseURL string
}

// NewGCSStore builds a store writing under prefix in bucket. publicBaseURL overrides the
// default https://storage.googleapis.com/<bucket> URL (for a CDN in front of the bucket).
func NewGCSStore(client *storage.Client, bucket, prefix, publicBaseURL string) *GCSStore {
	if client == nil {
		panic("storage client is required")
	}
	if bucket == "" {
		panic("storage bucket is required")
	}
	if publicBaseURL == "" {
		publicBaseURL = joinURL(gcsPublicBaseURL, bucket)
	}
	return &GCSStore{client: client, bucket: bucket, prefix: prefix, publicBaseURL: publicBaseURL}
}

func (s *GCSStore) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	loc, err := ResolveObjectLocation(s.bucket, s.prefix, key)
	if err != nil {
		return "", err
	}

	w := s.client.Bucket(loc.Bucket).Object(loc.FullPath).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=300"

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write gs://%s/%s: %w", loc.Bucket, loc.FullPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize gs://%s/%s: %w", loc.Bucket, loc.FullPath, err)
	}

	return joinURL(s.publicBaseURL, loc.FullPath), nil
}

// Check reads the bucket attributes, which fails without access.
func (s *GCSStore) Check(ctx context.Context) error {
	if _, err := s.client.Bucket(s.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("bucket %s: %w", s.bucket, err)
	}
	return nil
}

var _ BlobStore = (*GCSStore)(nil)
