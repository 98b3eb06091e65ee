// Package storage persists event banner images in a bucket (GCS) or on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ObjectLocation describes where a blob should live.
type ObjectLocation struct {
	Bucket   string
	FullPath string
}

// BlobStore writes objects and reports the public URL they are served from.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	// Check verifies the backing bucket or directory is reachable.
	Check(ctx context.Context) error
}

// bannerExtensions maps accepted banner media types to file extensions.
var bannerExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// BannerExtension returns the file extension for an accepted banner media type.
func BannerExtension(contentType string) (string, bool) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := bannerExtensions[mediaType]
	return ext, ok
}

// BannerKey is the logical key of an event's banner image.
func BannerKey(eventID uuid.UUID, ext string) string {
	return fmt.Sprintf("events/%s/banner.%s", eventID, ext)
}

// ResolveObjectLocation combines the deployment prefix and a logical key into a bucket/path pair.
//   - bucket comes from deployment configuration (one bucket per environment class).
//   - prefix separates environments sharing a bucket (e.g. "dev/"); it may be empty.
//   - logicalKey is environment-relative, such as "events/<event_uuid>/banner.png".
func ResolveObjectLocation(bucket, prefix, logicalKey string) (ObjectLocation, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return ObjectLocation{}, fmt.Errorf("bucket is required")
	}
	key := strings.TrimPrefix(strings.TrimSpace(logicalKey), "/")
	if key == "" {
		return ObjectLocation{}, fmt.Errorf("logical key is required")
	}

	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix != "" {
		key = prefix + "/" + key
	}

	return ObjectLocation{Bucket: bucket, FullPath: key}, nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
