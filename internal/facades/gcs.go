package facades

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
)

// GCSUploader stores images in a public Google Cloud Storage bucket.
type GCSUploader struct {
	bucket     string
	uploadPath string
	newWriter  func(ctx context.Context, bucket, object string) io.WriteCloser
}

// NewGCSUploader creates an uploader writing under images/ in bucket.
func NewGCSUploader(client *storage.Client, bucket string) *GCSUploader {
	return &GCSUploader{
		bucket:     bucket,
		uploadPath: "images/",
		newWriter: func(ctx context.Context, bucket, object string) io.WriteCloser {
			return client.Bucket(bucket).Object(object).NewWriter(ctx)
		},
	}
}

// Upload writes the image and returns its public URL.
func (u *GCSUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 50*time.Second)
	defer cancel()

	object := objectName(u.uploadPath, filename)

	wc := u.newWriter(ctx, u.bucket, object)
	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		logger.Log.Errorw("gcs write failed", "object", object, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := wc.Close(); err != nil {
		logger.Log.Errorw("gcs close failed", "object", object, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, object)
	logger.Log.Infow("image uploaded", "backend", "gcs", "url", url)
	return url, nil
}
