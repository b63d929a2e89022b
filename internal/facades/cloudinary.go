package facades

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
)

// CloudinaryUploader uploads images with an unsigned upload preset.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	preset string
}

// NewCloudinaryUploader creates an uploader for the given cloud and unsigned preset.
// Unsigned uploads need no API key or secret.
func NewCloudinaryUploader(cloudName, preset string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, "", "")
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &CloudinaryUploader{cld: cld, preset: preset}, nil
}

// Upload sends the image and returns its public https URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	resp, err := u.cld.Upload.UnsignedUpload(ctx, file, u.preset, uploader.UploadParams{ResourceType: "image"})
	if err != nil {
		logger.Log.Errorw("cloudinary request failed", "filename", filename, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if resp.Error.Message != "" || resp.SecureURL == "" {
		msg := resp.Error.Message
		if msg == "" {
			msg = "no secure_url in response"
		}
		logger.Log.Errorw("cloudinary rejected upload", "filename", filename, "message", msg)
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, msg)
	}

	logger.Log.Infow("image uploaded", "backend", "cloudinary", "url", resp.SecureURL)
	return resp.SecureURL, nil
}
