package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/google/uuid"

	"naturapi/internal/storage"
	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
	"naturapi/pkg/utils"
)

type ImageServiceInterface interface {
	UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

type ImageService struct {
	storage storage.ImageStorage
	log     *logger.Logger
	metrics *metrics.Manager
}

func NewImageService(imageStorage storage.ImageStorage, log *logger.Logger, m *metrics.Manager) ImageServiceInterface {
	return &ImageService{
		storage: imageStorage,
		log:     log.With("service", "ImageService"),
		metrics: m,
	}
}

// UploadImage stores the bytes under a fresh uuid name with an extension
// derived from the media type and returns the public URL.
func (s *ImageService) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	if !strings.HasPrefix(mediaType, "image/") {
		s.metrics.IncImageUpload("rejected")
		return "", utils.ErrInvalidImageType
	}

	name := uuid.New().String() + imageExtension(mediaType)

	url, err := s.storage.Upload(ctx, name, mediaType, r)
	if err != nil {
		s.log.Error("Error uploading image", "name", name, "error", err)
		s.metrics.IncImageUpload("error")
		return "", fmt.Errorf("%w: %v", utils.ErrImageUpload, err)
	}

	s.log.Info("Image uploaded", "name", name, "original_filename", filename)
	s.metrics.IncImageUpload("success")
	return url, nil
}

// imageExtension maps the media type to a file extension the static file
// server and browsers resolve to an image type. Unknown image subtypes are
// stored as .jpg. The client's file name is never consulted.
func imageExtension(mediaType string) string {
	switch mediaType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/avif":
		return ".avif"
	default:
		return ".jpg"
	}
}
