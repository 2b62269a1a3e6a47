package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"naturapi/pkg/logger"
)

// RoutePrefix is where the router serves files written by Storage.
const RoutePrefix = "/images/files"

// Storage keeps images on the local filesystem. Files are public by virtue of
// being served under RoutePrefix.
type Storage struct {
	log           *logger.Logger
	basePath      string
	publicBaseURL string
}

func New(basePath, publicBaseURL string, log *logger.Logger) (*Storage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &Storage{
		log:           log.With("service", "LocalImageStorage"),
		basePath:      basePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *Storage) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	filePath, err := s.safeJoin(name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		if cerr := f.Close(); cerr != nil {
			s.log.Error("failed to close file after write error", "error", cerr)
		}
		if rerr := os.Remove(filePath); rerr != nil {
			s.log.Error("failed to remove file after write error", "error", rerr)
		}
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		if rerr := os.Remove(filePath); rerr != nil {
			s.log.Error("failed to remove file after close error", "error", rerr)
		}
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return s.publicBaseURL + RoutePrefix + "/" + name, nil
}

// safeJoin resolves name relative to basePath and rejects directory traversal.
func (s *Storage) safeJoin(name string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
