package gcs

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"naturapi/pkg/logger"
)

const uploadTimeout = 2 * time.Minute

type Config struct {
	Bucket string
	// Credentials is a service account file path or inline JSON. Empty uses
	// application default credentials.
	Credentials string
	// EmulatorHost points the client at a fake-gcs-server style emulator.
	EmulatorHost string
	// PublicBaseURL overrides https://storage.googleapis.com in returned URLs.
	PublicBaseURL string
}

type Storage struct {
	log           *logger.Logger
	client        *storage.Client
	bucket        string
	publicBaseURL string
	emulator      bool
}

func New(ctx context.Context, cfg Config, log *logger.Logger) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs: bucket name is required")
	}

	client, err := storage.NewClient(ctx, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publicBaseURL := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if publicBaseURL == "" && cfg.EmulatorHost != "" {
		publicBaseURL = strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/")
	}

	s := &Storage{
		log:           log.With("service", "GCSImageStorage"),
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL,
		emulator:      cfg.EmulatorHost != "",
	}
	s.log.Info("Object storage initialized", "bucket", cfg.Bucket, "emulator", s.emulator, "public_base_url", publicBaseURL)
	return s, nil
}

func clientOptions(cfg Config) []option.ClientOption {
	if host := strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/"); host != "" {
		_ = os.Setenv("STORAGE_EMULATOR_HOST", host)
		return []option.ClientOption{option.WithoutAuthentication()}
	}

	creds := strings.TrimSpace(cfg.Credentials)
	switch {
	case creds == "":
		return []option.ClientOption{option.WithScopes(storage.ScopeFullControl)}
	case strings.HasPrefix(creds, "{"):
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	default:
		return []option.ClientOption{option.WithCredentialsFile(creds)}
	}
}

func (s *Storage) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	obj := s.client.Bucket(s.bucket).Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	// Emulators do not implement object ACLs.
	if !s.emulator {
		if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
			return "", fmt.Errorf("failed to make object public: %w", err)
		}
	}

	return s.PublicURL(name), nil
}

func (s *Storage) PublicURL(name string) string {
	name = strings.TrimLeft(name, "/")
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, name)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name)
}

// ConfigureCORS lets browsers fetch uploaded images from any origin.
func (s *Storage) ConfigureCORS(ctx context.Context) error {
	_, err := s.client.Bucket(s.bucket).Update(ctx, storage.BucketAttrsToUpdate{
		CORS: []storage.CORS{{
			Origins:         []string{"*"},
			Methods:         []string{"GET", "HEAD", "PUT", "POST", "DELETE"},
			ResponseHeaders: []string{"Content-Type"},
			MaxAge:          time.Hour,
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to configure bucket CORS: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}
