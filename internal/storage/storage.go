package storage

import (
	"context"
	"io"
)

// ImageStorage stores an object under name, makes it publicly readable and
// returns the URL clients use to fetch it.
type ImageStorage interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (publicURL string, err error)
}
