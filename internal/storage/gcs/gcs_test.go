package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name    string
		storage Storage
		object  string
		want    string
	}{
		{
			name:    "default google host",
			storage: Storage{bucket: "fotos"},
			object:  "abc.png",
			want:    "https://storage.googleapis.com/fotos/abc.png",
		},
		{
			name:    "custom base url",
			storage: Storage{bucket: "fotos", publicBaseURL: "http://localhost:4443"},
			object:  "/abc.png",
			want:    "http://localhost:4443/fotos/abc.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.storage.PublicURL(tt.object))
		})
	}
}
