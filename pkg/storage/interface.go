package storage

import (
	"context"
	"io"
)

// Provider stores uploaded files (profile photos) and serves them by URL.
type Provider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
}

type UploadRequest struct {
	Key         string    `json:"key"`
	Reader      io.Reader `json:"-"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}
