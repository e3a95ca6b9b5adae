package repository

import (
	"context"
	"io"
)

// BlobRepository defines the interface for the single-object image
// store backing the frequency table.
type BlobRepository interface {
	Upload(ctx context.Context, name string, r io.Reader) error
	Download(ctx context.Context, name string, w io.Writer) error
	Delete(ctx context.Context, name string) error
}
