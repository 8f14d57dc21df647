package port

import (
	"context"
	"io"
)

// FileStorage is the physical document-content store. The lifecycle core
// never calls it; upload and download flows above this core do.
type FileStorage interface {
	Save(ctx context.Context, path string, data []byte) error
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// ScanResult is the outcome of a virus scan.
type ScanResult struct {
	Clean   bool
	Message string
}

// VirusScanner checks uploaded content before it reaches storage. Consumed
// by upload flows outside this core.
type VirusScanner interface {
	Scan(ctx context.Context, r io.Reader) (*ScanResult, error)
}
