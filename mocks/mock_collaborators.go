package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"lexvault/internal/port"
)

// MockFileStorage is a mock implementation of port.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}

func (m *MockFileStorage) Download(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockVirusScanner is a mock implementation of port.VirusScanner.
type MockVirusScanner struct {
	mock.Mock
}

func (m *MockVirusScanner) Scan(ctx context.Context, r io.Reader) (*port.ScanResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ScanResult), args.Error(1)
}
