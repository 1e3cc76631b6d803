package storage

import (
	"context"
	"errors"
	"fmt"

	"tasktracker/internal/config"
)

const (
	TypeLocal = "local"
	TypeS3    = "s3"
)

// ErrNotFound is returned when a requested path does not exist in storage.
var ErrNotFound = errors.New("not found")

// Storage holds opaque documents addressed by path.
type Storage interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
	Exists(ctx context.Context, path string) (bool, error)
}

// Locker is implemented by backends able to hold an exclusive lock on a
// path across processes. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, path string) (func() error, error)
}

func Open(ctx context.Context, conf *config.Config) (Storage, error) {
	switch conf.StorageType {
	case TypeLocal, "":
		return NewLocalStorage(conf.DataDir)
	case TypeS3:
		if conf.S3Bucket == "" {
			return nil, errors.New("S3_BUCKET is required for s3 storage")
		}
		return NewS3Storage(ctx, conf.S3Bucket, conf.S3Prefix, conf.S3Region)
	default:
		return nil, fmt.Errorf("unknown storage type %q", conf.StorageType)
	}
}
