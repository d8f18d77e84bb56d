// Package storage wraps the resume bucket behind a small interface so the
// resume service can be exercised against a fake in tests.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the interface the resume service depends on. Put writes a
// new object and returns its public URL; paths are never reused, so a put
// cannot land on an existing object.
type ObjectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (publicURL string, err error)
	Remove(ctx context.Context, path string) error
	PublicURL(path string) string
}

// BucketStore talks to an S3-compatible bucket.
type BucketStore struct {
	client *minio.Client
	bucket string
}

type BucketConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewBucketStore(cfg BucketConfig) (*BucketStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &BucketStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *BucketStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", path, err)
	}
	return s.PublicURL(path), nil
}

func (s *BucketStore) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %q: %w", path, err)
	}
	return nil
}

func (s *BucketStore) PublicURL(path string) string {
	endpoint := strings.TrimRight(s.client.EndpointURL().String(), "/")
	return endpoint + "/" + s.bucket + "/" + path
}
