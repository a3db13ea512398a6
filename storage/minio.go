package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	minioCreds "github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioOptions struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PresignTTL time.Duration
}

// minioClient is the subset of *minio.Client the driver needs.
type minioClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// Minio stores photos in a MinIO bucket under photos/.
type Minio struct {
	client     minioClient
	bucket     string
	presignTTL time.Duration
}

func NewMinio(opts MinioOptions) (*Minio, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  minioCreds.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &Minio{client: client, bucket: opts.Bucket, presignTTL: opts.PresignTTL}, nil
}

func (m *Minio) Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	key := objectKey(name)
	if _, err := m.client.PutObject(ctx, m.bucket, key, body, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", err
	}
	return key, nil
}

func (m *Minio) Remove(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	return m.client.RemoveObject(ctx, m.bucket, objectKey(name), minio.RemoveObjectOptions{})
}

func (m *Minio) SignedURL(ctx context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	signed, err := m.client.PresignedGetObject(ctx, m.bucket, objectKey(name), m.presignTTL, url.Values{})
	if err != nil {
		return "", err
	}
	return signed.String(), nil
}
