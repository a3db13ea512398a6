package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiskSaveAndRemove(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	disk := NewDisk(root)

	path, err := disk.Save(ctx, "photo-1-2.jpg", bytes.NewReader([]byte("jpeg bytes")), 10, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "photos", "photo-1-2.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, disk.Remove(ctx, "photo-1-2.jpg"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, disk.Remove(ctx, "photo-1-2.jpg"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestDiskSaveLeavesNothingOnFailure(t *testing.T) {
	root := t.TempDir()
	disk := NewDisk(root)

	body := io.MultiReader(bytes.NewReader([]byte("partial")), failingReader{})
	_, err := disk.Save(context.Background(), "photo-1-2.jpg", body, 100, "image/jpeg")
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "photos"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiskRejectsTraversal(t *testing.T) {
	disk := NewDisk(t.TempDir())
	for _, name := range []string{"", "..", "../secret.jpg", `a\b.jpg`, "nested/photo.jpg"} {
		_, err := disk.Save(context.Background(), name, bytes.NewReader(nil), 0, "image/jpeg")
		assert.ErrorIs(t, err, ErrInvalidName, name)
		assert.ErrorIs(t, disk.Remove(context.Background(), name), ErrInvalidName, name)
	}
}

type mockMinio struct {
	mock.Mock
}

func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(bucketName, objectName, objectSize, opts.ContentType)
	return minio.UploadInfo{}, args.Error(0)
}

func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(bucketName, objectName)
	return args.Error(0)
}

func (m *mockMinio) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	args := m.Called(bucketName, objectName, expires)
	return args.Get(0).(*url.URL), args.Error(1)
}

func TestMinioDriver(t *testing.T) {
	ctx := context.Background()
	client := &mockMinio{}
	driver := &Minio{client: client, bucket: "empowerher", presignTTL: 15 * time.Minute}

	client.On("PutObject", "empowerher", "photos/photo-1-2.png", int64(4), "image/png").Return(nil)
	client.On("RemoveObject", "empowerher", "photos/photo-1-2.png").Return(nil)
	signed, _ := url.Parse("https://minio.local/empowerher/photos/photo-1-2.png?X-Amz-Signature=abc")
	client.On("PresignedGetObject", "empowerher", "photos/photo-1-2.png", 15*time.Minute).Return(signed, nil)

	key, err := driver.Save(ctx, "photo-1-2.png", bytes.NewReader([]byte("png!")), 4, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "photos/photo-1-2.png", key)

	link, err := driver.SignedURL(ctx, "photo-1-2.png")
	require.NoError(t, err)
	assert.Equal(t, signed.String(), link)

	require.NoError(t, driver.Remove(ctx, "photo-1-2.png"))
	client.AssertExpectations(t)
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(params.Body)
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key), string(body), aws.ToString(params.ContentType))
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func (m *mockS3) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	opts := &s3.PresignOptions{}
	for _, fn := range optFns {
		fn(opts)
	}
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key), opts.Expires)
	request, _ := args.Get(0).(*v4.PresignedHTTPRequest)
	return request, args.Error(1)
}

func TestS3Driver(t *testing.T) {
	ctx := context.Background()
	client := &mockS3{}
	driver := &S3{client: client, presign: client, bucket: "empowerher", presignTTL: 15 * time.Minute}

	client.On("PutObject", "empowerher", "photos/photo-1-2.jpg", "jpeg", "image/jpeg").Return(nil)
	client.On("DeleteObject", "empowerher", "photos/photo-1-2.jpg").Return(nil)
	signed := &v4.PresignedHTTPRequest{URL: "https://s3.local/empowerher/photos/photo-1-2.jpg?X-Amz-Signature=abc"}
	client.On("PresignGetObject", "empowerher", "photos/photo-1-2.jpg", 15*time.Minute).Return(signed, nil)

	key, err := driver.Save(ctx, "photo-1-2.jpg", bytes.NewReader([]byte("jpeg")), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "photos/photo-1-2.jpg", key)

	link, err := driver.SignedURL(ctx, "photo-1-2.jpg")
	require.NoError(t, err)
	assert.Equal(t, signed.URL, link)

	require.NoError(t, driver.Remove(ctx, "photo-1-2.jpg"))
	client.AssertExpectations(t)
}

func TestS3DriverErrors(t *testing.T) {
	ctx := context.Background()
	client := &mockS3{}
	driver := &S3{client: client, presign: client, bucket: "empowerher", presignTTL: time.Minute}

	client.On("PutObject", "empowerher", "photos/photo-1-2.jpg", "jpeg", "image/jpeg").Return(errors.New("access denied"))
	client.On("DeleteObject", "empowerher", "photos/photo-1-2.jpg").Return(errors.New("access denied"))
	client.On("PresignGetObject", "empowerher", "photos/photo-1-2.jpg", time.Minute).Return(nil, errors.New("no credentials"))

	_, err := driver.Save(ctx, "photo-1-2.jpg", bytes.NewReader([]byte("jpeg")), 4, "image/jpeg")
	assert.EqualError(t, err, "access denied")
	assert.Error(t, driver.Remove(ctx, "photo-1-2.jpg"))
	_, err = driver.SignedURL(ctx, "photo-1-2.jpg")
	assert.Error(t, err)

	_, err = driver.Save(ctx, "../escape.jpg", bytes.NewReader(nil), 0, "image/jpeg")
	assert.ErrorIs(t, err, ErrInvalidName)
	client.AssertExpectations(t)
}
