package storage

import (
	"context"
	"io"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// GetObject opens the stored object and returns its stream together with the
// content type and size from the object stat. The caller owns the stream and
// must close it.
func (m *minioStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, string, int64, error) {
	object, err := m.MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", 0, exceptions.ErrMinioGetObject(err, bucketName)
	}

	stat, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, "", 0, exceptions.ErrMinioGetObject(err, bucketName)
	}

	return object, stat.ContentType, stat.Size, nil
}
