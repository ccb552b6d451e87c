package storage

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client     *minio.Client
	bucketName string
}

var (
	minioStorageInstance contracts.Storage
	onceMinioStorage     sync.Once
)

func NewMinioStorage(client *minio.Client, bucketName string) contracts.Storage {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			client:     client,
			bucketName: bucketName,
		}
	})
	return minioStorageInstance
}

func (s *minioStorage) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	return info.Key, nil
}

func (s *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, s.bucketName)
	}
	return presignedURL.String(), nil
}
