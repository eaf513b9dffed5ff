package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type S3Storage struct {
	svc s3iface.S3API
}

func NewS3Storage(sess client.ConfigProvider) *S3Storage {
	return NewS3StorageWithClient(s3.New(sess))
}

func NewS3StorageWithClient(svc s3iface.S3API) *S3Storage {
	return &S3Storage{
		svc: svc,
	}
}

func (s *S3Storage) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := s.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return obj.Body, nil
}
