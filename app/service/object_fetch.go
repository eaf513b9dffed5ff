package service

import (
	"context"
	"fmt"
	"io"

	"s3-object-fetch-function-go/app/domain/object"
	"s3-object-fetch-function-go/app/domain/storage"
	"s3-object-fetch-function-go/config"
)

// StorageError is returned for any failure while reading an object: the
// GetObject call itself or reading its body. Err is the untouched cause.
type StorageError struct {
	Bucket string
	Key    string
	Err    error
}

func (s *StorageError) Error() string {
	return fmt.Sprintf("get object s3://%s/%s: %s", s.Bucket, s.Key, s.Err.Error())
}

func (s *StorageError) Unwrap() error {
	return s.Err
}

func NewStorageError(bucket, key string, err error) *StorageError {
	return &StorageError{Bucket: bucket, Key: key, Err: err}
}

type ObjectFetchService struct {
	storage  storage.Storage
	validate *config.Validator
}

func NewObjectFetchService(s storage.Storage, validate *config.Validator) *ObjectFetchService {
	return &ObjectFetchService{
		storage:  s,
		validate: validate,
	}
}

// Fetch reads bucket/key once and wraps the payload in the success envelope.
// An invalid request returns a *config.ValidationError without touching storage.
func (o *ObjectFetchService) Fetch(ctx context.Context, req object.Request) (*object.Response, error) {
	if err := o.validate.Struct(req); err != nil {
		return nil, err
	}

	body, err := o.storage.GetObject(ctx, req.Bucket, req.Key)
	if err != nil {
		return nil, NewStorageError(req.Bucket, req.Key, err)
	}
	defer body.Close()

	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, NewStorageError(req.Bucket, req.Key, err)
	}
	return object.NewResponse(payload), nil
}
