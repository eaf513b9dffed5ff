package handler

import (
	"context"
	"errors"
	"testing"

	"s3-object-fetch-function-go/app/domain/object"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	resp *object.Response
	err  error
}

func (s *stubFetcher) Fetch(context.Context, object.Request) (*object.Response, error) {
	return s.resp, s.err
}

func TestHandleSuccess(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	want := object.NewResponse([]byte(`{"a":1}`))
	h := NewObjectFetchHandler(&stubFetcher{resp: want}, logger)

	resp, err := h.Handle(context.Background(), object.Request{Bucket: "my-bucket", Key: "config.json"})
	require.NoError(t, err)
	assert.Same(t, want, resp)
	assert.Empty(t, hook.AllEntries())
}

func TestHandleLogsAndReturnsError(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	cause := errors.New("NoSuchKey: The specified key does not exist.")
	h := NewObjectFetchHandler(&stubFetcher{err: cause}, logger)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
	resp, err := h.Handle(ctx, object.Request{Bucket: "my-bucket", Key: "missing.json"})

	assert.Nil(t, resp)
	assert.Same(t, cause, err)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, cause, entry.Data[logrus.ErrorKey])
	assert.Equal(t, "my-bucket", entry.Data["bucket"])
	assert.Equal(t, "missing.json", entry.Data["key"])
	assert.Equal(t, "req-1", entry.Data["aws_request_id"])
}
