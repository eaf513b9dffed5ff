package handler

import (
	"context"

	"s3-object-fetch-function-go/app/domain/object"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

type Fetcher interface {
	Fetch(ctx context.Context, req object.Request) (*object.Response, error)
}

type ObjectFetchHandler struct {
	fetcher Fetcher
	logger  logrus.FieldLogger
}

func NewObjectFetchHandler(fetcher Fetcher, logger logrus.FieldLogger) *ObjectFetchHandler {
	return &ObjectFetchHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Handle is the Lambda entry point. Failures are logged and handed back to
// the runtime unchanged; nothing is retried or translated.
func (h *ObjectFetchHandler) Handle(ctx context.Context, req object.Request) (*object.Response, error) {
	entry := h.logger.WithFields(logrus.Fields{
		"bucket": req.Bucket,
		"key":    req.Key,
	})
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.WithField("aws_request_id", lc.AwsRequestID)
	}

	resp, err := h.fetcher.Fetch(ctx, req)
	if err != nil {
		entry.WithError(err).Error("object fetch failed")
		return nil, err
	}

	entry.Debug("object fetched")
	return resp, nil
}
