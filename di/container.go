package di

import (
	"os"

	"s3-object-fetch-function-go/app/domain/storage"
	"s3-object-fetch-function-go/app/handler"
	infra_storage "s3-object-fetch-function-go/app/infrastructure/storage"
	"s3-object-fetch-function-go/app/service"
	"s3-object-fetch-function-go/config"

	"github.com/sirupsen/logrus"
)

const LocalStackEndpoint = "http://localhost:4566"

// Container holds everything reused across invocations in one execution
// context. It is built once at cold start.
type Container struct {
	storage  storage.Storage
	logger   *logrus.Logger
	validate *config.Validator
}

func NewContainer(cfg *config.Config) (*Container, error) {
	if os.Getenv("env") == "local" && cfg.AWS.Endpoint == "" {
		cfg.AWS.Endpoint = LocalStackEndpoint
		cfg.AWS.S3ForcePathStyle = true
	}

	sess, err := config.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return NewContainerWithStorage(infra_storage.NewS3Storage(sess), config.NewLogger(cfg)), nil
}

func NewContainerWithStorage(s storage.Storage, logger *logrus.Logger) *Container {
	return &Container{
		storage:  s,
		logger:   logger,
		validate: config.NewValidate(),
	}
}

func (c *Container) GetStorage() storage.Storage {
	return c.storage
}

func (c *Container) GetLogger() *logrus.Logger {
	return c.logger
}

func (c *Container) GetObjectFetchHandler() *handler.ObjectFetchHandler {
	return handler.NewObjectFetchHandler(service.NewObjectFetchService(c.storage, c.validate), c.logger)
}
