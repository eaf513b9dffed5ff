package main

import (
	"s3-object-fetch-function-go/config"
	"s3-object-fetch-function-go/di"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logrus.Fatal(err)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	container.GetLogger().WithField("region", cfg.AWS.Region).Info("object fetch function starting")

	lambda.Start(container.GetObjectFetchHandler().Handle)
}
