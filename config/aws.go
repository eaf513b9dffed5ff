package config

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
)

// NewSession builds the session shared by every invocation in the execution
// context. Retries are disabled so each read is issued exactly once.
func NewSession(cfg *Config) (*session.Session, error) {
	awsCfg := &aws.Config{
		Region:     aws.String(cfg.AWS.Region),
		MaxRetries: aws.Int(0),
	}
	if cfg.AWS.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.AWS.Endpoint)
	}
	if cfg.AWS.S3ForcePathStyle {
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create aws session")
	}
	return sess, nil
}
