package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultRegion   = "ap-northeast-1"
	DefaultLogLevel = "info"
)

type Config struct {
	AWS AWS `yaml:"aws"`
	Log Log `yaml:"log"`
}

type AWS struct {
	Region string `yaml:"region"`
	// Endpoint overrides the S3 endpoint, e.g. LocalStack when env=local.
	Endpoint         string `yaml:"endpoint"`
	S3ForcePathStyle bool   `yaml:"s3ForcePathStyle"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Load reads dir/.env and dir/setting.yml when they exist, then applies
// environment overrides. Both files are optional; a deployed function is
// usually configured through its environment only.
func Load(dir string) (*Config, error) {
	envPath := filepath.Join(dir, ".env")
	if fileExists(envPath) {
		if err := godotenv.Load(envPath); err != nil {
			return nil, errors.Wrapf(err, "cannot load env file %s", envPath)
		}
	}

	cfg := &Config{
		AWS: AWS{Region: DefaultRegion},
		Log: Log{Level: DefaultLogLevel},
	}

	settingPath := filepath.Join(dir, "setting.yml")
	if fileExists(settingPath) {
		f, err := os.Open(settingPath)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open %s", settingPath)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, errors.Wrapf(err, "cannot decode %s", settingPath)
		}
	}

	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.AWS.Region = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		cfg.AWS.Endpoint = v
	}
	if v := os.Getenv("S3_FORCE_PATH_STYLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid S3_FORCE_PATH_STYLE")
		}
		cfg.AWS.S3ForcePathStyle = b
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if cfg.AWS.Region == "" {
		cfg.AWS.Region = DefaultRegion
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
