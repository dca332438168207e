/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/registration/datastore/ddb"
	"github.com/suparena/registration/models"
)

// Environment variables read by Load. Static keys use project names so the
// credentials Lambda injects for the execution role (AWS_ACCESS_KEY,
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN) are left to the
// SDK default chain.
const (
	EnvConfigFile = "REGISTRATION_CONFIG"
	EnvTable      = "REGISTRATION_TABLE"
	EnvRegion     = "AWS_REGION"
	EnvAccessKey  = "REGISTRATION_ACCESS_KEY"
	EnvSecretKey  = "REGISTRATION_SECRET_KEY"
	EnvEndpoint   = "DYNAMODB_ENDPOINT"
	EnvLogLevel   = "LOG_LEVEL"
)

// DefaultRegion is used when neither the file nor the environment names a region.
const DefaultRegion = "us-east-1"

// Config holds the settings of the registration function.
type Config struct {
	TableName string `yaml:"tableName"`
	Region    string `yaml:"region"`
	// Static credentials; empty means the SDK default chain.
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Endpoint  string `yaml:"endpoint"`
	LogLevel  string `yaml:"logLevel"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TableName: models.TableName,
		Region:    DefaultRegion,
		LogLevel:  "info",
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by REGISTRATION_CONFIG, a .env file in the working directory, and finally
// the process environment. Later sources win.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	// A missing .env file is normal in Lambda.
	_ = godotenv.Load()

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvTable:     &c.TableName,
		EnvRegion:    &c.Region,
		EnvAccessKey: &c.AccessKey,
		EnvSecretKey: &c.SecretKey,
		EnvEndpoint:  &c.Endpoint,
		EnvLogLevel:  &c.LogLevel,
	}
	for name, dst := range overrides {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var err error
	if c.TableName == "" {
		err = multierr.Append(err, fmt.Errorf("table name is required"))
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		err = multierr.Append(err, fmt.Errorf("access key and secret key must be set together"))
	}
	if _, lerr := zap.ParseAtomicLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid log level %q: %w", c.LogLevel, lerr))
	}
	return err
}

// ClientOptions returns the DynamoDB client options for this configuration.
func (c Config) ClientOptions() ddb.ClientOptions {
	return ddb.ClientOptions{
		Region:    c.Region,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Endpoint:  c.Endpoint,
	}
}
