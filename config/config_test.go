/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvConfigFile, EnvTable, EnvRegion, EnvAccessKey, EnvSecretKey, EnvEndpoint, EnvLogLevel} {
		t.Setenv(name, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "registration-table", cfg.TableName)
		assert.Equal(t, DefaultRegion, cfg.Region)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.Endpoint)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvTable, "users")
		t.Setenv(EnvRegion, "sa-east-1")
		t.Setenv(EnvEndpoint, "http://localhost:8000")
		t.Setenv(EnvLogLevel, "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "users", cfg.TableName)
		assert.Equal(t, "sa-east-1", cfg.Region)
		assert.Equal(t, "debug", cfg.LogLevel)

		opts := cfg.ClientOptions()
		assert.Equal(t, "http://localhost:8000", opts.Endpoint)
		assert.Equal(t, "sa-east-1", opts.Region)
	})

	t.Run("FileThenEnvironment", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "registration.yaml")
		content := "tableName: from-file\nregion: eu-west-1\nlogLevel: warn\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv(EnvConfigFile, path)
		t.Setenv(EnvRegion, "us-west-2")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.TableName)
		assert.Equal(t, "us-west-2", cfg.Region)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("MissingFile", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tableName: [unclosed"), 0o600))
		t.Setenv(EnvConfigFile, path)

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("LambdaExecutionRoleEnvironment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AWS_REGION", "us-east-1")
		t.Setenv("AWS_ACCESS_KEY", "ASIAEXAMPLE")
		t.Setenv("AWS_ACCESS_KEY_ID", "ASIAEXAMPLE")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "role-secret")
		t.Setenv("AWS_SESSION_TOKEN", "role-session-token")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.AccessKey)
		assert.Empty(t, cfg.SecretKey)

		opts := cfg.ClientOptions()
		assert.Empty(t, opts.AccessKey)
		assert.Empty(t, opts.SecretKey)
	})

	t.Run("StaticCredentialsFromEnvironment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAccessKey, "local")
		t.Setenv(EnvSecretKey, "local-secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "local", cfg.AccessKey)
		assert.Equal(t, "local-secret", cfg.SecretKey)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("CollectsAllProblems", func(t *testing.T) {
		cfg := Config{AccessKey: "only-access", LogLevel: "loud"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 3)
	})

	t.Run("StaticCredentialsPair", func(t *testing.T) {
		cfg := Default()
		cfg.AccessKey = "a"
		cfg.SecretKey = "s"
		assert.NoError(t, cfg.Validate())
	})
}
