package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access":     "",
			"identifier": "",
		},
		"phonebook": map[string]any{
			"maxPageSize": 100,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_IDENTIFIER", want: "secretKey.identifier"},
		{envKey: "PHONEBOOK_MAXPAGESIZE", want: "phonebook.maxPageSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyPhonebookDefaults(t *testing.T) {
	t.Run("missing section", func(t *testing.T) {
		cfg := &Config{}
		cfg.applyPhonebookDefaults()

		require.NotNil(t, cfg.Phonebook)
		assert.Equal(t, defaultPageSize, cfg.Phonebook.DefaultPageSize)
		assert.Equal(t, defaultMaxPageSize, cfg.Phonebook.MaxPageSize)
	})

	t.Run("default above max is clamped", func(t *testing.T) {
		cfg := &Config{Phonebook: &PhonebookConfig{DefaultPageSize: 50, MaxPageSize: 10}}
		cfg.applyPhonebookDefaults()

		assert.Equal(t, 10, cfg.Phonebook.DefaultPageSize)
		assert.Equal(t, 10, cfg.Phonebook.MaxPageSize)
	})
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: phonebook
  log:
    level: debug
secretKey:
  access: from-file
  identifier: from-file
phonebook:
  maxPageSize: 50
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("SECRETKEY_IDENTIFIER", "from-env")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "phonebook", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, "from-file", cfg.SecretKey.Access)
	assert.Equal(t, "from-env", cfg.SecretKey.Identifier)
	require.NotNil(t, cfg.Phonebook)
	assert.Equal(t, 50, cfg.Phonebook.MaxPageSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Postgres:  &postgres.DBConn{},
			SecretKey: SecretKeyConfig{Access: "access", Identifier: "identifier"},
		}
		cfg.applyDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing postgres", mutate: func(cfg *Config) { cfg.Postgres = nil }, wantErr: "Postgres"},
		{name: "missing identifier secret", mutate: func(cfg *Config) { cfg.SecretKey.Identifier = "" }, wantErr: "Identifier"},
		{name: "unknown log level", mutate: func(cfg *Config) { cfg.Env.Log.Level = "verbose" }, wantErr: "Level"},
		{name: "bad qr level", mutate: func(cfg *Config) { cfg.QRCode = &QRCodeConfig{ErrorCorrectionLevel: "X"} }, wantErr: "ErrorCorrectionLevel"},
		{name: "google without topic", mutate: func(cfg *Config) {
			cfg.PubSub = &PubSubConfig{Provider: "google", ProjectID: "p"}
		}, wantErr: "TopicID"},
		{name: "local without endpoint", mutate: func(cfg *Config) {
			cfg.PubSub = &PubSubConfig{Provider: "local"}
		}, wantErr: "LocalEndpoint"},
		{name: "disabled pubsub", mutate: func(cfg *Config) { cfg.PubSub = &PubSubConfig{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
