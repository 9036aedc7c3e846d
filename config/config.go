package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultPageSize           = 20
	defaultMaxPageSize        = 100
)

// Config is the phonebook service configuration, loaded from config.yaml and the environment.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"required"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Phonebook *PhonebookConfig `json:"phonebook" yaml:"phonebook"`

	// QRCode sizes the contact card images
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode" validate:"omitnil"`

	// PubSub selects where entry events go; nil disables publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub" validate:"omitnil"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// HTTPConfig holds the listener settings.
type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// SecretKeyConfig holds the secrets used by the service.
type SecretKeyConfig struct {
	// Access verifies caller access tokens. Tokens are issued by the auth service.
	Access string `json:"access" yaml:"access" validate:"required"`
	// Identifier seeds the key that turns internal ids into public tokens.
	// Changing it invalidates every token handed out before.
	Identifier string `json:"identifier" yaml:"identifier" validate:"required"`
}

// PhonebookConfig defines listing limits and schema handling
type PhonebookConfig struct {
	DefaultPageSize    int           `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize        int           `json:"maxPageSize" yaml:"maxPageSize"`
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size" validate:"gte=0"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
}

// PubSubConfig defines where entry events are published.
type PubSubConfig struct {
	// "local" posts to LocalEndpoint, "google" uses Cloud Pub/Sub, empty disables publishing
	Provider      string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`
	ProjectID     string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`
	TopicID       string `json:"topicId" yaml:"topicId" validate:"required_if=Provider google"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local,omitempty,url"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration before any component is built from it.
func (cfg *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fieldErr := range fieldErrs {
				fields = append(fields, fieldErr.Namespace()+" ("+fieldErr.Tag()+")")
			}

			return errors.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}

		return errors.Wrap(err, "invalid configuration")
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.applyPhonebookDefaults()
}

// applyPhonebookDefaults fills listing limits that were left out of the config file.
func (cfg *Config) applyPhonebookDefaults() {
	if cfg.Phonebook == nil {
		cfg.Phonebook = &PhonebookConfig{}
	}
	if cfg.Phonebook.DefaultPageSize <= 0 {
		cfg.Phonebook.DefaultPageSize = defaultPageSize
	}
	if cfg.Phonebook.MaxPageSize <= 0 {
		cfg.Phonebook.MaxPageSize = defaultMaxPageSize
	}
	if cfg.Phonebook.DefaultPageSize > cfg.Phonebook.MaxPageSize {
		cfg.Phonebook.DefaultPageSize = cfg.Phonebook.MaxPageSize
	}
}
