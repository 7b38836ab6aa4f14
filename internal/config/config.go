package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mockinterview/internal/common"
)

const (
	// EnvDevelopment is the only environment allowed to run with DefaultSecretKey.
	EnvDevelopment = "development"

	// DefaultSecretKey is the documented insecure fallback. Override it in production.
	DefaultSecretKey = "your-secret-key-here"

	DefaultDatabaseDSN           = "interview.db"
	DefaultTokenValidityDuration = time.Hour
	DefaultS3Region              = "us-east-1"
	DefaultLogLevel              = "info"
)

// Config holds runtime settings for the trainer.
//
// Fields:
//   - Environment: deployment name; anything but "development" enforces a real secret.
//   - DatabaseDSN: SQLite file path, or a postgres:// URL for PostgreSQL (pgx).
//   - SecretKey: HMAC secret for signing tokens (HS256).
//   - TokenValidityDuration: lifetime of an issued token.
//   - QuestionBankFile: optional YAML file replacing the embedded question bank.
//   - LogLevel: minimum level written to the log.
//   - S3*: object storage used by transcript export; export is off while S3Bucket is empty.
type Config struct {
	Environment           string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	QuestionBankFile      string
	LogLevel              string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3AccessKey           string
	S3SecretKey           string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Environment = EnvDevelopment
	c.DatabaseDSN = DefaultDatabaseDSN
	c.SecretKey = DefaultSecretKey
	c.TokenValidityDuration = DefaultTokenValidityDuration
	c.QuestionBankFile = ""
	c.LogLevel = DefaultLogLevel
	c.S3Bucket = ""
	c.S3Region = DefaultS3Region
	c.S3BaseEndpoint = ""
	c.S3AccessKey = ""
	c.S3SecretKey = ""
}

// LoadConfig builds a Config from defaults, .env and the environment, an
// optional JSON file and finally the command-line args (usually os.Args[1:]).
// The result is validated before it is returned.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the config targets local development.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), EnvDevelopment)
}

// Validate checks startup invariants. Outside development the default
// secret is rejected with common.ErrInsecureSecret.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return errors.New("database DSN is empty")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("%w: secret key is empty", common.ErrInsecureSecret)
	}
	if !c.IsDevelopment() && c.SecretKey == DefaultSecretKey {
		return fmt.Errorf("%w: set JWT_SECRET_KEY for environment %q", common.ErrInsecureSecret, c.Environment)
	}
	if c.TokenValidityDuration <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.TokenValidityDuration)
	}
	return nil
}

// UsesPostgres reports whether DatabaseDSN points at PostgreSQL.
func (c *Config) UsesPostgres() bool {
	dsn := strings.ToLower(c.DatabaseDSN)
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// ExportEnabled reports whether transcript export has a target bucket.
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}
