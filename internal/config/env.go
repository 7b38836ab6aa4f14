package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// lookupEnv is a seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

// loadDotEnv copies variables from file into the process environment.
// Variables that are already set win. A missing file is not an error.
func loadDotEnv(file string) error {
	err := godotenv.Load(file)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading %s: %w", file, err)
}

// parseEnv overlays cfg with the variables listed in the package doc.
// Unset variables leave the current values untouched.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("APP_ENV", &cfg.Environment)
	str("DATABASE_DSN", &cfg.DatabaseDSN)
	str("JWT_SECRET_KEY", &cfg.SecretKey)
	str("QUESTION_BANK_FILE", &cfg.QuestionBankFile)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("S3_BUCKET", &cfg.S3Bucket)
	str("S3_REGION", &cfg.S3Region)
	str("S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)
	str("S3_ACCESS_KEY", &cfg.S3AccessKey)
	str("S3_SECRET_KEY", &cfg.S3SecretKey)

	if v, ok := lookup("JWT_EXPIRE_HOURS"); ok && v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_EXPIRE_HOURS %q: %w", v, err)
		}
		cfg.TokenValidityDuration = time.Duration(hours) * time.Hour
	}
	return nil
}
