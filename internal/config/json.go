package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mockinterview/internal/flagx"
	"github.com/dmitrijs2005/mockinterview/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Fields missing from
// the file stay nil/zero and do not override earlier sources.
type JsonConfig struct {
	Environment           *string         `json:"environment"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	QuestionBankFile      *string         `json:"question_bank_file"`
	LogLevel              *string         `json:"log_level"`
	S3Bucket              *string         `json:"s3_bucket"`
	S3Region              *string         `json:"s3_region"`
	S3BaseEndpoint        *string         `json:"s3_base_endpoint"`
	S3AccessKey           *string         `json:"s3_access_key"`
	S3SecretKey           *string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Without that flag nothing happens.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.Environment, jc.Environment)
	set(&cfg.DatabaseDSN, jc.DatabaseDSN)
	set(&cfg.SecretKey, jc.SecretKey)
	set(&cfg.QuestionBankFile, jc.QuestionBankFile)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.S3Bucket, jc.S3Bucket)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	set(&cfg.S3AccessKey, jc.S3AccessKey)
	set(&cfg.S3SecretKey, jc.S3SecretKey)
	if jc.TokenValidityDuration != nil {
		cfg.TokenValidityDuration = jc.TokenValidityDuration.Duration
	}
	return nil
}
