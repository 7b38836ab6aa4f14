// Package config loads runtime configuration for the interview trainer.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory plus the process environment.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything above.
//
// Environment variables
//
//	APP_ENV             development | production | ...
//	DATABASE_DSN        SQLite path or postgres:// URL
//	JWT_SECRET_KEY      HMAC secret for tokens
//	JWT_EXPIRE_HOURS    token validity, whole hours
//	QUESTION_BANK_FILE  YAML question bank replacing the built-in one
//	LOG_LEVEL           debug | info | warn | error
//	S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY
//
// Supported flags
//
//	-e string   environment name
//	-d string   database DSN
//	-s string   token secret key
//	-t int      token validity (hours)
//	-q string   question bank YAML file
//	-l string   log level
//	-b string   S3 bucket for transcript export
//	-g string   S3 region
//	-u string   S3 base endpoint
//
// # JSON schema
//
//	{
//	  "environment": "production",
//	  "database_dsn": "postgres://trainer@db/trainer",
//	  "secret_key": "...",
//	  "token_validity_duration": "1h",
//	  "question_bank_file": "questions.yaml",
//	  "log_level": "info",
//	  "s3_bucket": "transcripts", "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/",
//	  "s3_access_key": "...", "s3_secret_key": "..."
//	}
//
// The built-in secret is intentionally weak; Validate refuses it outside development.
package config
