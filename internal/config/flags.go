package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/mockinterview/internal/flagx"
)

var ownFlags = []string{"-e", "-d", "-s", "-t", "-q", "-l", "-b", "-g", "-u"}

// parseFlags populates Config fields from command-line flags.
// Token validity is given in whole hours, like JWT_EXPIRE_HOURS.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("trainer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "environment name")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token secret key")
	hours := fs.Int("t", int(cfg.TokenValidityDuration.Hours()), "token validity (in hours)")
	fs.StringVar(&cfg.QuestionBankFile, "q", cfg.QuestionBankFile, "question bank YAML file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for transcript export")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "u", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, ownFlags)); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	// Sub-hour validity coming from JSON survives when -t was not given.
	if set := flagWasSet(fs, "t"); set {
		cfg.TokenValidityDuration = time.Duration(*hours) * time.Hour
	}
	return nil
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
