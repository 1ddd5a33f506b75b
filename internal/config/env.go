package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvFile        = "BM_FILE"
	EnvOutputFile  = "BM_OUTPUT_FILE"
	EnvAtomicWrite = "BM_ATOMIC_WRITE"
	EnvLogLevel    = "BM_LOG_LEVEL"
)

// loadDotEnv loads .env files into the environment. Variables already set
// are not overridden, and missing files are ignored.
func loadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ApplyEnv overrides c with any BM_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvFile); v != "" {
		c.File = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv(EnvAtomicWrite); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvAtomicWrite, v)
		}
		c.AtomicWrite = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}
