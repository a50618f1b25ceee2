package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	LogLevel    string
	LogFile     string
	Environment string
	SentryDSN   string

	// AWS. Empty keys fall back to the SDK default credential chain, which
	// also honors AWS_ENDPOINT_URL and AWS_PROFILE.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string

	// Provider defaults
	DefaultOutputBucket string
	DefaultVoiceID      string
	DefaultEngine       string
	PIILanguageCode     string

	// Upper bound for a single provider call
	ProviderTimeout time.Duration

	// Optional directory holding index.html and frontend assets
	StaticDir string
}

// LoadConfigFromEnv reads configuration from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win.
func LoadConfigFromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFile:     getenv("LOG_FILE", ""),
		Environment: getenv("ENVIRONMENT", "development"),
		SentryDSN:   getenv("SENTRY_DSN", ""),

		AWSRegion:          getenv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSSessionToken:    os.Getenv("AWS_SESSION_TOKEN"),

		DefaultOutputBucket: getenv("DEFAULT_OUTPUT_BUCKET", ""), // no default, must be configured or sent per request
		DefaultVoiceID:      getenv("DEFAULT_VOICE_ID", "Joanna"),
		DefaultEngine:       getenv("DEFAULT_ENGINE", "neural"),
		PIILanguageCode:     getenv("PII_LANGUAGE_CODE", "en"),

		ProviderTimeout: getenvDurationClamped("PROVIDER_TIMEOUT", 30*time.Second, time.Second, 5*time.Minute),

		StaticDir: getenv("STATIC_DIR", ""),
	}
}

// HasStaticCredentials reports whether explicit access keys were configured.
func (c Config) HasStaticCredentials() bool {
	return c.AWSAccessKeyID != "" && c.AWSSecretAccessKey != ""
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getenvIntClamped returns an int from env, clamped to [min, max].
func getenvIntClamped(k string, def, min, max int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// getenvDurationClamped parses a Go duration ("30s") or a bare number of
// seconds, clamped to [min, max].
func getenvDurationClamped(k string, def, min, max time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		secs := getenvIntClamped(k, -1, 0, int(max/time.Second))
		if secs < 0 {
			return def
		}
		d = time.Duration(secs) * time.Second
	}
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}
