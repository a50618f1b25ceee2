package app

import (
	"os"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		defValue string
		want     string
	}{
		{
			name:     "env set",
			envKey:   "TEST_ENV_VAR",
			envValue: "custom_value",
			defValue: "default",
			want:     "custom_value",
		},
		{
			name:     "env not set",
			envKey:   "TEST_ENV_VAR_NOTSET",
			envValue: "",
			defValue: "default",
			want:     "default",
		},
		{
			name:     "empty default",
			envKey:   "TEST_ENV_VAR_EMPTY",
			envValue: "",
			defValue: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.envKey, tt.envValue)
				defer os.Unsetenv(tt.envKey)
			}

			got := getenv(tt.envKey, tt.defValue)
			if got != tt.want {
				t.Errorf("getenv(%q, %q) = %q, want %q", tt.envKey, tt.defValue, got, tt.want)
			}
		})
	}
}

func TestGetenvIntClamped(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		def      int
		min      int
		max      int
		want     int
	}{
		{
			name:     "value within range",
			envKey:   "TEST_INT_NORMAL",
			envValue: "500",
			def:      100,
			min:      0,
			max:      1000,
			want:     500,
		},
		{
			name:     "value below min - clamp to min",
			envKey:   "TEST_INT_LOW",
			envValue: "-100",
			def:      100,
			min:      0,
			max:      1000,
			want:     0,
		},
		{
			name:     "value above max - clamp to max",
			envKey:   "TEST_INT_HIGH",
			envValue: "2000",
			def:      100,
			min:      0,
			max:      1000,
			want:     1000,
		},
		{
			name:     "env not set - use default",
			envKey:   "TEST_INT_NOTSET",
			envValue: "",
			def:      100,
			min:      0,
			max:      1000,
			want:     100,
		},
		{
			name:     "invalid value - use default",
			envKey:   "TEST_INT_INVALID",
			envValue: "not_a_number",
			def:      100,
			min:      0,
			max:      1000,
			want:     100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.envKey, tt.envValue)
				defer os.Unsetenv(tt.envKey)
			}

			got := getenvIntClamped(tt.envKey, tt.def, tt.min, tt.max)
			if got != tt.want {
				t.Errorf("getenvIntClamped(%q, %d, %d, %d) = %d, want %d",
					tt.envKey, tt.def, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestGetenvDurationClamped(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		want     time.Duration
	}{
		{
			name:     "go duration",
			envKey:   "TEST_DUR_GO",
			envValue: "45s",
			want:     45 * time.Second,
		},
		{
			name:     "bare seconds",
			envKey:   "TEST_DUR_SECS",
			envValue: "90",
			want:     90 * time.Second,
		},
		{
			name:     "below min - clamp to min",
			envKey:   "TEST_DUR_LOW",
			envValue: "10ms",
			want:     time.Second,
		},
		{
			name:     "above max - clamp to max",
			envKey:   "TEST_DUR_HIGH",
			envValue: "1h",
			want:     5 * time.Minute,
		},
		{
			name:     "invalid value - use default",
			envKey:   "TEST_DUR_INVALID",
			envValue: "soon",
			want:     30 * time.Second,
		},
		{
			name:     "env not set - use default",
			envKey:   "TEST_DUR_NOTSET",
			envValue: "",
			want:     30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.envKey, tt.envValue)
				defer os.Unsetenv(tt.envKey)
			}

			got := getenvDurationClamped(tt.envKey, 30*time.Second, time.Second, 5*time.Minute)
			if got != tt.want {
				t.Errorf("getenvDurationClamped(%q) = %v, want %v", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	keysToClean := []string{
		"HTTP_ADDR", "LOG_LEVEL", "LOG_FILE", "AWS_REGION",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"DEFAULT_OUTPUT_BUCKET", "DEFAULT_VOICE_ID", "DEFAULT_ENGINE",
		"PII_LANGUAGE_CODE", "PROVIDER_TIMEOUT", "STATIC_DIR",
	}
	for _, key := range keysToClean {
		os.Unsetenv(key)
	}

	cfg := LoadConfigFromEnv()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("AWSRegion = %q, want %q", cfg.AWSRegion, "us-east-1")
	}
	if cfg.DefaultOutputBucket != "" {
		t.Errorf("DefaultOutputBucket = %q, want empty (no hardcoded bucket)", cfg.DefaultOutputBucket)
	}
	if cfg.DefaultVoiceID != "Joanna" {
		t.Errorf("DefaultVoiceID = %q, want %q", cfg.DefaultVoiceID, "Joanna")
	}
	if cfg.DefaultEngine != "neural" {
		t.Errorf("DefaultEngine = %q, want %q", cfg.DefaultEngine, "neural")
	}
	if cfg.PIILanguageCode != "en" {
		t.Errorf("PIILanguageCode = %q, want %q", cfg.PIILanguageCode, "en")
	}
	if cfg.ProviderTimeout != 30*time.Second {
		t.Errorf("ProviderTimeout = %v, want %v", cfg.ProviderTimeout, 30*time.Second)
	}
	if cfg.HasStaticCredentials() {
		t.Error("HasStaticCredentials() = true, want false with no keys set")
	}
}

func TestLoadConfigFromEnvCustomValues(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("AWS_REGION", "eu-west-1")
	os.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	os.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	os.Setenv("DEFAULT_OUTPUT_BUCKET", "speech-out")
	os.Setenv("PROVIDER_TIMEOUT", "10s")

	defer func() {
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("AWS_REGION")
		os.Unsetenv("AWS_ACCESS_KEY_ID")
		os.Unsetenv("AWS_SECRET_ACCESS_KEY")
		os.Unsetenv("DEFAULT_OUTPUT_BUCKET")
		os.Unsetenv("PROVIDER_TIMEOUT")
	}()

	cfg := LoadConfigFromEnv()

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.AWSRegion != "eu-west-1" {
		t.Errorf("AWSRegion = %q, want %q", cfg.AWSRegion, "eu-west-1")
	}
	if cfg.DefaultOutputBucket != "speech-out" {
		t.Errorf("DefaultOutputBucket = %q, want %q", cfg.DefaultOutputBucket, "speech-out")
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Errorf("ProviderTimeout = %v, want %v", cfg.ProviderTimeout, 10*time.Second)
	}
	if !cfg.HasStaticCredentials() {
		t.Error("HasStaticCredentials() = false, want true")
	}
}
