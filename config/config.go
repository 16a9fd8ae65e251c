// Package config resolves review console configuration from defaults, an
// optional YAML file, and environment variables, in increasing priority.
// A .env file in the working directory is loaded into the environment first.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to upper-cased key names for environment lookup:
// key "api_url" maps to REVIEWDESK_API_URL.
const EnvPrefix = "REVIEWDESK_"

// Configuration keys.
const (
	KeyAPIURL               = "api_url"
	KeyTimeout              = "timeout"
	KeyLogLevel             = "log_level"
	KeyLogFormat            = "log_format"
	KeyOriginContainer      = "origin_container"
	KeyDestinationContainer = "destination_container"
)

func defaults() map[string]string {
	return map[string]string{
		KeyAPIURL:               "http://localhost:8000",
		KeyTimeout:              "30s",
		KeyLogLevel:             "info",
		KeyLogFormat:            "console",
		KeyOriginContainer:      "audio-files",
		KeyDestinationContainer: "transcripts",
	}
}

// Config is the resolved review console configuration.
type Config struct {
	// APIURL is the review backend root.
	APIURL string

	// Timeout bounds each backend call. There is no retry; a timed-out
	// call is surfaced as a failure.
	Timeout time.Duration

	// LogLevel and LogFormat configure the structured logger.
	LogLevel  string
	LogFormat string

	// OriginContainer and DestinationContainer are the job form defaults.
	OriginContainer      string
	DestinationContainer string
}

// Load resolves configuration. path names an optional YAML file; a missing
// file is not an error, a malformed one is.
func Load(path string) (*Config, error) {
	// Populate the environment from .env when present.
	_ = godotenv.Load()

	values := defaults()

	if path != "" {
		if err := applyFile(values, path); err != nil {
			return nil, err
		}
	}

	applyEnv(values)

	timeout, err := time.ParseDuration(values[KeyTimeout])
	if err != nil {
		return nil, fmt.Errorf("config: invalid timeout %q: %w", values[KeyTimeout], err)
	}

	return &Config{
		APIURL:               values[KeyAPIURL],
		Timeout:              timeout,
		LogLevel:             values[KeyLogLevel],
		LogFormat:            values[KeyLogFormat],
		OriginContainer:      values[KeyOriginContainer],
		DestinationContainer: values[KeyDestinationContainer],
	}, nil
}

func applyFile(values map[string]string, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	for key, value := range parsed {
		if _, known := values[key]; !known {
			continue
		}
		if str := toString(value); str != "" {
			values[key] = str
		}
	}

	return nil
}

func applyEnv(values map[string]string) {
	for key := range values {
		envKey := EnvPrefix + strings.ToUpper(key)
		if value := os.Getenv(envKey); value != "" {
			values[key] = value
		}
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}
