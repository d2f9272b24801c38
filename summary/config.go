package summary

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Config holds generation settings for the summary requester.
type Config struct {
	// APIKey authenticates against the generative-language API. When empty
	// every call fails and the deterministic fallback is always used.
	APIKey string `env:"GEMINI_API_KEY"`

	// Endpoint is the API base URL, overridable for tests.
	Endpoint string `env:"ELEXICO_GENAI_ENDPOINT" envDefault:"https://generativelanguage.googleapis.com"`

	// Models are tried in order: earlier entries are cheaper, later ones
	// are the capable fallbacks.
	Models []string `env:"ELEXICO_GENAI_MODELS" envSeparator:","`

	Temperature float64       `env:"ELEXICO_GENAI_TEMPERATURE" envDefault:"0.7"`
	Timeout     time.Duration `env:"ELEXICO_GENAI_TIMEOUT" envDefault:"30s"`

	// RequestsPerSecond bounds the outbound call rate across candidates.
	// Zero or negative disables the limit.
	RequestsPerSecond float64 `env:"ELEXICO_GENAI_RPS"`
}

// DefaultModels is the built-in candidate order.
func DefaultModels() []string {
	return []string{
		"gemini-2.0-flash-lite",
		"gemini-2.0-flash",
		"gemini-2.5-flash",
		"gemini-2.5-pro",
	}
}

// LoadConfig reads requester settings from the environment, then lets any
// values set in the config file (via viper) take precedence.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, err
	}

	if viper.IsSet("genai.api_key") {
		cfg.APIKey = viper.GetString("genai.api_key")
	}
	if viper.IsSet("genai.endpoint") {
		cfg.Endpoint = viper.GetString("genai.endpoint")
	}
	if viper.IsSet("genai.models") {
		cfg.Models = viper.GetStringSlice("genai.models")
	}
	if viper.IsSet("genai.temperature") {
		cfg.Temperature = viper.GetFloat64("genai.temperature")
	}
	if viper.IsSet("genai.timeout") {
		cfg.Timeout = viper.GetDuration("genai.timeout")
	}
	if viper.IsSet("genai.requests_per_second") {
		cfg.RequestsPerSecond = viper.GetFloat64("genai.requests_per_second")
	}

	if len(cfg.Models) == 0 {
		cfg.Models = DefaultModels()
	}
	return cfg, nil
}
