package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the knobs the rest of the program reads.
type Config interface {
	BasePath() string
	GeminiAPIKey() string
	GeminiModel() string
	GeminiBaseURL() string
}

// LoadConfig reads the .reflexa config file (current directory or
// REFLEXA_CONFIG_PATH) with REFLEXA_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.reflexa.db")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetConfigName(".reflexa") // .yaml is implicit
	viper.SetEnvPrefix("REFLEXA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("REFLEXA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:    path,
		APIKey:  viper.GetString("gemini.api_key"),
		Model:   viper.GetString("gemini.model"),
		BaseURL: viper.GetString("gemini.base_url"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	APIKey  string `json:"apiKey"`
	Model   string `json:"model"`
	BaseURL string `json:"baseUrl"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) GeminiAPIKey() string {
	return f.APIKey
}

func (f *fileConfig) GeminiModel() string {
	return f.Model
}

func (f *fileConfig) GeminiBaseURL() string {
	return f.BaseURL
}

// StaticConfig is a fixed-value Config, handy for tests and for callers
// that already resolved their paths.
type StaticConfig struct {
	Path    string
	APIKey  string
	Model   string
	BaseURL string
}

func (s StaticConfig) BasePath() string      { return s.Path }
func (s StaticConfig) GeminiAPIKey() string  { return s.APIKey }
func (s StaticConfig) GeminiModel() string   { return s.Model }
func (s StaticConfig) GeminiBaseURL() string { return s.BaseURL }
