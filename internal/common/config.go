package common

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Template TemplateConfig `toml:"template"`
	Server   ServerConfig   `toml:"server"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// LLMConfig holds model-related configuration
type LLMConfig struct {
	APIKey      string   `toml:"api_key"`
	Model       string   `toml:"model"`
	BaseURL     string   `toml:"base_url"`
	Temperature float32  `toml:"temperature"`
	Timeout     Duration `toml:"timeout"`
}

// Duration reads "45s" style values from TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// TemplateConfig locates the blank scorecard workbook. A local path wins
// over S3.
type TemplateConfig struct {
	Path      string `toml:"path"`
	S3Bucket  string `toml:"s3_bucket"`
	S3Key     string `toml:"s3_key"`
	AWSRegion string `toml:"aws_region"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string `toml:"http_addr"`
}

type OutputConfig struct {
	Dir string `toml:"dir"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:       "gpt-4o",
			BaseURL:     "https://api.openai.com/v1",
			Temperature: 0,
			Timeout:     Duration(60 * time.Second),
		},
		Template: TemplateConfig{
			S3Key: "templates/Scorecard - Blank v1 streamlit.xlsx",
		},
		Server: ServerConfig{HTTPAddr: ":8080"},
		Output: OutputConfig{Dir: os.TempDir()},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadConfig layers defaults, then the TOML file at path (skipped when path
// is empty), then the environment. A .env file in the working directory is
// loaded first; variables already set win over it.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", c.LLM.APIKey)
	c.LLM.Model = getEnv("OPENAI_MODEL", c.LLM.Model)
	c.LLM.BaseURL = getEnv("OPENAI_BASE_URL", c.LLM.BaseURL)
	c.LLM.Temperature = getEnvAsFloat32("OPENAI_TEMPERATURE", c.LLM.Temperature)
	c.LLM.Timeout = Duration(getEnvAsDuration("OPENAI_TIMEOUT", time.Duration(c.LLM.Timeout)))

	c.Template.Path = getEnv("TEMPLATE_PATH", c.Template.Path)
	c.Template.S3Bucket = getEnv("S3_BUCKET_NAME", c.Template.S3Bucket)
	c.Template.S3Key = getEnv("TEMPLATE_S3_KEY", c.Template.S3Key)
	c.Template.AWSRegion = getEnv("AWS_REGION", c.Template.AWSRegion)

	c.Output.Dir = getEnv("OUTPUT_DIR", c.Output.Dir)
	c.Server.HTTPAddr = getEnv("HTTP_ADDR", c.Server.HTTPAddr)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the settings a scorecard build needs.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return InvalidArgument("OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Template.Path == "" && c.Template.S3Bucket == "" {
		return InvalidArgument("TEMPLATE_PATH or S3_BUCKET_NAME is required", ErrInvalidInput)
	}
	if c.Template.Path == "" && c.Template.S3Key == "" {
		return InvalidArgument("TEMPLATE_S3_KEY is required with S3_BUCKET_NAME", ErrInvalidInput)
	}
	return nil
}
