package config

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/services/engine"
	"github.com/iamNilotpal/checksum/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel           string               `yaml:"log_level"`           // debug, info, warn or error
	BufferSize         uint32               `yaml:"buffer_size"`         // Size of copy buffers
	Decompress         domain.Decompression `yaml:"decompress"`          // none or zstd
	DecoderConcurrency uint8                `yaml:"decoder_concurrency"` // zstd decoder goroutines
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:           "info",
		BufferSize:         engine.DefaultBufferSize,
		Decompress:         domain.DecompressNone,
		DecoderConcurrency: compression.DefaultDecoderConcurrency,
	}
}

// Loads configuration from a YAML file. Keys missing from the file keep
// their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewConfigError("read", filename, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.NewConfigError("parse", filename, err)
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.NewConfigError("validate", filename, err)
	}

	return config, nil
}

// EngineOptions converts the configuration into checksum engine options.
func (c *Config) EngineOptions() *domain.EngineOptions {
	return &domain.EngineOptions{
		BufferSize:         c.BufferSize,
		Decompress:         c.Decompress,
		DecoderConcurrency: c.DecoderConcurrency,
	}
}

func validateConfig(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError(
			"log_level", config.LogLevel, fmt.Errorf("log_level must be one of debug, info, warn, error"),
		)
	}

	if err := engine.ValidateBufferSize(config.BufferSize); err != nil {
		return errors.NewValidationError("buffer_size", config.BufferSize, err)
	}

	if err := compression.Validate(config.Decompress, config.DecoderConcurrency); err != nil {
		return errors.NewValidationError("decompress", config.Decompress, err)
	}

	return nil
}
