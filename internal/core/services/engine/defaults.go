package engine

import (
	"strings"

	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
)

const (
	DefaultBufferSize    = 32 * 1024 // 32KB
	DefaultMinBufferSize = 4096      // 4KB
	DefaultMaxBufferSize = 16777216  // 16MB
)

// DefaultOptions returns options that hash raw file bytes with a 32KB buffer.
func DefaultOptions() *domain.EngineOptions {
	return &domain.EngineOptions{
		BufferSize:         DefaultBufferSize,
		Decompress:         domain.DecompressNone,
		DecoderConcurrency: compression.DefaultDecoderConcurrency,
	}
}

func prepareDefaults(opts *domain.EngineOptions) *domain.EngineOptions {
	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}

	if strings.TrimSpace(string(opts.Decompress)) == "" {
		opts.Decompress = domain.DecompressNone
	}

	return opts
}
