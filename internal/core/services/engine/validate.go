package engine

import (
	"fmt"

	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/pkg/errors"
)

// Validate checks engine options after defaults have been applied.
func Validate(opts *domain.EngineOptions) error {
	if err := ValidateBufferSize(opts.BufferSize); err != nil {
		return errors.NewValidationError("buffer_size", opts.BufferSize, err)
	}

	if err := compression.Validate(opts.Decompress, opts.DecoderConcurrency); err != nil {
		return errors.NewValidationError("decompress", opts.Decompress, err)
	}

	return nil
}

// ValidateBufferSize checks that size is a power of two between 4KB and 16MB.
func ValidateBufferSize(size uint32) error {
	if size < DefaultMinBufferSize {
		return fmt.Errorf("buffer size must be at least 4KB (4096 bytes), got %d bytes", size)
	}

	if size > DefaultMaxBufferSize {
		return fmt.Errorf("buffer size must not exceed 16MB (16777216 bytes), got %d bytes", size)
	}

	if size&(size-1) != 0 {
		return fmt.Errorf("buffer size must be a power of 2, got %d bytes", size)
	}

	return nil
}
