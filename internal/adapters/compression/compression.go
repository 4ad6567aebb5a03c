package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
)

// DefaultDecoderConcurrency keeps decoding on one goroutine, matching the
// sequential read of the input file.
const DefaultDecoderConcurrency uint8 = 1

// New returns the decoder for the requested mode, or nil when the input
// should be hashed as is.
func New(mode domain.Decompression, concurrency uint8) (ports.DecompressionPort, error) {
	switch mode {
	case "", domain.DecompressNone:
		return nil, nil
	case domain.DecompressZstd:
		z, err := NewZstdDecompression(concurrency)
		if err != nil {
			return nil, err
		}
		return z, nil
	default:
		return nil, fmt.Errorf("unsupported decompression: %s", mode)
	}
}

// Validate checks the decompression mode and decoder concurrency.
func Validate(mode domain.Decompression, concurrency uint8) error {
	switch mode {
	case "", domain.DecompressNone, domain.DecompressZstd:
	default:
		return fmt.Errorf("unsupported decompression: %s", mode)
	}
	return validateConcurrency(concurrency)
}

func validateConcurrency(concurrency uint8) error {
	if int(concurrency) > runtime.NumCPU() {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), concurrency,
		)
	}
	return nil
}
