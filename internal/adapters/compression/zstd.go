// Package compression provides input decoders for the checksum engine.
// The zstd decoder lets the engine hash the content of a compressed file
// without writing the decompressed bytes anywhere.
package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ZstdDecompression implements DecompressionPort using the zstd algorithm.
// Every call to NewReader creates an independent streaming decoder, so a
// single instance can serve several computations one after another.
type ZstdDecompression struct {
	concurrency uint8 // Goroutines each decoder may use, 0 lets zstd decide.
}

// NewZstdDecompression creates a zstd decoder factory.
//
// Returns an error if concurrency is outside the allowed range.
func NewZstdDecompression(concurrency uint8) (*ZstdDecompression, error) {
	if err := validateConcurrency(concurrency); err != nil {
		return nil, err
	}
	return &ZstdDecompression{concurrency: concurrency}, nil
}

// NewReader returns a reader that yields the decompressed content of r.
// Corrupt input surfaces as an error from Read, not from NewReader.
func (z *ZstdDecompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	opts := []zstd.DOption{zstd.WithDecoderLowmem(true)}
	if z.concurrency > 0 {
		opts = append(opts, zstd.WithDecoderConcurrency(int(z.concurrency)))
	}

	decoder, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return decoder.IOReadCloser(), nil
}

func (z *ZstdDecompression) Name() string {
	return "zstd"
}
