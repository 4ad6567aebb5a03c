package ports

import "io"

// Defines the interface for decoding compressed input before it is hashed.
// This allows the engine to add input formats without changing core logic.
type DecompressionPort interface {
	// NewReader wraps r and returns a reader over the decoded content.
	// The caller must close the returned reader; closing it does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// Name returns the decoder name used in logs.
	Name() string
}
