package ports

import "hash"

// Defines an interface for checksum algorithms the engine can dispatch to.
type ChecksumPort interface {
	// Returns a fresh streaming hash for one computation.
	// The returned hash must not be shared between computations.
	New() hash.Hash

	// Returns the digest length in bytes.
	Size() uint8

	// Returns the algorithm name used in logs.
	Name() string
}
