package domain

// Decompression selects how the input file is decoded before it is hashed.
type Decompression string

const (
	// DecompressNone hashes the raw file bytes.
	DecompressNone Decompression = "none"

	// DecompressZstd hashes the content of a zstd compressed file.
	DecompressZstd Decompression = "zstd"
)

// EngineOptions configures how the checksum engine reads its input.
type EngineOptions struct {
	// BufferSize is the size of each pooled copy buffer in bytes.
	// Must be a power of two between 4KB and 16MB.
	//
	// Default: 32KB
	BufferSize uint32

	// Decompress controls input decoding. Anything other than DecompressNone
	// changes what bytes the checksum covers, so it is opt-in.
	//
	// Default: DecompressNone
	Decompress Decompression

	// DecoderConcurrency is the number of goroutines the zstd decoder may use.
	// Zero lets the decoder pick.
	//
	// Default: 1
	DecoderConcurrency uint8
}
