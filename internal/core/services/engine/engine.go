// Package engine computes checksums of files. It resolves an algorithm to
// its adapter, streams the file through the adapter's hash and renders the
// digest as lowercase hex.
package engine

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/iamNilotpal/checksum/internal/adapters/checksum"
	"github.com/iamNilotpal/checksum/internal/adapters/compression"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/fs"
	"github.com/iamNilotpal/checksum/pkg/pool"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Engine computes checksums of files on a filesystem.
// A single Engine may be reused, but each Compute call is synchronous and
// holds exactly one open file until it returns.
type Engine struct {
	options *domain.EngineOptions   // Buffer size and input decoding.
	fs      afero.Fs                // Filesystem the input files are read from.
	decoder ports.DecompressionPort // Optional input decoder, nil for raw bytes.
	buffers *pool.BufferPool        // Copy buffers for streaming reads.
	log     *zap.SugaredLogger
}

// New creates an engine reading from fsys. A nil opts uses DefaultOptions.
func New(opts *domain.EngineOptions, fsys afero.Fs, log *zap.SugaredLogger) (*Engine, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	decoder, err := compression.New(opts.Decompress, opts.DecoderConcurrency)
	if err != nil {
		return nil, err
	}

	if fsys == nil {
		fsys = fs.NewOsFs()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	e := &Engine{
		fs:      fsys,
		log:     log,
		options: opts,
		decoder: decoder,
		buffers: pool.NewBufferPool(int(opts.BufferSize)),
	}

	decoderName := "none"
	if decoder != nil {
		decoderName = decoder.Name()
	}
	log.Debugw("checksum engine ready", "buffer_size", e.buffers.Size(), "decoder", decoderName)

	return e, nil
}

// Compute returns the lowercase hex checksum of the file at path.
//
// Returns a recoverable selection *errors.ChecksumError wrapping
// domain.ErrInvalidSelection for an unsupported algorithm, and a
// *errors.ChecksumError of category ErrorIO when the file cannot be opened
// or fully read. No partial checksum is ever returned.
func (e *Engine) Compute(algorithm domain.Algorithm, path string) (string, error) {
	adapter, err := checksum.New(algorithm)
	if err != nil {
		return "", err
	}

	h := adapter.New()
	n, err := e.hashFile(h, path)
	if err != nil {
		return "", err
	}

	sum := hex.EncodeToString(h.Sum(nil))
	e.log.Debugw(
		"checksum computed",
		"algorithm", adapter.Name(), "digest_size", adapter.Size(),
		"path", path, "bytes", n, "checksum", sum,
	)

	return sum, nil
}

// hashFile streams the file at path into h and reports how many bytes were hashed.
func (e *Engine) hashFile(h hash.Hash, path string) (n int64, err error) {
	file, err := fs.OpenRegular(e.fs, path)
	if err != nil {
		return 0, errors.NewIOError("open", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = multierr.Append(err, errors.NewIOError("close", path, cerr))
		}
	}()

	var src io.Reader = file
	if e.decoder != nil {
		rc, derr := e.decoder.NewReader(file)
		if derr != nil {
			return 0, errors.NewIOError("decode", path, derr)
		}
		defer rc.Close()
		src = rc
	}

	buf := e.buffers.Get()
	defer e.buffers.Put(buf)

	n, err = io.CopyBuffer(h, src, *buf)
	if err != nil {
		return n, errors.NewIOError("read", path, err)
	}

	return n, nil
}
