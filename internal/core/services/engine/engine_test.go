package engine

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	cserrors "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(t *testing.T, opts *domain.EngineOptions, files map[string][]byte) *Engine {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, data := range files {
		if err := afero.WriteFile(fsys, name, data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	e, err := New(opts, fsys, zaptest.NewLogger(t).Sugar())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestComputeKnownVectors(t *testing.T) {
	e := newTestEngine(t, nil, map[string][]byte{
		"/abc.txt":   []byte("abc"),
		"/empty.bin": {},
		"/pair.bin":  {1, 2},
	})

	tests := []struct {
		algorithm domain.Algorithm
		path      string
		want      string
	}{
		{domain.MD5, "/abc.txt", "900150983cd24fb0d6963f7d28e17f72"},
		{domain.SHA1, "/abc.txt", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{domain.SHA256, "/abc.txt", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{domain.Fletcher, "/pair.bin", "00040003"},
		{domain.Fletcher, "/empty.bin", "00000000"},
		{domain.MD5, "/empty.bin", "d41d8cd98f00b204e9800998ecf8427e"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm.String()+tt.path, func(t *testing.T) {
			got, err := e.Compute(tt.algorithm, tt.path)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compute = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeLargeFileStreamsAcrossBuffers(t *testing.T) {
	data := bytes.Repeat([]byte{0xFF}, 257)
	data = append(bytes.Repeat(data, 100), 0x02)

	e := newTestEngine(t, &domain.EngineOptions{BufferSize: DefaultMinBufferSize}, map[string][]byte{
		"/big.bin": data,
	})

	// 100 blocks of 257 x 0xFF each leave both sums at zero.
	got, err := e.Compute(domain.Fletcher, "/big.bin")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got != "00020002" {
		t.Errorf("Compute = %s, want 00020002", got)
	}
}

func TestComputeDeterministic(t *testing.T) {
	e := newTestEngine(t, nil, map[string][]byte{"/f": []byte("repeatable")})

	first, err := e.Compute(domain.Fletcher, "/f")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if got, _ := e.Compute(domain.Fletcher, "/f"); got != first {
			t.Fatalf("run %d: %s != %s", i, got, first)
		}
	}
	if len(first) != 8 {
		t.Errorf("fletcher hex length = %d, want 8", len(first))
	}
}

func TestComputeInvalidAlgorithm(t *testing.T) {
	e := newTestEngine(t, nil, map[string][]byte{"/f": {1}})

	for _, a := range []domain.Algorithm{0, 5} {
		_, err := e.Compute(a, "/f")
		if !errors.Is(err, domain.ErrInvalidSelection) {
			t.Errorf("Compute(%d) error = %v, want ErrInvalidSelection", a, err)
		}
		if cserrors.IsIOError(err) {
			t.Errorf("Compute(%d) must not report an io error", a)
		}
	}
}

func TestComputeIOFailures(t *testing.T) {
	dir := t.TempDir()
	e, err := New(nil, nil, zaptest.NewLogger(t).Sugar())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		is   error
	}{
		{"missing file", filepath.Join(dir, "missing.bin"), iofs.ErrNotExist},
		{"directory", dir, nil},
		{"empty path", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := e.Compute(domain.SHA256, tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if sum != "" {
				t.Errorf("partial checksum returned: %q", sum)
			}
			if !cserrors.IsIOError(err) {
				t.Errorf("error %v is not an io error", err)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error %v does not wrap %v", err, tt.is)
			}
		})
	}
}

func TestComputePermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	path := filepath.Join(t.TempDir(), "secret.bin")
	if err := os.WriteFile(path, []byte{1}, 0o000); err != nil {
		t.Fatal(err)
	}

	e, err := New(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = e.Compute(domain.MD5, path)
	if !errors.Is(err, iofs.ErrPermission) {
		t.Fatalf("error = %v, want ErrPermission", err)
	}
}

func TestComputeZstdInput(t *testing.T) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := encoder.EncodeAll([]byte("abc"), nil)
	encoder.Close()

	e := newTestEngine(t, &domain.EngineOptions{Decompress: domain.DecompressZstd}, map[string][]byte{
		"/abc.zst":  compressed,
		"/junk.zst": []byte("not a zstd frame"),
	})

	got, err := e.Compute(domain.SHA256, "/abc.zst")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"; got != want {
		t.Errorf("Compute = %s, want %s", got, want)
	}

	if _, err := e.Compute(domain.SHA256, "/junk.zst"); !cserrors.IsIOError(err) {
		t.Errorf("corrupt zstd input: error = %v, want io error", err)
	}
}

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  *domain.EngineOptions
		field string
	}{
		{"buffer too small", &domain.EngineOptions{BufferSize: 1024}, "buffer_size"},
		{"buffer not power of two", &domain.EngineOptions{BufferSize: 5000}, "buffer_size"},
		{"buffer too large", &domain.EngineOptions{BufferSize: 32 << 20}, "buffer_size"},
		{"unknown decompression", &domain.EngineOptions{Decompress: "lz4"}, "decompress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts, afero.NewMemMapFs(), nil)
			ve := cserrors.AsValidationError(err)
			if ve == nil {
				t.Fatalf("error = %v, want a validation error", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %s, want %s", ve.Field, tt.field)
			}
		})
	}
}

func TestDebugLogsDescribeComputation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fsys := afero.NewMemMapFs()
	afero.WriteFile(fsys, "/pair.bin", []byte{1, 2}, 0o644)

	e, err := New(nil, fsys, zap.New(core).Sugar())
	if err != nil {
		t.Fatal(err)
	}

	ready := logs.FilterMessage("checksum engine ready").All()
	if len(ready) != 1 {
		t.Fatalf("got %d ready entries, want 1", len(ready))
	}
	fields := ready[0].ContextMap()
	if fields["buffer_size"] != int64(DefaultBufferSize) || fields["decoder"] != "none" {
		t.Errorf("unexpected ready fields: %v", fields)
	}

	if _, err := e.Compute(domain.Fletcher, "/pair.bin"); err != nil {
		t.Fatal(err)
	}

	computed := logs.FilterMessage("checksum computed").All()
	if len(computed) != 1 {
		t.Fatalf("got %d computed entries, want 1", len(computed))
	}
	fields = computed[0].ContextMap()
	if fields["algorithm"] != "fletcher32" || fields["digest_size"] != uint8(4) || fields["checksum"] != "00040003" {
		t.Errorf("unexpected computed fields: %v", fields)
	}
}

func TestDecoderNameLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	if _, err := New(&domain.EngineOptions{Decompress: domain.DecompressZstd}, afero.NewMemMapFs(), zap.New(core).Sugar()); err != nil {
		t.Fatal(err)
	}

	ready := logs.FilterMessage("checksum engine ready").All()
	if len(ready) != 1 || ready[0].ContextMap()["decoder"] != "zstd" {
		t.Fatalf("unexpected ready entries: %v", ready)
	}
}
