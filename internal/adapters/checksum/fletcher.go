package checksum

import (
	"encoding/binary"
	"hash"
)

// fletcherMod is the modulus for both running sums. It is 65535, not 65536,
// so results match other Fletcher-32 implementations of this variant.
const fletcherMod = 65535

// Size of a Fletcher-32 checksum in bytes.
const FletcherSize = 4

type fletcher32 struct {
	name string
}

func NewFletcher32() *fletcher32 {
	return &fletcher32{name: "fletcher32"}
}

func (f *fletcher32) New() hash.Hash {
	return NewFletcherDigest()
}

func (f *fletcher32) Size() uint8 {
	return FletcherSize
}

func (f *fletcher32) Name() string {
	return f.name
}

// FletcherDigest is a streaming Fletcher-32 checksum over single bytes.
// It implements hash.Hash32. Sum appends the checksum as 4 big-endian bytes,
// (sum2 << 16) | sum1, so hex encoding yields 8 zero-padded digits.
type FletcherDigest struct {
	sum1 uint32
	sum2 uint32
}

// NewFletcherDigest returns a digest with both sums at zero.
func NewFletcherDigest() *FletcherDigest {
	return &FletcherDigest{}
}

// Write folds p into the running sums in order. It never fails.
func (d *FletcherDigest) Write(p []byte) (int, error) {
	sum1, sum2 := d.sum1, d.sum2
	for _, b := range p {
		sum1 = (sum1 + uint32(b)) % fletcherMod
		sum2 = (sum2 + sum1) % fletcherMod
	}
	d.sum1, d.sum2 = sum1, sum2
	return len(p), nil
}

func (d *FletcherDigest) Sum32() uint32 {
	return d.sum2<<16 | d.sum1
}

func (d *FletcherDigest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

func (d *FletcherDigest) Reset() {
	d.sum1, d.sum2 = 0, 0
}

func (d *FletcherDigest) Size() int {
	return FletcherSize
}

func (d *FletcherDigest) BlockSize() int {
	return 1
}

// Fletcher32 returns the Fletcher-32 checksum of data.
func Fletcher32(data []byte) uint32 {
	d := NewFletcherDigest()
	d.Write(data)
	return d.Sum32()
}
