package checksum

import (
	sha256_lib "crypto/sha256"
	"hash"
)

type sha256 struct {
	name string
}

func NewSHA256() *sha256 {
	return &sha256{name: "sha256"}
}

func (s *sha256) New() hash.Hash {
	return sha256_lib.New()
}

func (s *sha256) Size() uint8 {
	return sha256_lib.Size
}

func (s *sha256) Name() string {
	return s.name
}
