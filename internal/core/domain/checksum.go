// Package domain defines the core types shared by the checksum engine and the
// comparison workflow.
package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Algorithm identifies a supported checksum algorithm. Values match the
// numbers shown in the algorithm menu.
type Algorithm uint32

const (
	MD5      Algorithm = iota + 1 // 128-bit MD5 digest.
	SHA1                          // 160-bit SHA-1 digest.
	SHA256                        // 256-bit SHA-256 digest.
	Fletcher                      // 32-bit Fletcher checksum (mod 65535).
)

// ErrInvalidSelection is returned for any selector outside the supported set.
var ErrInvalidSelection = errors.New("invalid selection")

// Algorithms lists every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, Fletcher}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= MD5 && a <= Fletcher
}

// String returns the menu label of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	case SHA256:
		return "SHA256"
	case Fletcher:
		return "Fletcher's Checksum"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses an operator supplied selector line. Surrounding
// whitespace and a single leading '+' are ignored. Anything that is not an
// unsigned integer naming a supported algorithm yields ErrInvalidSelection.
func ParseAlgorithm(input string) (Algorithm, error) {
	input = strings.TrimSpace(input)
	if len(input) > 1 && input[0] == '+' && input[1] >= '0' && input[1] <= '9' {
		input = input[1:]
	}

	n, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		return 0, ErrInvalidSelection
	}

	a := Algorithm(n)
	if !a.Valid() {
		return 0, ErrInvalidSelection
	}
	return a, nil
}
