package checksum

import (
	"fmt"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/ports"
	"github.com/iamNilotpal/checksum/pkg/errors"
)

// New returns the adapter for the given algorithm.
// Returns a selection *errors.ChecksumError wrapping domain.ErrInvalidSelection
// for anything outside the supported set.
func New(algorithm domain.Algorithm) (ports.ChecksumPort, error) {
	switch algorithm {
	case domain.MD5:
		return NewMD5(), nil
	case domain.SHA1:
		return NewSHA1(), nil
	case domain.SHA256:
		return NewSHA256(), nil
	case domain.Fletcher:
		return NewFletcher32(), nil
	default:
		return nil, errors.NewSelectionError(
			fmt.Errorf("%w: %d", domain.ErrInvalidSelection, uint32(algorithm)),
		)
	}
}
