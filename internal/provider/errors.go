package provider

import (
	"fmt"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// Error describes a failed provider request. It always matches
// types.ErrProviderUnavailable through errors.Is.
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d from %s: %v", e.StatusCode, e.URL, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
}

func (e *Error) Is(target error) bool {
	return target == types.ErrProviderUnavailable
}

func (e *Error) Unwrap() error { return e.Err }
