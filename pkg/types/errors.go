package types

import (
	"errors"
	"fmt"
	"strings"
)

// Stage error kinds. Every resolution failure matches exactly one of these
// through errors.Is.
var (
	ErrRouteNotFound     = errors.New("route not found")
	ErrDirectionNotFound = errors.New("direction not found")
	ErrStopNotFound      = errors.New("stop not found")
	ErrDepartureNotFound = errors.New("departure not found")
)

// Causes wrapped by a StageError.
var (
	ErrNoMatch             = errors.New("no candidate matched")
	ErrNoDepartures        = errors.New("no departures listed")
	ErrBadTimestamp        = errors.New("malformed departure timestamp")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// StageError reports a failed pipeline stage. Kind is one of the
// Err*NotFound sentinels, Subject is the user text (after normalization)
// that could not be resolved, and Err is the underlying cause.
type StageError struct {
	Kind    error
	Subject string
	// Candidates holds every label the provider offered when nothing
	// matched. It is only populated for stop lookups.
	Candidates []string
	Err        error
}

func (e *StageError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Subject != "" {
		fmt.Fprintf(&b, " %q", e.Subject)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports whether target is the stage kind, so callers can write
// errors.Is(err, types.ErrStopNotFound).
func (e *StageError) Is(target error) bool {
	return target == e.Kind
}

func (e *StageError) Unwrap() error { return e.Err }

// ProviderFailure reports whether the stage failed because the provider
// could not be reached or returned something unusable, as opposed to the
// provider answering without a match.
func (e *StageError) ProviderFailure() bool {
	return errors.Is(e.Err, ErrProviderUnavailable)
}
