package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestStageErrorIs(t *testing.T) {
	tests := []struct {
		name         string
		err          *StageError
		wantKind     error
		notKind      error
		wantProvider bool
	}{
		{
			name:     "route no match",
			err:      &StageError{Kind: ErrRouteNotFound, Subject: "Blue", Err: ErrNoMatch},
			wantKind: ErrRouteNotFound,
			notKind:  ErrStopNotFound,
		},
		{
			name:         "stop provider failure",
			err:          &StageError{Kind: ErrStopNotFound, Subject: "Target", Err: fmt.Errorf("GET /Stops: %w", ErrProviderUnavailable)},
			wantKind:     ErrStopNotFound,
			notKind:      ErrRouteNotFound,
			wantProvider: true,
		},
		{
			name:     "departure bad timestamp",
			err:      &StageError{Kind: ErrDepartureNotFound, Err: ErrBadTimestamp},
			wantKind: ErrDepartureNotFound,
			notKind:  ErrDirectionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error = fmt.Errorf("run: %w", tt.err)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("expected errors.Is(%v, %v)", err, tt.wantKind)
			}
			if errors.Is(err, tt.notKind) {
				t.Fatalf("did not expect errors.Is(%v, %v)", err, tt.notKind)
			}
			if !errors.Is(err, tt.err.Err) {
				t.Fatalf("expected cause %v to be reachable", tt.err.Err)
			}
			if got := tt.err.ProviderFailure(); got != tt.wantProvider {
				t.Fatalf("ProviderFailure() = %v, want %v", got, tt.wantProvider)
			}
		})
	}
}

func TestStageErrorMessage(t *testing.T) {
	err := &StageError{Kind: ErrRouteNotFound, Subject: "Purple", Err: ErrNoMatch}
	want := `route not found "Purple": no candidate matched`
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestStageString(t *testing.T) {
	if got := StageStopResolved.String(); got != "stop_resolved" {
		t.Fatalf("String() = %q", got)
	}
	if got := Stage(42).String(); got != "unknown" {
		t.Fatalf("String() = %q", got)
	}
}

func TestLabels(t *testing.T) {
	cs := []Candidate{{Label: "b", ID: "2"}, {Label: "a", ID: "1"}}
	got := Labels(cs)
	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("Labels() = %v", got)
	}
}
