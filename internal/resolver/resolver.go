// Package resolver turns a (route, direction, stop) text query into the
// minutes until the next departure. It runs four lookups in order, each one
// consuming the identifier produced by the previous one:
//
//	route name            -> route ID
//	route ID + direction  -> direction ID
//	+ stop name           -> stop ID
//	+ stop ID             -> minutes until the first listed departure
//
// Any failed lookup ends the run with a *types.StageError; later lookups
// are never attempted.
package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/nextrip/internal/provider"
	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// Provider supplies candidate lists and departures. *provider.Client
// implements it.
type Provider interface {
	Routes(ctx context.Context) ([]types.Candidate, error)
	Directions(ctx context.Context, routeID string) ([]types.Candidate, error)
	Stops(ctx context.Context, routeID, directionID string) ([]types.Candidate, error)
	Departures(ctx context.Context, routeID, directionID, stopID string) ([]types.Departure, error)
}

// Query is the user's request. Fields hold free text as typed.
type Query struct {
	Route     string
	Direction string
	Stop      string
}

// Result is a completed pipeline run.
type Result struct {
	RunID       string
	RouteID     string
	DirectionID string
	StopID      string
	Departure   types.Departure
	Minutes     int
}

// Resolver runs lookups against a Provider.
type Resolver struct {
	provider Provider
	log      *zap.Logger
	now      func() time.Time
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// New creates a Resolver backed by p.
func New(p Provider, opts ...Option) *Resolver {
	r := &Resolver{provider: p, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves q end to end. On failure the returned error is a
// *types.StageError and the Result is zero.
func (r *Resolver) Run(ctx context.Context, q Query) (Result, error) {
	ctx, runID, log := r.startRun(ctx)

	stage := types.StageStart
	fail := func(err error) (Result, error) {
		logFailure(log, stage, err)
		return Result{}, err
	}

	routeID, err := r.RouteID(ctx, q.Route)
	if err != nil {
		return fail(err)
	}
	stage = types.StageRouteResolved
	log.Debug("route resolved", zap.String("query", q.Route), zap.String("route_id", routeID))

	directionID, err := r.DirectionID(ctx, routeID, q.Direction)
	if err != nil {
		return fail(err)
	}
	stage = types.StageDirectionResolved
	log.Debug("direction resolved", zap.String("query", q.Direction), zap.String("direction_id", directionID))

	stopID, err := r.StopID(ctx, routeID, directionID, q.Stop)
	if err != nil {
		return fail(err)
	}
	stage = types.StageStopResolved
	log.Debug("stop resolved", zap.String("query", q.Stop), zap.String("stop_id", stopID))

	dep, minutes, err := r.NextDeparture(ctx, routeID, directionID, stopID)
	if err != nil {
		return fail(err)
	}
	log.Debug("departure computed",
		zap.Stringer("state", types.StageDepartureComputed),
		zap.String("departure_time", dep.DepartureTime),
		zap.Int("minutes", minutes),
	)

	return Result{
		RunID:       runID,
		RouteID:     routeID,
		DirectionID: directionID,
		StopID:      stopID,
		Departure:   dep,
		Minutes:     minutes,
	}, nil
}

// startRun tags ctx and the logger with a fresh run ID.
func (r *Resolver) startRun(ctx context.Context) (context.Context, string, *zap.Logger) {
	runID := newRunID()
	return provider.WithRequestID(ctx, runID), runID, r.log.With(zap.String("run_id", runID))
}

// logFailure records a failed run. Provider failures are warnings; an
// answer without a match is only interesting when debugging.
func logFailure(log *zap.Logger, reached types.Stage, err error) {
	fields := []zap.Field{
		zap.Stringer("reached", reached),
		zap.Stringer("state", types.StageFailed),
		zap.Error(err),
	}
	if errors.Is(err, types.ErrProviderUnavailable) {
		log.Warn("provider request failed", fields...)
		return
	}
	log.Debug("pipeline failed", fields...)
}

// newRunID returns a time-ordered UUID, falling back to a random one if the
// v7 generator fails.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
