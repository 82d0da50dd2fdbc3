package resolver

import (
	"context"

	"github.com/mesh-intelligence/nextrip/internal/match"
	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// RouteID returns the identifier of the first route whose description
// contains name.
func (r *Resolver) RouteID(ctx context.Context, name string) (string, error) {
	routes, err := r.provider.Routes(ctx)
	if err != nil {
		return "", &types.StageError{Kind: types.ErrRouteNotFound, Subject: name, Err: err}
	}
	c, ok := match.First(routes, name)
	if !ok {
		return "", &types.StageError{Kind: types.ErrRouteNotFound, Subject: name, Err: types.ErrNoMatch}
	}
	return c.ID, nil
}

// DirectionID returns the identifier of the first direction of routeID
// whose label contains direction, after alias normalization.
func (r *Resolver) DirectionID(ctx context.Context, routeID, direction string) (string, error) {
	direction = match.NormalizeDirection(direction)

	dirs, err := r.provider.Directions(ctx, routeID)
	if err != nil {
		return "", &types.StageError{Kind: types.ErrDirectionNotFound, Subject: direction, Err: err}
	}
	c, ok := match.First(dirs, direction)
	if !ok {
		return "", &types.StageError{Kind: types.ErrDirectionNotFound, Subject: direction, Err: types.ErrNoMatch}
	}
	return c.ID, nil
}

// StopID returns the identifier of the first stop on (routeID, directionID)
// whose label contains stop. When nothing matches, the StageError lists
// every stop label offered.
func (r *Resolver) StopID(ctx context.Context, routeID, directionID, stop string) (string, error) {
	stops, err := r.provider.Stops(ctx, routeID, directionID)
	if err != nil {
		return "", &types.StageError{Kind: types.ErrStopNotFound, Subject: stop, Err: err}
	}
	c, ok := match.First(stops, stop)
	if !ok {
		return "", &types.StageError{
			Kind:       types.ErrStopNotFound,
			Subject:    stop,
			Candidates: types.Labels(stops),
			Err:        types.ErrNoMatch,
		}
	}
	return c.ID, nil
}

// NextDeparture returns the first departure listed for the stop and the
// whole minutes until it leaves. Provider order is trusted; no sorting is
// done. The minutes may be negative.
func (r *Resolver) NextDeparture(ctx context.Context, routeID, directionID, stopID string) (types.Departure, int, error) {
	fail := func(err error) (types.Departure, int, error) {
		return types.Departure{}, 0, &types.StageError{Kind: types.ErrDepartureNotFound, Err: err}
	}

	deps, err := r.provider.Departures(ctx, routeID, directionID, stopID)
	if err != nil {
		return fail(err)
	}
	if len(deps) == 0 {
		return fail(types.ErrNoDepartures)
	}

	first := deps[0]
	scheduled, err := ParseDepartureTime(first.DepartureTime)
	if err != nil {
		return fail(err)
	}
	return first, MinutesUntil(scheduled, r.now()), nil
}
