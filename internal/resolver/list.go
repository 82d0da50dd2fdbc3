package resolver

import (
	"context"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// ListRoutes returns every route the provider offers, in provider order.
func (r *Resolver) ListRoutes(ctx context.Context) ([]types.Candidate, error) {
	ctx, _, _ = r.startRun(ctx)
	return r.provider.Routes(ctx)
}

// ListDirections resolves route and returns its directions. A route that
// cannot be resolved fails with the same StageError as Run.
func (r *Resolver) ListDirections(ctx context.Context, route string) ([]types.Candidate, error) {
	ctx, _, log := r.startRun(ctx)

	routeID, err := r.RouteID(ctx, route)
	if err != nil {
		logFailure(log, types.StageStart, err)
		return nil, err
	}
	return r.provider.Directions(ctx, routeID)
}

// ListStops resolves route and direction and returns the stops served.
func (r *Resolver) ListStops(ctx context.Context, route, direction string) ([]types.Candidate, error) {
	ctx, _, log := r.startRun(ctx)

	routeID, err := r.RouteID(ctx, route)
	if err != nil {
		logFailure(log, types.StageStart, err)
		return nil, err
	}
	directionID, err := r.DirectionID(ctx, routeID, direction)
	if err != nil {
		logFailure(log, types.StageRouteResolved, err)
		return nil, err
	}
	return r.provider.Stops(ctx, routeID, directionID)
}
