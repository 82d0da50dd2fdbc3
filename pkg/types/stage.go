package types

// Stage identifies how far a pipeline run progressed.
type Stage int

// Pipeline states, in resolution order. Failed is terminal.
const (
	StageStart Stage = iota
	StageRouteResolved
	StageDirectionResolved
	StageStopResolved
	StageDepartureComputed
	StageFailed
)

var stageNames = map[Stage]string{
	StageStart:             "start",
	StageRouteResolved:     "route_resolved",
	StageDirectionResolved: "direction_resolved",
	StageStopResolved:      "stop_resolved",
	StageDepartureComputed: "departure_computed",
	StageFailed:            "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
