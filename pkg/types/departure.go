package types

// Departure is a provider departure record for a (route, direction, stop)
// triple. Only DepartureTime is required; the rest is informational.
type Departure struct {
	DepartureTime    string  `json:"DepartureTime"`
	DepartureText    string  `json:"DepartureText,omitempty"`
	Description      string  `json:"Description,omitempty"`
	Route            string  `json:"Route,omitempty"`
	RouteDirection   string  `json:"RouteDirection,omitempty"`
	Terminal         string  `json:"Terminal,omitempty"`
	Gate             string  `json:"Gate,omitempty"`
	BlockNumber      int     `json:"BlockNumber,omitempty"`
	Actual           bool    `json:"Actual,omitempty"`
	VehicleLatitude  float64 `json:"VehicleLatitude,omitempty"`
	VehicleLongitude float64 `json:"VehicleLongitude,omitempty"`
}
