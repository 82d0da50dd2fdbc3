package types

// Candidate is one option offered by the provider for a lookup: a display
// label the user's text is matched against, and the opaque identifier that
// the next stage consumes.
type Candidate struct {
	Label string
	ID    string
}

// Route is a provider route record (GET /Routes).
type Route struct {
	Description string `json:"Description"`
	Route       string `json:"Route"`
	ProviderID  string `json:"ProviderID,omitempty"`
}

// Candidate converts the route record into a match candidate.
func (r Route) Candidate() Candidate {
	return Candidate{Label: r.Description, ID: r.Route}
}

// TextValue is the provider's generic option record, used for both
// directions and stops.
type TextValue struct {
	Text  string `json:"Text"`
	Value string `json:"Value"`
}

// Candidate converts the option record into a match candidate.
func (tv TextValue) Candidate() Candidate {
	return Candidate{Label: tv.Text, ID: tv.Value}
}

// Labels returns the labels of cs in order.
func Labels(cs []Candidate) []string {
	labels := make([]string, len(cs))
	for i, c := range cs {
		labels[i] = c.Label
	}
	return labels
}
