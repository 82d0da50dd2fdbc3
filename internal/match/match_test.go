package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

func TestFirst(t *testing.T) {
	routes := []types.Candidate{
		{Label: "METRO Blue Line", ID: "901"},
		{Label: "METRO Green Line", ID: "902"},
		{Label: "Blue Line Express", ID: "990"},
	}

	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{name: "exact label", query: "METRO Green Line", wantID: "902", wantOK: true},
		{name: "lower case substring", query: "blue line", wantID: "901", wantOK: true},
		{name: "first match wins", query: "Blue", wantID: "901", wantOK: true},
		{name: "mixed case", query: "eXpReSs", wantID: "990", wantOK: true},
		{name: "no match", query: "Red Line", wantOK: false},
		{name: "empty query matches first", query: "", wantID: "901", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := First(routes, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestFirst_EmptyList(t *testing.T) {
	_, ok := First(nil, "anything")
	assert.False(t, ok)
}

func TestContains_UnicodeFolding(t *testing.T) {
	assert.True(t, Contains("Straße Station", "STRASSE"))
	assert.True(t, Contains("Target Field Station Platform 1", "target field"))
	assert.False(t, Contains("Target", "Target Field"))
}

func TestNormalizeDirection(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"north", "Northbound"},
		{"NORTH", "Northbound"},
		{"South", "Southbound"},
		{"east", "Eastbound"},
		{"wEsT", "Westbound"},
		{"Northbound", "Northbound"},
		{"northward", "northward"},
		{" north", " north"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirection(tt.input))
		})
	}
}
