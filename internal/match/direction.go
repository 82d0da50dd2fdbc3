package match

// directionAliases maps the canonical short direction names to the
// provider's display strings. It is never modified after init.
var directionAliases = map[string]string{
	"north": "Northbound",
	"south": "Southbound",
	"east":  "Eastbound",
	"west":  "Westbound",
}

// NormalizeDirection substitutes the provider display string when input is
// exactly one of north, south, east or west (any case). Any other input is
// returned unchanged.
func NormalizeDirection(input string) string {
	if full, ok := directionAliases[fold(input)]; ok {
		return full
	}
	return input
}
