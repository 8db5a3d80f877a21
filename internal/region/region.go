// Package region maps a UK postcode to the region where pledged trees are planted.
package region

import (
	"strings"

	"tech-for-trees/internal/types"
)

// DefaultLabel is shown when no prefix rule matches.
const DefaultLabel = "your region"

type Region struct {
	Name        string       `json:"name" example:"Northumberland"`
	Label       string       `json:"label" example:"Northumberland"`
	Coordinates types.Coords `json:"coordinates"`
}

var (
	Northumberland = Region{Name: "Northumberland", Label: "Northumberland", Coordinates: types.NewCoords(55.2, -1.6)}
	Yorkshire      = Region{Name: "Yorkshire", Label: "Yorkshire", Coordinates: types.NewCoords(53.9, -1.1)}
	London         = Region{Name: "London", Label: "London area", Coordinates: types.NewCoords(51.5, -0.1)}
	Manchester     = Region{Name: "Manchester", Label: "Manchester area", Coordinates: types.NewCoords(53.5, -2.2)}
	Unassigned     = Region{Name: "", Label: DefaultLabel, Coordinates: types.FallbackCoords}
)

type rule struct {
	prefixes []string
	region   Region
}

// rules are checked in order; "ne" must come before "n".
var rules = [...]rule{
	{prefixes: []string{"ne"}, region: Northumberland},
	{prefixes: []string{"yo"}, region: Yorkshire},
	{prefixes: []string{"n", "e"}, region: London},
	{prefixes: []string{"m"}, region: Manchester},
}

// Assign returns the planting region for a postcode. The postcode is matched
// case-insensitively after trimming.
func Assign(postcode string) Region {
	p := strings.ToLower(strings.TrimSpace(postcode))
	if p == "" {
		return Unassigned
	}
	for _, r := range rules {
		for _, prefix := range r.prefixes {
			if strings.HasPrefix(p, prefix) {
				return r.region
			}
		}
	}
	return Unassigned
}

// Assigned reports whether the region came from a prefix rule.
func (r Region) Assigned() bool {
	return r.Name != ""
}
