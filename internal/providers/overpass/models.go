package overpass

import "tech-for-trees/internal/types"

// InterpreterAPIResponse is the JSON body of an [out:json] query.
type InterpreterAPIResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Elements  []Element `json:"elements"`
}

// Element is a node, way or relation. Nodes carry lat/lon directly, ways and
// relations carry a center when the query ends with "out center".
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Position returns the element's own coordinate, falling back to its center.
func (e Element) Position() (types.Coords, bool) {
	if e.Lat != nil && e.Lon != nil {
		return types.NewCoords(*e.Lat, *e.Lon), true
	}
	if e.Center != nil {
		return types.NewCoords(e.Center.Lat, e.Center.Lon), true
	}
	return types.Coords{}, false
}

// Tag returns a tag value and whether it was present.
func (e Element) Tag(key string) (string, bool) {
	v, ok := e.Tags[key]
	return v, ok
}
