package types

import "github.com/paulmach/orb"

// FallbackCoords is used whenever a postcode cannot be resolved.
var FallbackCoords = Coords{Latitude: 54.5, Longitude: -1.5}

type Coords struct {
	Latitude  float64 `json:"latitude" example:"55.0"`
	Longitude float64 `json:"longitude" example:"-1.5"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Point converts to an orb point. orb orders coordinates as [lon, lat].
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the coordinate is within WGS84 bounds.
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
