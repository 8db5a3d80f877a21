package types

// NoAddress is shown for places that carry no address tags.
const NoAddress = "No address"

// Place is a drop-off location found near a query origin
type Place struct {
	Name          string  `json:"name" example:"Seaton Sluice Middle School"`
	Address       string  `json:"address" example:"Main St, Leeds"`
	Coordinates   Coords  `json:"coordinates"`
	DistanceMiles float64 `json:"distance_miles" example:"1.234"`
}

// RankedPlace is a Place tagged with the category it was found under
type RankedPlace struct {
	Category Category `json:"category"`
	Place
}
