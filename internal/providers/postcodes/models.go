package postcodes

// LookupAPIResponse is the envelope returned by GET /postcodes/{postcode}.
// Only the fields used for geocoding are modelled.
type LookupAPIResponse struct {
	Status int           `json:"status"`
	Error  string        `json:"error,omitempty"`
	Result *LookupResult `json:"result"`
}

type LookupResult struct {
	Postcode  string   `json:"postcode"`
	Country   string   `json:"country"`
	Region    string   `json:"region"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
