package location

import (
	"context"
	"log/slog"
	"strings"

	"tech-for-trees/internal/providers/postcodes"
	"tech-for-trees/internal/types"
)

// Service resolves postcodes to coordinates
type Service interface {
	// Resolve never fails; unresolvable postcodes come back as the fallback coordinate
	Resolve(ctx context.Context, postcode string) Resolution
}

// GeocodeProvider defines the interface for postcode lookup providers
type GeocodeProvider interface {
	Lookup(ctx context.Context, postcode string) (*postcodes.LookupAPIResponse, error)
}

// Resolution is the outcome of a postcode lookup. Err holds the reason the
// fallback was used, and is nil for blank input or a successful lookup.
type Resolution struct {
	Postcode    string
	Coordinates types.Coords
	Fallback    bool
	Err         error
}

type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service backed by the given postcodes client
func NewLocationService(client *postcodes.Client, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(client, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(provider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: provider,
		logger:          logger.With("component", "location-service"),
	}
}

// NormalizePostcode trims and lowercases a postcode
func NormalizePostcode(postcode string) string {
	return strings.ToLower(strings.TrimSpace(postcode))
}

func (s *locationService) Resolve(ctx context.Context, postcode string) Resolution {
	normalized := NormalizePostcode(postcode)
	if normalized == "" {
		return Resolution{Coordinates: types.FallbackCoords, Fallback: true}
	}

	resp, err := s.geocodeProvider.Lookup(ctx, normalized)
	if err != nil {
		s.logger.Warn("postcode lookup failed, using fallback coordinates",
			"postcode", normalized,
			"error", err,
		)
		return Resolution{
			Postcode:    normalized,
			Coordinates: types.FallbackCoords,
			Fallback:    true,
			Err:         err,
		}
	}

	coords := resp.Coordinates()
	s.logger.Debug("resolved postcode",
		"postcode", normalized,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return Resolution{Postcode: normalized, Coordinates: coords}
}
