package places

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/paulmach/orb/geo"

	"tech-for-trees/internal/providers/overpass"
	"tech-for-trees/internal/types"
)

const (
	// RadiusMeters is five miles.
	RadiusMeters = 8046

	// Limit is the most places returned per category and overall.
	Limit = 5

	metersPerMile = 1609.344
)

// addressTags are joined in this order to build a display address.
var addressTags = [...]string{"addr:street", "addr:postcode", "addr:city"}

// Service finds drop-off places near a coordinate
type Service interface {
	// FindNearby returns at most Limit places for one category, nearest first.
	// On failure the slice is empty and the error says why.
	FindNearby(ctx context.Context, origin types.Coords, category types.Category) ([]types.Place, error)
}

// PlaceProvider runs Overpass queries
type PlaceProvider interface {
	Interpret(ctx context.Context, query string) (*overpass.InterpreterAPIResponse, error)
}

type placesService struct {
	provider PlaceProvider
	logger   *slog.Logger
}

// NewPlacesService creates a places service backed by the given Overpass client
func NewPlacesService(client *overpass.Client, logger *slog.Logger) Service {
	return NewPlacesServiceWithProvider(client, logger)
}

// NewPlacesServiceWithProvider creates a places service with a custom provider
func NewPlacesServiceWithProvider(provider PlaceProvider, logger *slog.Logger) Service {
	return &placesService{
		provider: provider,
		logger:   logger.With("component", "places-service"),
	}
}

func (s *placesService) FindNearby(ctx context.Context, origin types.Coords, category types.Category) ([]types.Place, error) {
	query := overpass.BuildAroundQuery(category.Filter, RadiusMeters, origin)

	resp, err := s.provider.Interpret(ctx, query)
	if err != nil {
		s.logger.Error("failed to query places",
			"category", category.Key,
			"latitude", origin.Latitude,
			"longitude", origin.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to query %s: %w", category.Filter, err)
	}

	places := CollectPlaces(origin, category.Filter, resp.Elements)
	ranked := RankByDistance(places, Limit)

	s.logger.Debug("found nearby places",
		"category", category.Key,
		"elements", len(resp.Elements),
		"unique", len(places),
		"returned", len(ranked),
	)

	return ranked, nil
}

// CollectPlaces converts raw elements into places in element order, skipping
// elements without a position and dropping duplicates. The first element with
// a given dedup key is kept.
func CollectPlaces(origin types.Coords, filter string, elements []overpass.Element) []types.Place {
	seen := make(map[dedupKey]struct{}, len(elements))
	places := make([]types.Place, 0, len(elements))

	for _, el := range elements {
		pos, ok := el.Position()
		if !ok {
			continue
		}

		name := filter
		if n, ok := el.Tag("name"); ok {
			name = n
		}

		key := newDedupKey(name, pos)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		places = append(places, types.Place{
			Name:          name,
			Address:       formatAddress(el),
			Coordinates:   pos,
			DistanceMiles: DistanceMiles(origin, pos),
		})
	}

	return places
}

type dedupKey struct {
	name     string
	lat, lon float64
}

func newDedupKey(name string, pos types.Coords) dedupKey {
	return dedupKey{
		name: name,
		lat:  roundTo(pos.Latitude, 5),
		lon:  roundTo(pos.Longitude, 5),
	}
}

func formatAddress(el overpass.Element) string {
	parts := make([]string, 0, len(addressTags))
	for _, tag := range addressTags {
		if v, ok := el.Tag(tag); ok {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return types.NoAddress
	}
	return strings.Join(parts, ", ")
}

// DistanceMiles is the great-circle distance between two coordinates, rounded to 3 decimals.
func DistanceMiles(from, to types.Coords) float64 {
	// orb uses the equatorial radius, so this reads about 0.1% long against a geodesic.
	meters := geo.DistanceHaversine(from.Point(), to.Point())
	return roundTo(meters/metersPerMile, 3)
}

// RankByDistance sorts nearest first, keeping input order for equal distances,
// and keeps at most limit entries. The input slice is not modified.
func RankByDistance(places []types.Place, limit int) []types.Place {
	sorted := slices.Clone(places)
	slices.SortStableFunc(sorted, func(a, b types.Place) int {
		return compareDistance(a.DistanceMiles, b.DistanceMiles)
	})
	return truncate(sorted, limit)
}

// Merge unions per-category results in argument order, then ranks the union
// the same way RankByDistance does.
func Merge(limit int, groups ...[]types.RankedPlace) []types.RankedPlace {
	var all []types.RankedPlace
	for _, g := range groups {
		all = append(all, g...)
	}
	slices.SortStableFunc(all, func(a, b types.RankedPlace) int {
		return compareDistance(a.DistanceMiles, b.DistanceMiles)
	})
	return truncate(all, limit)
}

// Tag labels each place with the category it was found under.
func Tag(category types.Category, places []types.Place) []types.RankedPlace {
	out := make([]types.RankedPlace, len(places))
	for i, p := range places {
		out[i] = types.RankedPlace{Category: category, Place: p}
	}
	return out
}

func compareDistance(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func truncate[T any](s []T, limit int) []T {
	if limit >= 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
