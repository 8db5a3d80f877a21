package pledge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tech-for-trees/internal/location"
	"tech-for-trees/internal/observability"
	"tech-for-trees/internal/places"
	"tech-for-trees/internal/region"
	"tech-for-trees/internal/types"
)

var ErrInvalidItemCount = errors.New("item count must be at least 1")

const defaultDonorName = "friend"

// Service runs the pledge pipeline: resolve, search each category, merge, assign a region
type Service interface {
	Submit(ctx context.Context, p Pledge) (*Report, error)
}

type pledgeService struct {
	locationService location.Service
	placesService   places.Service
	logger          *slog.Logger
}

func NewPledgeService(locationService location.Service, placesService places.Service, logger *slog.Logger) Service {
	return &pledgeService{
		locationService: locationService,
		placesService:   placesService,
		logger:          logger.With("component", "pledge-service"),
	}
}

// Submit never fails because of an upstream; those degrade into fallback
// coordinates and per-category notices. Only invalid input is an error.
func (s *pledgeService) Submit(ctx context.Context, p Pledge) (*Report, error) {
	if p.Items < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidItemCount, p.Items)
	}

	postcode := location.NormalizePostcode(p.Postcode)
	resolution := s.locationService.Resolve(ctx, postcode)

	var (
		groups  [][]types.RankedPlace
		notices []string
	)
	for _, category := range p.Categories() {
		found, err := s.placesService.FindNearby(ctx, resolution.Coordinates, category)
		if err != nil {
			notices = append(notices, fmt.Sprintf("Error fetching %s data: %v", category.Filter, err))
			continue
		}
		groups = append(groups, places.Tag(category, found))
	}

	merged := places.Merge(places.Limit, groups...)
	if merged == nil {
		merged = []types.RankedPlace{}
	}
	assigned := region.Assign(postcode)

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = defaultDonorName
	}
	display := strings.ToUpper(postcode)

	observability.ObservePledge()
	s.logger.Info("pledge submitted",
		"items", p.Items,
		"postcode", postcode,
		"fallback", resolution.Fallback,
		"places", len(merged),
		"notices", len(notices),
		"region", assigned.Label,
	)

	return &Report{
		DonorName:       name,
		Items:           p.Items,
		Postcode:        display,
		Origin:          resolution.Coordinates,
		UsedFallback:    resolution.Fallback,
		Places:          merged,
		Notices:         notices,
		Region:          assigned,
		Thanks:          fmt.Sprintf("Thanks %s! You've pledged %d item(s) from %s.", name, p.Items, display),
		PlantingMessage: fmt.Sprintf("Your %d tree(s) will be planted in %s!", p.Items, assigned.Label),
	}, nil
}
