package pledge

import (
	"tech-for-trees/internal/region"
	"tech-for-trees/internal/types"
)

// Pledge is a single donation submitted through the form
type Pledge struct {
	Name         string `json:"name" form:"name" example:"Sam"`
	Items        int    `json:"items" form:"items" binding:"required,min=1" example:"3"`
	Postcode     string `json:"postcode" form:"postcode" example:"NE23 6XX"`
	Schools      bool   `json:"schools" form:"schools"`
	Supermarkets bool   `json:"supermarkets" form:"supermarkets"`
	PostOffices  bool   `json:"post_offices" form:"post_offices"`
	Recycling    bool   `json:"recycling" form:"recycling"`
}

// Categories returns the enabled categories in display order
func (p Pledge) Categories() []types.Category {
	enabled := map[string]bool{
		types.CategorySchools.Key:      p.Schools,
		types.CategorySupermarkets.Key: p.Supermarkets,
		types.CategoryPostOffices.Key:  p.PostOffices,
		types.CategoryRecycling.Key:    p.Recycling,
	}
	var out []types.Category
	for _, c := range types.Categories() {
		if enabled[c.Key] {
			out = append(out, c)
		}
	}
	return out
}

// Report is everything shown back to the donor after a pledge
type Report struct {
	DonorName       string              `json:"donor_name" example:"Sam"`
	Items           int                 `json:"items" example:"3"`
	Postcode        string              `json:"postcode" example:"NE23 6XX"`
	Origin          types.Coords        `json:"origin"`
	UsedFallback    bool                `json:"used_fallback"`
	Places          []types.RankedPlace `json:"places"`
	Notices         []string            `json:"notices,omitempty"`
	Region          region.Region       `json:"region"`
	Thanks          string              `json:"thanks" example:"Thanks Sam! You've pledged 3 item(s) from NE23 6XX."`
	PlantingMessage string              `json:"planting_message" example:"Your 3 tree(s) will be planted in Northumberland!"`
}
