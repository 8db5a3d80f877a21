package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-for-trees/internal/types"
)

// PostcodeResponse is the result of resolving a postcode
type PostcodeResponse struct {
	Postcode    string       `json:"postcode" example:"ne23 6xx"`
	Coordinates types.Coords `json:"coordinates"`
	Fallback    bool         `json:"fallback"`
	Reason      string       `json:"reason,omitempty"`
}

// handleResolvePostcode godoc
// @Summary Resolve a postcode
// @Description Look up the coordinates of a UK postcode. Unknown postcodes resolve to the fallback coordinate.
// @Tags location
// @Produce json
// @Param postcode path string true "UK postcode" example(NE23 6XX)
// @Success 200 {object} PostcodeResponse
// @Router /api/postcodes/{postcode} [get]
func (app *App) handleResolvePostcode(c *gin.Context) {
	res := app.locationService.Resolve(c.Request.Context(), c.Param("postcode"))

	resp := PostcodeResponse{
		Postcode:    res.Postcode,
		Coordinates: res.Coordinates,
		Fallback:    res.Fallback,
	}
	if res.Err != nil {
		resp.Reason = res.Err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// FindPlacesInput defines the query parameters for the places endpoint
type FindPlacesInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	Category  string   `form:"category" binding:"required"`  // schools, supermarkets, post-offices or recycling
}

// handleFindPlaces godoc
// @Summary Find nearby drop-off places
// @Description Up to 5 places of one category within 5 miles, nearest first
// @Tags places
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(55.0)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-1.5)
// @Param category query string true "Category key" Enums(schools, supermarkets, post-offices, recycling)
// @Success 200 {array} types.Place
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/places [get]
func (app *App) handleFindPlaces(c *gin.Context) {
	var input FindPlacesInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	origin := types.NewCoords(*input.Latitude, *input.Longitude)
	if !origin.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	category, ok := types.CategoryByKey(input.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category " + input.Category})
		return
	}

	found, err := app.placesService.FindNearby(c.Request.Context(), origin, category)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch " + category.Filter + " data"})
		return
	}
	if found == nil {
		found = []types.Place{}
	}

	c.JSON(http.StatusOK, found)
}
