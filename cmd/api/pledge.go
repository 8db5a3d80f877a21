package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-for-trees/internal/pledge"
)

// formView is the data behind templates/form.html
type formView struct {
	Pledge pledge.Pledge
	Error  string
}

func defaultForm() formView {
	return formView{Pledge: pledge.Pledge{
		Items:        1,
		Schools:      true,
		Supermarkets: true,
		PostOffices:  true,
		Recycling:    true,
	}}
}

func (app *App) handleForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", defaultForm())
}

// handleDonate binds the submitted form and renders the report page
func (app *App) handleDonate(c *gin.Context) {
	var input pledge.Pledge
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "form.html", formView{
			Pledge: input,
			Error:  "Please enter how many items you are donating (at least 1).",
		})
		return
	}

	report, err := app.pledgeService.Submit(c.Request.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pledge.ErrInvalidItemCount) {
			status = http.StatusBadRequest
		}
		c.HTML(status, "form.html", formView{Pledge: input, Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "report.html", report)
}

// handleCreatePledge godoc
// @Summary Submit a donation pledge
// @Description Resolve the postcode, find up to 5 nearby drop-off places across the selected categories and assign a tree planting region
// @Tags pledges
// @Accept json
// @Produce json
// @Param pledge body pledge.Pledge true "Pledge"
// @Success 200 {object} pledge.Report
// @Failure 400 {object} map[string]string
// @Router /api/pledges [post]
func (app *App) handleCreatePledge(c *gin.Context) {
	var input pledge.Pledge
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := app.pledgeService.Submit(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, pledge.ErrInvalidItemCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to submit pledge", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit pledge"})
		return
	}

	c.JSON(http.StatusOK, report)
}
