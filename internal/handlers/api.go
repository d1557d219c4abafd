package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errLoadEnergy  = "failed to load energy records"
	errLoadCarbon  = "failed to load carbon records"
	errLoadSummary = "failed to load totals"
)

// @Summary      Energy records and totals
// @Tags         energy
// @Produce      json
// @Success      200  {object}  models.EnergyOverview
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/energy [get]
func (h *Handler) apiEnergy(c *gin.Context) {
	overview, err := h.services.EnergyOverview(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadEnergy, "api_energy_failed", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// @Summary      Carbon records and total
// @Tags         carbon
// @Produce      json
// @Success      200  {object}  models.CarbonOverview
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/carbon [get]
func (h *Handler) apiCarbon(c *gin.Context) {
	overview, err := h.services.CarbonOverview(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadCarbon, "api_carbon_failed", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// @Summary      Combined energy and carbon totals
// @Tags         summary
// @Produce      json
// @Success      200  {object}  models.Totals
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/summary [get]
func (h *Handler) apiSummary(c *gin.Context) {
	totals, err := h.services.Totals(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSummary, "api_summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
