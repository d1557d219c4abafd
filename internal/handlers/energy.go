package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rolsa/internal/service"
)

func (h *Handler) energyForm(c *gin.Context) {
	overview, err := h.services.EnergyOverview(c.Request.Context())
	if err != nil {
		h.serverError(c, "energy_list_failed", err)
		return
	}
	h.render(c, http.StatusOK, "energy.html", "Energy calculator", overview)
}

func (h *Handler) createEnergy(c *gin.Context) {
	var input service.EnergyParams
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithFlash(c, pathEnergy, msgInvalidNumbers)
		return
	}

	rec, err := h.services.RecordUsage(c.Request.Context(), input)
	if err != nil {
		var inputErr *service.InputError
		if errors.As(err, &inputErr) {
			h.redirectWithFlash(c, pathEnergy, inputErr.Msg)
			return
		}
		h.serverError(c, "energy_create_failed", err, "appliance", input.Appliance)
		return
	}
	h.reqLog(c).Infow("energy_created", "id", rec.ID, "monthly_kwh", rec.MonthlyKWh)
	c.Redirect(http.StatusSeeOther, pathEnergySummary)
}

func (h *Handler) energySummary(c *gin.Context) {
	overview, err := h.services.EnergyOverview(c.Request.Context())
	if err != nil {
		h.serverError(c, "energy_summary_failed", err)
		return
	}
	h.render(c, http.StatusOK, "energy_summary.html", "Energy summary", overview)
}
