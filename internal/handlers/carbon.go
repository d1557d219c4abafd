package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rolsa/internal/service"
)

func (h *Handler) carbonForm(c *gin.Context) {
	h.render(c, http.StatusOK, "carbon.html", "Carbon calculator", nil)
}

func (h *Handler) createCarbon(c *gin.Context) {
	var input service.CarbonParams
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithFlash(c, pathCarbon, msgInvalidNumbers)
		return
	}

	rec, err := h.services.RecordActivity(c.Request.Context(), input)
	if err != nil {
		var inputErr *service.InputError
		if errors.As(err, &inputErr) {
			h.redirectWithFlash(c, pathCarbon, inputErr.Msg)
			return
		}
		h.serverError(c, "carbon_create_failed", err, "activity", input.Activity)
		return
	}
	h.reqLog(c).Infow("carbon_created", "id", rec.ID, "co2_kg", rec.CO2Kg)
	c.Redirect(http.StatusSeeOther, pathCarbonSummary)
}

func (h *Handler) carbonSummary(c *gin.Context) {
	overview, err := h.services.CarbonOverview(c.Request.Context())
	if err != nil {
		h.serverError(c, "carbon_summary_failed", err)
		return
	}
	h.render(c, http.StatusOK, "carbon_summary.html", "Carbon summary", overview)
}
