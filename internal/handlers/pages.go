package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

const (
	pathHome          = "/"
	pathEnergy        = "/energy"
	pathEnergySummary = "/energy-summary"
	pathCarbon        = "/carbon"
	pathCarbonSummary = "/carbon-summary"
	pathBooking       = "/booking"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// home renders the landing page; ?login_required=1 opens the login prompt.
func (h *Handler) home(c *gin.Context) {
	p := h.newPage(c, "Home", nil)
	p.LoginRequired = c.Query("login_required") == "1" && p.User == nil
	p.Next = safeNext(c.Query("next"))
	c.HTML(http.StatusOK, "home.html", p)
}

func (h *Handler) staticPage(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, name, title, nil)
	}
}

func (h *Handler) summaryPage(c *gin.Context) {
	totals, err := h.services.Totals(c.Request.Context())
	if err != nil {
		h.serverError(c, "summary_load_failed", err)
		return
	}
	h.render(c, http.StatusOK, "summary.html", "Summary", totals)
}
