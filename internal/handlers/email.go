package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"rolsa/internal/service"
)

const (
	msgEmailSent      = "Summary sent to your inbox"
	msgNoRecipient    = "Please enter an email address"
	msgEmailNotSent   = "Sorry, we could not send the email. Please try again later."
	errKeyEmailFailed = "email_summary_failed"
)

type emailForm struct {
	Email string `form:"email"`
}

func (h *Handler) emailEnergy(c *gin.Context) {
	h.sendSummary(c, pathEnergySummary, service.MailEnergySummary, h.services.EmailEnergySummary)
}

func (h *Handler) emailCarbon(c *gin.Context) {
	h.sendSummary(c, pathCarbonSummary, service.MailCarbonSummary, h.services.EmailCarbonSummary)
}

// sendSummary mails one summary and returns to back with the outcome as a flash.
func (h *Handler) sendSummary(c *gin.Context, back, kind string, send func(ctx context.Context, to string) error) {
	var input emailForm
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithFlash(c, back, msgInvalidForm)
		return
	}

	err := send(c.Request.Context(), input.Email)
	var inputErr *service.InputError
	switch {
	case err == nil:
		h.redirectWithFlash(c, back, msgEmailSent)
	case errors.Is(err, service.ErrNoRecipient):
		h.redirectWithFlash(c, back, msgNoRecipient)
	case errors.As(err, &inputErr):
		h.redirectWithFlash(c, back, inputErr.Msg)
	case errors.Is(err, service.ErrMailDelivery):
		h.reqLog(c).Errorw(errKeyEmailFailed, "err", err, "kind", kind)
		h.redirectWithFlash(c, back, msgEmailNotSent)
	default:
		h.serverError(c, errKeyEmailFailed, err, "kind", kind)
	}
}
