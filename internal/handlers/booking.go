package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rolsa/internal/service"
)

const msgBookingNotFound = "Booking not found"

type bookingFormData struct {
	Services []string
}

func (h *Handler) bookingForm(c *gin.Context) {
	h.render(c, http.StatusOK, "booking.html", "Book a service", bookingFormData{
		Services: h.services.BookableServices(),
	})
}

func (h *Handler) createBooking(c *gin.Context) {
	u := currentUser(c)

	var input service.BookingParams
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithFlash(c, pathBooking, msgInvalidForm)
		return
	}

	b, err := h.services.Book(c.Request.Context(), u.ID, input)
	var inputErr *service.InputError
	switch {
	case err == nil:
		h.reqLog(c).Infow("booking_created", "id", b.ID, "user_id", u.ID)
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/booking-confirmation/%d", b.ID))
	case errors.As(err, &inputErr):
		h.redirectWithFlash(c, pathBooking, inputErr.Msg)
	case errors.Is(err, service.ErrMailDelivery) && b.ID > 0:
		h.reqLog(c).Errorw("booking_email_failed", "err", err, "id", b.ID, "user_id", u.ID)
		h.renderError(c, http.StatusBadGateway, "Confirmation email not sent",
			fmt.Sprintf("Your booking #%d for %s on %s at %s is saved, but the confirmation email could not be delivered.",
				b.ID, b.Service, b.Date, b.Time))
	case errors.Is(err, service.ErrInvalidCredentials):
		// the account behind the session no longer exists
		h.sessions.Clear(c)
		h.requireLoginRedirect(c)
	default:
		h.serverError(c, "booking_create_failed", err, "user_id", u.ID)
	}
}

func (h *Handler) bookingConfirmation(c *gin.Context) {
	u := currentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.renderError(c, http.StatusNotFound, msgBookingNotFound, "We could not find that booking.")
		return
	}

	b, err := h.services.GetBooking(c.Request.Context(), u.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			h.renderError(c, http.StatusNotFound, msgBookingNotFound, "We could not find that booking.")
			return
		}
		h.serverError(c, "booking_load_failed", err, "id", id)
		return
	}
	h.render(c, http.StatusOK, "booking_confirmation.html", "Booking confirmed", b)
}
