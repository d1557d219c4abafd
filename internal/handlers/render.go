package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolsa/internal/logger"
	"rolsa/internal/session"
)

// page is the value every HTML template receives.
type page struct {
	Title         string
	User          *session.User
	Flash         string
	LoginRequired bool
	Next          string
	Data          any
}

const (
	msgInvalidNumbers = "Please enter valid numbers"
	msgInvalidForm    = "Please check the form and try again"
	msgServerError    = "Something went wrong on our side. Please try again later."
)

func (h *Handler) newPage(c *gin.Context, title string, data any) page {
	return page{
		Title: title,
		User:  currentUser(c),
		Flash: h.sessions.PopFlash(c),
		Data:  data,
	}
}

// render writes a full HTML page with the session user and pending flash.
func (h *Handler) render(c *gin.Context, status int, name, title string, data any) {
	c.HTML(status, name, h.newPage(c, title, data))
}

func (h *Handler) renderError(c *gin.Context, status int, title, msg string) {
	c.HTML(status, "error.html", h.newPage(c, title, msg))
}

// serverError logs err with the request id and renders the generic 500 page.
func (h *Handler) serverError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	fields := append([]interface{}{"err", err}, kv...)
	h.reqLog(c).Errorw(logKey, fields...)
	h.renderError(c, http.StatusInternalServerError, "Server error", msgServerError)
}

// redirectWithFlash stores msg for the next page and answers 303 See Other.
func (h *Handler) redirectWithFlash(c *gin.Context, location, msg string) {
	if msg != "" {
		h.sessions.SetFlash(c, msg)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.reqLog(c).Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// reqLog returns the handler logger tagged with the request id.
func (h *Handler) reqLog(c *gin.Context) *logger.Logger {
	return h.log.With("request_id", c.GetString(ctxRequestID))
}
