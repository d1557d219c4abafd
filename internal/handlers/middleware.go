package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rolsa/internal/session"
)

const (
	ctxRequestID = "request_id"
	ctxUser      = "user"

	headerRequestID = "X-Request-ID"
)

// requestID tags each request with an id, reusing a sane inbound one.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" || len(id) > 64 {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(headerRequestID, id)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.reqLog(c).Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

// loadSession puts the signed-in user, if any, into the gin context.
func (h *Handler) loadSession(c *gin.Context) {
	u, err := h.sessions.Load(c)
	if err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			h.reqLog(c).Infow("session_rejected", "err", err)
			h.sessions.Clear(c)
		}
		c.Next()
		return
	}
	if u != nil {
		c.Set(ctxUser, u)
	}
	c.Next()
}

// requireLogin sends anonymous visitors home with the login prompt and the
// page they wanted, writing nothing.
func (h *Handler) requireLogin(c *gin.Context) {
	if currentUser(c) != nil {
		c.Next()
		return
	}
	h.requireLoginRedirect(c)
}

func (h *Handler) requireLoginRedirect(c *gin.Context) {
	target := "/?login_required=1&next=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func currentUser(c *gin.Context) *session.User {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil
	}
	u, _ := v.(*session.User)
	return u
}

// safeNext accepts only local absolute paths so login cannot redirect off-site.
// Browsers drop tabs and newlines from URLs, so any control byte is refused.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return ""
	}
	if strings.IndexFunc(next, func(r rune) bool { return r < 0x20 || r == 0x7f }) >= 0 {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil ||
		!strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return ""
	}
	return next
}
