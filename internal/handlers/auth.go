package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"rolsa/internal/service"
	"rolsa/internal/session"
)

const (
	msgRegistered         = "Account created successfully"
	msgDuplicateEmail     = "Email already registered"
	msgLoggedIn           = "Logged in successfully"
	msgInvalidCredentials = "Invalid email or password"
	msgLoggedOut          = "Logged out"
)

type loginForm struct {
	service.LoginParams
	Next string `form:"next"`
}

func (h *Handler) register(c *gin.Context) {
	var input service.RegisterParams
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithFlash(c, pathHome, msgInvalidForm)
		return
	}

	id, err := h.services.Register(c.Request.Context(), input)
	var inputErr *service.InputError
	switch {
	case err == nil:
		h.reqLog(c).Infow("auth_registered", "user_id", id)
		h.redirectWithFlash(c, pathHome, msgRegistered)
	case errors.Is(err, service.ErrDuplicateEmail):
		h.redirectWithFlash(c, pathHome, msgDuplicateEmail)
	case errors.As(err, &inputErr):
		h.redirectWithFlash(c, pathHome, inputErr.Msg)
	default:
		h.serverError(c, "auth_register_failed", err)
	}
}

func (h *Handler) login(c *gin.Context) {
	var input loginForm
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithFlash(c, pathHome, msgInvalidCredentials)
		return
	}
	next := safeNext(input.Next)

	u, err := h.services.Authenticate(c.Request.Context(), input.LoginParams)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.serverError(c, "auth_login_failed", err)
			return
		}
		h.reqLog(c).Infow("auth_login_rejected")
		back := pathHome
		if next != "" {
			back = "/?login_required=1&next=" + url.QueryEscape(next)
		}
		h.redirectWithFlash(c, back, msgInvalidCredentials)
		return
	}

	if err := h.sessions.Issue(c, session.User{ID: u.ID, Name: u.Name}); err != nil {
		h.serverError(c, "auth_session_issue_failed", err, "user_id", u.ID)
		return
	}
	if next == "" {
		next = pathHome
	}
	h.redirectWithFlash(c, next, msgLoggedIn)
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.Clear(c)
	h.sessions.SetFlash(c, msgLoggedOut)
	c.Redirect(http.StatusFound, pathHome)
}
