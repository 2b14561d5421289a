package api

import (
	"errors"
	"net/http"

	reqdto "payref-console/internal/handler/dto/request"
	"payref-console/internal/handler/httperr"
	"payref-console/internal/pkg/errs"
	"payref-console/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Log in
// @Description Authenticate against the upstream payment API and open a console session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.authCommands.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		case errors.Is(err, errs.ErrTransientUpstream):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "The payment service is unavailable, please try again later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Refresh session
// @Description Trade the current bearer token for a fresh one
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	if err := h.authCommands.Refresh(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired, please log in again", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Log out
// @Description Discard the stored session token
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authCommands.Logout(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
