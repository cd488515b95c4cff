package handlers

import (
	"errors"
	"net/http"

	identity "identity_client"
	"identity_client/internal/service"

	"github.com/gin-gonic/gin"
)

const errInvalidCredentials = "invalid credentials"

// Wire shapes with binding rules; field names match identity_client's records.
type signupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authInput struct {
	Token string `json:"token" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logInfo(c, "auth_bad_request_body", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Sign up
// @Description  Creates an account and returns a token for it.
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        input  body      identity_client.SignupRequest  true  "new account"
// @Success      200    {object}  identity_client.SignupResponse
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signupInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.SignUp(input.Username, input.Email, input.Password)
	if err != nil {
		h.logInfo(c, "auth_sign_up_failed", "username", input.Username, "err", err)
		switch {
		case errors.Is(err, service.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sign up failed"})
		}
		return
	}

	c.JSON(http.StatusOK, identity.SignupResponse{Token: token})
}

// @Summary      Log in
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        input  body      identity_client.LoginRequest  true  "credentials"
// @Success      200    {object}  identity_client.LoginResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		h.logInfo(c, "auth_login_failed", "username", input.Username, "err", err)
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, identity.LoginResponse{Token: token})
}

// @Summary      Validate a token
// @Description  Returns the user the token was issued for.
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        input  body      identity_client.AuthRequest  true  "token"
// @Success      200    {object}  identity_client.AuthResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /auth [post]
func (h *Handler) auth(c *gin.Context) {
	var input authInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Authenticate(input.Token)
	if err != nil {
		h.logInfo(c, "auth_token_rejected", "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, identity.AuthResponse{User: *user})
}
