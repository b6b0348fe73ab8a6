package handlers

import (
	"errors"
	"net/http"

	"content-management/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type roleAssignment struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		// optional structured logging
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register
// @Description  Creates a new account with the "User" role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Register(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_register_failed", "username", input.Username, "err", err)
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "User registered successfully."})
}

// @Summary      Login
// @Description  Validates credentials and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary      Assign role
// @Description  Sets a new role for the target user. Admins cannot grant themselves Admin.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   roleAssignment  true  "Target username and role"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/auth/assign-role [post]
// @Security     BearerAuth
func (h *Handler) assignRole(c *gin.Context) {
	var input roleAssignment
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	actor := c.GetString(ctxUsernameKey)
	err := h.services.AssignRole(actor, input.Username, input.Role)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_assign_role_failed", "actor", actor, "target", input.Username, "err", err)
		}
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		case errors.Is(err, service.ErrSelfAdminAssign):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot assign the admin role to yourself."})
		case errors.Is(err, service.ErrInvalidUserInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role assigned successfully."})
}
