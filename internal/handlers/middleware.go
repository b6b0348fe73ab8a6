package handlers

import (
	"errors"
	"net/http"
	"strings"

	"content-management/internal/service"

	"github.com/gin-gonic/gin"
)

// Gin context keys for the authenticated caller's claims.
const (
	ctxUsernameKey = "username"
	ctxRoleKey     = "role"
)

// Marker header attached by the result-shaping stage.
const (
	shapedHeaderName  = "X-Content-Management"
	shapedHeaderValue = "Filtered"
)

// Fixed messages produced by the error-mapping stage.
const (
	msgContentNotFound = "Content not found."
	msgInvalidInput    = "Invalid input."
	msgInternalError   = "internal server error"
)

// authRequired parses and verifies the Bearer token and stores the caller's
// name and role claims in the request context.
func (h *Handler) authRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	claims, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUsernameKey, claims.Username)
	c.Set(ctxRoleKey, claims.Role)
	c.Next()
}

// requireRole short-circuits with 403 unless the role claim matches exactly.
// No role hierarchy: "Admin" does not imply "User" and vice versa.
func (h *Handler) requireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ctxRoleKey)
		if !ok || role.(string) != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: requires role " + required,
			})
			return
		}
		c.Next()
	}
}

// shapeResult attaches the marker header to the outbound response. The header
// is set before the action runs, so it is present on every outcome of the
// wrapped action, including mapped failures.
func (h *Handler) shapeResult(c *gin.Context) {
	c.Header(shapedHeaderName, shapedHeaderValue)
	c.Next()
}

// auditTrail records the completed action for state-mutating HTTP methods.
// Recording is best-effort and never alters the response.
func (h *Handler) auditTrail(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodDelete {
			return
		}
		actor := c.GetString(ctxUsernameKey)
		if err := h.services.AuditLog.Record(c.Request.Context(), method, action, actor); err != nil {
			if h.log != nil {
				h.log.Errorw("audit_record_failed", "err", err, "action", action)
			}
		}
	}
}

// mapDomainErrors converts domain errors reported via c.Error into responses.
// Errors outside the taxonomy become a generic 500.
func (h *Handler) mapDomainErrors(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	err := c.Errors.Last().Err

	switch {
	case errors.Is(err, service.ErrContentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgContentNotFound})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidInput})
	default:
		if h.log != nil {
			h.log.Errorw("unhandled_domain_error", "err", err, "path", c.FullPath())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	}
}
