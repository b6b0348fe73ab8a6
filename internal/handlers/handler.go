package handlers

import (
	"content-management/internal/logger"
	"content-management/internal/models"
	"content-management/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
//
// Cross-cutting stages (role gate, result shaping, audit trail, error
// mapping) are attached per route, so each action opts into exactly the
// subset it needs.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Content endpoints (the filtered pipeline)
	h.registerContentRoutes(router)

	// Audit trail endpoints (admin tooling)
	h.registerAuditRoutes(router)

	// Live audit feed over a websocket upgrade on the same port.
	router.GET("/ws", h.authRequired, h.requireRole(models.RoleAdmin), h.wsAuditFeed)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/assign-role", h.authRequired, h.requireRole(models.RoleAdmin), h.assignRole)
	}
}

func (h *Handler) registerContentRoutes(r *gin.Engine) {
	content := r.Group("/api/content", h.mapDomainErrors)
	{
		content.POST("", h.authRequired, h.requireRole(models.RoleAdmin), h.createContent)
		content.GET("/GetContent/:id", h.shapeResult, h.getContent)
		content.DELETE("/DeleteId/:id", h.authRequired, h.requireRole(models.RoleAdmin), h.auditTrail("content.delete"), h.deleteContent)
		content.POST("/EditContent/:id", h.authRequired, h.requireRole(models.RoleAdmin), h.updateContent)
	}
}

func (h *Handler) registerAuditRoutes(r *gin.Engine) {
	audit := r.Group("/api/audit", h.authRequired, h.requireRole(models.RoleAdmin))
	{
		audit.GET("/", h.listAudit)
	}
}
