package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"content-management/internal/models"
	"content-management/internal/service"

	"github.com/gin-gonic/gin"
)

// Response messages for the content operations.
const (
	msgContentCreated = "Content created"
	msgContentUpdated = "Content updated"
)

// Request DTO for create/edit. ID and CreatedAt are server-assigned.
type contentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// contentID parses the :id path parameter. A non-numeric id is reported as
// invalid input so the mapping stage turns it into a 400.
func (h *Handler) contentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: id must be numeric", service.ErrInvalidInput))
		return 0, false
	}
	return id, true
}

// bindContentOrErr binds the request body, pushing a domain error on failure.
// Content handlers never write error responses themselves; the error-mapping
// stage owns that.
func (h *Handler) bindContentOrErr(c *gin.Context, dst *contentRequest) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return false
	}
	return true
}

// @Summary      Create content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body   contentRequest  true  "Content payload"
// @Success      200   {object}  map[string]interface{}  "message, content"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/content [post]
// @Security     BearerAuth
func (h *Handler) createContent(c *gin.Context) {
	var req contentRequest
	if ok := h.bindContentOrErr(c, &req); !ok {
		return
	}

	created, err := h.services.Contents.Create(c.Request.Context(), models.Content{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgContentCreated, "content": created})
}

// @Summary      Get content by id
// @Tags         content
// @Produce      json
// @Param        id   path   int  true  "Content ID"
// @Success      200  {object}  models.Content
// @Failure      404  {object}  map[string]string
// @Router       /api/content/GetContent/{id} [get]
func (h *Handler) getContent(c *gin.Context) {
	id, ok := h.contentID(c)
	if !ok {
		return
	}

	content, err := h.services.Contents.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// @Summary      Edit content
// @Description  Overwrites title, description and timestamp. Category is immutable.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path   int             true  "Content ID"
// @Param        body  body   contentRequest  true  "New content values"
// @Success      200   {object}  map[string]interface{}  "message, content"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/content/EditContent/{id} [post]
// @Security     BearerAuth
func (h *Handler) updateContent(c *gin.Context) {
	id, ok := h.contentID(c)
	if !ok {
		return
	}
	var req contentRequest
	if ok := h.bindContentOrErr(c, &req); !ok {
		return
	}

	updated, err := h.services.Contents.Update(c.Request.Context(), id, models.Content{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgContentUpdated, "content": updated})
}

// @Summary      Delete content
// @Tags         content
// @Param        id   path   int  true  "Content ID"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/content/DeleteId/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteContent(c *gin.Context) {
	id, ok := h.contentID(c)
	if !ok {
		return
	}

	if err := h.services.Contents.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
