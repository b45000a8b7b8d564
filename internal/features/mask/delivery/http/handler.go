package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdifek/fitziz-adminka/internal/features/mask/models"
	"github.com/jdifek/fitziz-adminka/internal/features/mask/service"
)

type MaskHandler struct {
	service service.MaskService
}

func NewMaskHandler(service service.MaskService) *MaskHandler {
	return &MaskHandler{service: service}
}

// RegisterRoutes: чтение каталога публичное, запись только для админа.
func (h *MaskHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/masks", h.List)

	masks := admin.Group("/masks")
	{
		masks.GET("", h.List)
		masks.POST("", h.Create)
		masks.PUT("/:id", h.Update)
		masks.DELETE("/:id", h.Delete)
	}
}

// @Summary List masks
// @Tags masks
// @Produce json
// @Success 200 {array} models.Mask
// @Router /masks [get]
func (h *MaskHandler) List(c *gin.Context) {
	masks, err := h.service.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to list masks"})
		return
	}
	c.JSON(http.StatusOK, masks)
}

// @Summary Create mask
// @Tags masks
// @Accept json
// @Produce json
// @Security AdminToken
// @Param mask body models.MaskPayload true "Mask form fields"
// @Success 201 {object} models.Mask
// @Failure 400 {object} map[string]string
// @Router /admin/masks [post]
func (h *MaskHandler) Create(c *gin.Context) {
	var payload models.MaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mask, err := h.service.Create(c.Request.Context(), &payload)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to create mask"})
		return
	}
	c.JSON(http.StatusCreated, mask)
}

// @Summary Update mask
// @Tags masks
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Mask ID"
// @Param mask body models.MaskPayload true "Mask form fields"
// @Success 200 {object} models.Mask
// @Failure 404 {object} map[string]string
// @Router /admin/masks/{id} [put]
func (h *MaskHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid mask id"})
		return
	}

	var payload models.MaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mask, err := h.service.Update(c.Request.Context(), id, &payload)
	if err != nil {
		if errors.Is(err, service.ErrMaskNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "mask not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to update mask"})
		return
	}
	c.JSON(http.StatusOK, mask)
}

// @Summary Delete mask
// @Tags masks
// @Produce json
// @Security AdminToken
// @Param id path int true "Mask ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string
// @Router /admin/masks/{id} [delete]
func (h *MaskHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid mask id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMaskNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "mask not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to delete mask"})
		return
	}
	c.Status(http.StatusNoContent)
}
