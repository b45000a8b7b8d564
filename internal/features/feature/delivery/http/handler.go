package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdifek/fitziz-adminka/internal/features/feature/models"
	"github.com/jdifek/fitziz-adminka/internal/features/feature/service"
)

type FeatureHandler struct {
	service service.FeatureService
}

func NewFeatureHandler(service service.FeatureService) *FeatureHandler {
	return &FeatureHandler{service: service}
}

func (h *FeatureHandler) RegisterRoutes(admin *gin.RouterGroup) {
	features := admin.Group("/features")
	{
		features.GET("", h.List)
		features.POST("", h.Create)
		features.PUT("/:id", h.Update)
		features.DELETE("/:id", h.Delete)
	}
}

// @Summary List features
// @Tags features
// @Produce json
// @Security AdminToken
// @Success 200 {array} models.Feature
// @Router /admin/features [get]
func (h *FeatureHandler) List(c *gin.Context) {
	features, err := h.service.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to list features"})
		return
	}
	c.JSON(http.StatusOK, features)
}

// @Summary Create feature
// @Tags features
// @Accept json
// @Produce json
// @Security AdminToken
// @Param feature body models.FeaturePayload true "Feature fields"
// @Success 201 {object} models.Feature
// @Failure 400 {object} map[string]string
// @Router /admin/features [post]
func (h *FeatureHandler) Create(c *gin.Context) {
	var payload models.FeaturePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feature, err := h.service.Create(c.Request.Context(), &payload)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMask) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "referenced mask does not exist"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to create feature"})
		return
	}
	c.JSON(http.StatusCreated, feature)
}

// @Summary Update feature
// @Tags features
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Feature ID"
// @Param feature body models.FeaturePayload true "Feature fields"
// @Success 200 {object} models.Feature
// @Failure 404 {object} map[string]string
// @Router /admin/features/{id} [put]
func (h *FeatureHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid feature id"})
		return
	}

	var payload models.FeaturePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feature, err := h.service.Update(c.Request.Context(), id, &payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeatureNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "feature not found"})
		case errors.Is(err, service.ErrUnknownMask):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "referenced mask does not exist"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to update feature"})
		}
		return
	}
	c.JSON(http.StatusOK, feature)
}

// @Summary Delete feature
// @Tags features
// @Produce json
// @Security AdminToken
// @Param id path int true "Feature ID"
// @Success 204 "Deleted"
// @Router /admin/features/{id} [delete]
func (h *FeatureHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid feature id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFeatureNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "feature not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to delete feature"})
		return
	}
	c.Status(http.StatusNoContent)
}
