package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdifek/fitziz-adminka/internal/features/video/models"
	"github.com/jdifek/fitziz-adminka/internal/features/video/service"
)

type VideoHandler struct {
	service service.VideoService
}

func NewVideoHandler(service service.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

func (h *VideoHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/videos", h.List)

	videos := admin.Group("/videos")
	{
		videos.GET("", h.List)
		videos.POST("", h.Create)
		videos.PUT("/:id", h.Update)
		videos.DELETE("/:id", h.Delete)
	}
}

// @Summary List videos
// @Tags videos
// @Produce json
// @Success 200 {array} models.Video
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.service.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to list videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// @Summary Create video
// @Tags videos
// @Accept json
// @Produce json
// @Security AdminToken
// @Param video body models.VideoPayload true "Video fields"
// @Success 201 {object} models.Video
// @Router /admin/videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var payload models.VideoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.service.Create(c.Request.Context(), &payload)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to create video"})
		return
	}
	c.JSON(http.StatusCreated, video)
}

// @Summary Update video
// @Tags videos
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Video ID"
// @Param video body models.VideoPayload true "Video fields"
// @Success 200 {object} models.Video
// @Failure 404 {object} map[string]string
// @Router /admin/videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	var payload models.VideoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.service.Update(c.Request.Context(), id, &payload)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to update video"})
		return
	}
	c.JSON(http.StatusOK, video)
}

// @Summary Delete video
// @Tags videos
// @Produce json
// @Security AdminToken
// @Param id path int true "Video ID"
// @Success 204 "Deleted"
// @Router /admin/videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to delete video"})
		return
	}
	c.Status(http.StatusNoContent)
}
