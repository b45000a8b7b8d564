package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdifek/fitziz-adminka/internal/features/review/models"
	"github.com/jdifek/fitziz-adminka/internal/features/review/service"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(admin *gin.RouterGroup) {
	reviews := admin.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("", h.Create)
		reviews.PUT("/:id", h.Update)
		reviews.DELETE("/:id", h.Delete)
	}
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Security AdminToken
// @Success 200 {array} models.Review
// @Router /admin/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.service.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security AdminToken
// @Param review body models.ReviewPayload true "Review fields"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]string
// @Router /admin/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var payload models.ReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.service.Create(c.Request.Context(), &payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownMask):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "referenced mask does not exist"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}

// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Review ID"
// @Param review body models.ReviewPayload true "Review fields"
// @Success 200 {object} models.Review
// @Failure 404 {object} map[string]string
// @Router /admin/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	var payload models.ReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.service.Update(c.Request.Context(), id, &payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "review not found"})
		case errors.Is(err, service.ErrInvalidRating):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownMask):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "referenced mask does not exist"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to update review"})
		}
		return
	}
	c.JSON(http.StatusOK, review)
}

// @Summary Delete review
// @Tags reviews
// @Produce json
// @Security AdminToken
// @Param id path int true "Review ID"
// @Success 204 "Deleted"
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}
	c.Status(http.StatusNoContent)
}
