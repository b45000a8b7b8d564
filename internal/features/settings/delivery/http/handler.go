package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdifek/fitziz-adminka/internal/features/settings/models"
	"github.com/jdifek/fitziz-adminka/internal/features/settings/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/settings", h.List)
	admin.POST("/settings", h.Save)
	admin.POST("/send-message", h.SendMessage)
}

// @Summary List settings
// @Tags settings
// @Produce json
// @Security AdminToken
// @Success 200 {array} models.Setting
// @Router /admin/settings [get]
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to list settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Create or update setting
// @Tags settings
// @Accept json
// @Produce json
// @Security AdminToken
// @Param setting body models.SettingPayload true "Setting key and value"
// @Success 200 {object} models.Setting
// @Failure 400 {object} map[string]string
// @Router /admin/settings [post]
func (h *SettingsHandler) Save(c *gin.Context) {
	var payload models.SettingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.service.Save(c.Request.Context(), payload.Key, payload.Value)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to save setting"})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// @Summary Broadcast message to all users
// @Tags settings
// @Accept json
// @Produce json
// @Security AdminToken
// @Param message body models.BroadcastPayload true "Message text"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string
// @Router /admin/send-message [post]
func (h *SettingsHandler) SendMessage(c *gin.Context) {
	var payload models.BroadcastPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Broadcast(c.Request.Context(), payload.Text); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to start broadcast"})
		return
	}
	c.Status(http.StatusAccepted)
}
