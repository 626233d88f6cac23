package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	availabilityRepo "homely/database/repository/availability"
	"homely/models"
	"homely/utils"
)

// ConfigHandler serves the admin endpoints for the scheduling configuration.
type ConfigHandler struct {
	Repo availabilityRepo.AvailabilityRepository
}

// NewConfigHandler returns a handler bundle over the given repository.
func NewConfigHandler(repo availabilityRepo.AvailabilityRepository) *ConfigHandler {
	return &ConfigHandler{Repo: repo}
}

// GetConfig returns the current scheduling configuration.
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.Repo.GetSchedulingConfiguration(c.Request.Context())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpsertConfig replaces the scheduling configuration.
func (h *ConfigHandler) UpsertConfig(c *gin.Context) {
	var cfg models.SchedulingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid scheduling configuration", err.Error())
		return
	}
	if cfg.Policy.SlotIntervalMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid scheduling configuration", "slotIntervalMinutes must be positive")
		return
	}
	if cfg.Policy.BreakMinutes < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid scheduling configuration", "breakMinutes must not be negative")
		return
	}

	if err := h.Repo.UpsertSchedulingConfiguration(c.Request.Context(), &cfg); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
