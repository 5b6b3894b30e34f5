package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/pkg/response"
)

type preferenceService interface {
	Get(ctx context.Context, userID string) (*models.StudyPreference, error)
	SelectMode(ctx context.Context, userID string, req dto.SelectModeRequest) (*models.StudyPreference, error)
}

// PreferenceHandler exposes the study mode selection.
type PreferenceHandler struct {
	service preferenceService
}

// NewPreferenceHandler constructs the handler.
func NewPreferenceHandler(service preferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

// Get godoc
// @Summary Current study preferences
// @Tags Study
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /study/preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	pref, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pref, nil)
}

// SelectMode godoc
// @Summary Choose routine or cycle mode
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SelectModeRequest true "Mode"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /study/mode [put]
func (h *PreferenceHandler) SelectMode(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SelectModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid study mode payload"))
		return
	}
	pref, err := h.service.SelectMode(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pref, nil)
}
