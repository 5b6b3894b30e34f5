package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/middleware"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/pkg/response"
)

type studyCycleService interface {
	Overview(ctx context.Context, userID string) (*dto.StudyCycleOverview, bool, error)
	SetWeeklyBudget(ctx context.Context, userID string, req dto.WeeklyBudgetRequest) (*models.StudyPreference, error)
	AddSubject(ctx context.Context, userID string, req dto.AddSubjectRequest) (*models.StudySubject, error)
	UpdateWeight(ctx context.Context, userID, id string, req dto.UpdateWeightRequest) (*models.StudySubject, error)
	RemoveSubject(ctx context.Context, userID, id string) error
	ToggleHour(ctx context.Context, userID, id string, req dto.ToggleHourRequest) (*models.StudySubject, error)
	ResetProgress(ctx context.Context, userID string) (int64, error)
}

// StudyCycleHandler exposes the weighted study cycle.
type StudyCycleHandler struct {
	service studyCycleService
}

// NewStudyCycleHandler constructs the handler.
func NewStudyCycleHandler(service studyCycleService) *StudyCycleHandler {
	return &StudyCycleHandler{service: service}
}

// Overview godoc
// @Summary Study cycle overview
// @Description Weekly budget, subjects with allotted hours and overall progress
// @Tags Study Cycle
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /study/cycle [get]
func (h *StudyCycleHandler) Overview(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	overview, cacheHit, err := h.service.Overview(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, overview, nil, meta)
}

// SetWeeklyBudget godoc
// @Summary Set weekly hours
// @Tags Study Cycle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.WeeklyBudgetRequest true "Weekly budget"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /study/cycle/budget [put]
func (h *StudyCycleHandler) SetWeeklyBudget(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.WeeklyBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid weekly budget payload"))
		return
	}
	pref, err := h.service.SetWeeklyBudget(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pref, nil)
}

// AddSubject godoc
// @Summary Add subject to the cycle
// @Tags Study Cycle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AddSubjectRequest true "Subject"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /study/cycle/subjects [post]
func (h *StudyCycleHandler) AddSubject(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AddSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid subject payload"))
		return
	}
	subject, err := h.service.AddSubject(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject)
}

// UpdateWeight godoc
// @Summary Change subject weight
// @Tags Study Cycle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param payload body dto.UpdateWeightRequest true "Weight"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /study/cycle/subjects/{id}/weight [patch]
func (h *StudyCycleHandler) UpdateWeight(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid weight payload"))
		return
	}
	subject, err := h.service.UpdateWeight(c.Request.Context(), userID, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject, nil)
}

// RemoveSubject godoc
// @Summary Remove subject from the cycle
// @Tags Study Cycle
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /study/cycle/subjects/{id} [delete]
func (h *StudyCycleHandler) RemoveSubject(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.RemoveSubject(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ToggleHour godoc
// @Summary Mark the next hour of a subject
// @Description Advances completed hours by one and wraps to zero once every hour is done
// @Tags Study Cycle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param payload body dto.ToggleHourRequest false "Clicked square"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /study/cycle/subjects/{id}/toggle [post]
func (h *StudyCycleHandler) ToggleHour(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ToggleHourRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, bindError(err, "invalid toggle payload"))
		return
	}
	subject, err := h.service.ToggleHour(c.Request.Context(), userID, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject, nil)
}

// ResetProgress godoc
// @Summary Reset cycle progress
// @Tags Study Cycle
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /study/cycle/reset [post]
func (h *StudyCycleHandler) ResetProgress(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	reset, err := h.service.ResetProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ResetProgressResponse{Reset: reset}, nil)
}
