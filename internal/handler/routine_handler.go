package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/pkg/response"
)

type routineService interface {
	List(ctx context.Context, userID string) ([]models.RoutineTask, error)
	Add(ctx context.Context, userID string, req dto.CreateRoutineTaskRequest) (*models.RoutineTask, error)
	ToggleDay(ctx context.Context, userID, id string, req dto.ToggleDayRequest) (*models.RoutineTask, error)
	Rename(ctx context.Context, userID, id string, req dto.RenameRoutineTaskRequest) (*models.RoutineTask, error)
	Delete(ctx context.Context, userID, id string) error
}

// RoutineHandler exposes the weekly routine table.
type RoutineHandler struct {
	service routineService
}

// NewRoutineHandler constructs the handler.
func NewRoutineHandler(service routineService) *RoutineHandler {
	return &RoutineHandler{service: service}
}

// List godoc
// @Summary List routine tasks
// @Tags Routine
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /study/routine [get]
func (h *RoutineHandler) List(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	tasks, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks, nil)
}

// Add godoc
// @Summary Add routine task
// @Tags Routine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateRoutineTaskRequest true "Task"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /study/routine [post]
func (h *RoutineHandler) Add(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CreateRoutineTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid task payload"))
		return
	}
	task, err := h.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, task)
}

// ToggleDay godoc
// @Summary Toggle a weekday of a task
// @Tags Routine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param payload body dto.ToggleDayRequest true "Day (monday..sunday)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /study/routine/{id}/toggle [post]
func (h *RoutineHandler) ToggleDay(c *gin.Context) {
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
	var req dto.ToggleDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid day payload"))
		return
	}
	task, err := h.service.ToggleDay(c.Request.Context(), userID, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, task, nil)
}

// Rename godoc
// @Summary Rename a task
// @Tags Routine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param payload body dto.RenameRoutineTaskRequest true "Name"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /study/routine/{id} [patch]
func (h *RoutineHandler) Rename(c *gin.Context) {
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
	var req dto.RenameRoutineTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid task payload"))
		return
	}
	task, err := h.service.Rename(c.Request.Context(), userID, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, task, nil)
}

// Delete godoc
// @Summary Delete a task
// @Tags Routine
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /study/routine/{id} [delete]
func (h *RoutineHandler) Delete(c *gin.Context) {
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
	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
